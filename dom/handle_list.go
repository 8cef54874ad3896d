package dom

// HandleList is an ordered sequence of node handles, the representation of
// every child list in the tree. Mutating methods take a pointer receiver
// because they replace the backing slice.
type HandleList []NodeHandle

// Contains returns the index of h in the list, or -1.
func (l *HandleList) Contains(h NodeHandle) int {
	for i := range *l {
		if (*l)[i] == h {
			return i
		}
	}
	return -1
}

// Remove deletes the entry at index i and returns it. Out-of-range
// indexes, including the -1 of a Contains miss, remove nothing and return
// the zero handle.
func (l *HandleList) Remove(i int) NodeHandle {
	if i < 0 || i >= len(*l) {
		return NodeHandle{}
	}
	h := (*l)[i]
	*l = append((*l)[:i], (*l)[i+1:]...)
	return h
}

// WedgeIn inserts h at index i, shifting the entries from i onward one
// place right. An index at or past the end appends; a negative index is
// ignored.
func (l *HandleList) WedgeIn(i int, h NodeHandle) {
	if i < 0 {
		return
	}
	if i >= len(*l) {
		*l = append(*l, h)
		return
	}
	*l = append((*l)[:i+1], (*l)[i:]...)
	(*l)[i] = h
}

// Push appends h to the end of the list.
func (l *HandleList) Push(h NodeHandle) {
	*l = append(*l, h)
}
