package dom

import (
	"github.com/fournii/domtree/webidl"
)

func NewNamedNodeMap() *NamedNodeMap {
	return &NamedNodeMap{
		Attrs: map[webidl.DOMString]*Attr{},
	}
}

// NamedNodeMap is the attribute set of one element, keyed by local name.
// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Length int
	Attrs  map[webidl.DOMString]*Attr
}

func (n *NamedNodeMap) GetNamedItem(name webidl.DOMString) *Attr {
	if attr, ok := n.Attrs[name]; ok {
		return attr
	}
	return nil
}

// SetNamedItem stores attr unconditionally and returns the attribute it
// displaced, if any. Writing the same name twice keeps the second value.
func (n *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	old := n.Attrs[attr.LocalName]
	n.Attrs[attr.LocalName] = attr
	if old == nil {
		n.Length++
	}
	return old
}

// SetNamedItemIfAbsent stores attr only when no attribute of that name
// exists yet; an attribute already present keeps its value untouched. It
// returns the attribute that ends up in the map.
func (n *NamedNodeMap) SetNamedItemIfAbsent(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	if old := n.Attrs[attr.LocalName]; old != nil {
		return old
	}
	n.Attrs[attr.LocalName] = attr
	n.Length++
	return attr
}
