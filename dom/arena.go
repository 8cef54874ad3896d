// Package dom holds the node model of one HTML document tree and the
// arena the nodes live in. Parent/child links between nodes are expressed
// as arena handles rather than pointers, so the mutually referencing tree
// carries no reference cycles and a handle stays valid no matter how many
// nodes are inserted after it.
package dom

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrInvalidHandle reports a handle that the receiving arena never issued:
// the zero handle, a handle from another arena, or a forged one. Presenting
// such a handle is a programmer error on the caller's side, not a condition
// a parse can recover from.
var ErrInvalidHandle = errors.New("invalid node handle")

// NodeHandle addresses a single node slot in a NodeArena. Handles are
// opaque, copyable, and comparable: two handles are equal exactly when they
// refer to the same node. The zero NodeHandle is never issued and stands
// for "no node".
type NodeHandle struct {
	arena uint32
	index uint32
}

// Null reports whether h is the zero handle.
func (h NodeHandle) Null() bool {
	return h == NodeHandle{}
}

func (h NodeHandle) String() string {
	return fmt.Sprintf("handle(%d/%d)", h.arena, h.index)
}

// arenaIDs hands every arena in the process a distinct identity, so that a
// handle records which arena issued it. Builders are single-threaded, but
// nothing stops a process from running parses on several goroutines.
var arenaIDs uint32

// NodeArena owns every node of one document tree. It is append-only for
// its whole lifetime: nodes are never freed or moved, which is what keeps
// issued handles valid across later insertions.
type NodeArena struct {
	id    uint32
	nodes []*Node
}

func NewNodeArena() *NodeArena {
	return &NodeArena{id: atomic.AddUint32(&arenaIDs, 1)}
}

// Insert stores a node and returns a fresh handle for it. Insertion never
// fails and never disturbs previously issued handles.
func (a *NodeArena) Insert(n *Node) NodeHandle {
	a.nodes = append(a.nodes, n)
	return NodeHandle{arena: a.id, index: uint32(len(a.nodes) - 1)}
}

// Get resolves a handle to its node. The returned pointer stays valid for
// the arena's lifetime. Handles this arena never issued fail with
// ErrInvalidHandle.
func (a *NodeArena) Get(h NodeHandle) (*Node, error) {
	if h.arena != a.id || h.index >= uint32(len(a.nodes)) {
		return nil, errors.Wrapf(ErrInvalidHandle, "%s not issued by arena %d", h, a.id)
	}
	return a.nodes[h.index], nil
}

// Len returns the number of nodes inserted so far.
func (a *NodeArena) Len() int {
	return len(a.nodes)
}
