package domtree

import (
	"github.com/pkg/errors"
)

// Protocol-violation sentinels. An operation handing one of these back
// means the tree-construction algorithm and the tree have diverged; the
// failed operation leaves the tree untouched. Use errors.Is to classify.
var (
	// ErrNotAnElement reports an operation that needs an element-shaped
	// target, either a node holding a child list or a true element for
	// name and attribute work, applied to some other node kind.
	ErrNotAnElement = errors.New("not an element")

	// ErrNotATemplate reports a template-contents lookup on an element
	// that is not a template.
	ErrNotATemplate = errors.New("not a template element")
)
