package domtree

import (
	"github.com/fournii/domtree/dom"
	"github.com/fournii/domtree/webidl"
)

// QuirksMode is the document-wide compatibility mode the tree-construction
// algorithm announces once it has seen the doctype.
// https://dom.spec.whatwg.org/#concept-document-quirks
type QuirksMode string

const (
	NoQuirks      QuirksMode = "no-quirks"
	Quirks        QuirksMode = "quirks"
	LimitedQuirks QuirksMode = "limited-quirks"
)

// NodeOrText is the payload of the append family of operations: either the
// handle of an existing node, or raw character data for a fresh text node.
// Construct values with AppendNode or AppendText.
type NodeOrText struct {
	node   dom.NodeHandle
	text   webidl.DOMString
	isNode bool
}

// AppendNode wraps an existing node's handle for insertion.
func AppendNode(h dom.NodeHandle) NodeOrText {
	return NodeOrText{node: h, isNode: true}
}

// AppendText wraps character data for insertion as a new text node.
func AppendText(data webidl.DOMString) NodeOrText {
	return NodeOrText{text: data}
}

// TreeSink is the contract between the external HTML5 tree-construction
// algorithm and the document tree being built. The algorithm owns every
// decision about which mutation happens next; a sink only executes
// mutations, answers identity and name queries, and reports diagnostics.
// Handles returned from the creation operations come back as arguments to
// later ones, so they must stay valid for the whole parse.
//
// DOMBuilder is the sink this package provides.
type TreeSink interface {
	// GetDocument returns the handle of the document node, creating the
	// node on first use. Every call returns the same handle.
	GetDocument() dom.NodeHandle

	// ElemName returns the qualified name target was created with. The
	// target must be an element.
	ElemName(target dom.NodeHandle) (dom.QualName, error)

	// CreateElement makes a fresh element from a tag name and attribute
	// list and returns its handle. The element is not attached anywhere
	// yet.
	CreateElement(name dom.QualName, attrs []dom.Attr) dom.NodeHandle

	// CreateComment makes a fresh unattached comment node.
	CreateComment(data webidl.DOMString) dom.NodeHandle

	// CreatePI makes a fresh unattached processing instruction.
	CreatePI(target, data webidl.DOMString) dom.NodeHandle

	// Append attaches child as the last child of parent.
	Append(parent dom.NodeHandle, child NodeOrText) error

	// AppendBeforeSibling inserts child into sibling's parent immediately
	// before sibling.
	AppendBeforeSibling(sibling dom.NodeHandle, child NodeOrText) error

	// AppendBasedOnParentNode inserts child before element when element
	// is attached, and appends it to prevElement otherwise.
	AppendBasedOnParentNode(element, prevElement dom.NodeHandle, child NodeOrText) error

	// AppendDoctypeToDocument records the doctype declaration on the
	// document.
	AppendDoctypeToDocument(name, publicID, systemID webidl.DOMString)

	// AddAttrsIfMissing folds attrs into target's attribute set, keeping
	// every attribute already present.
	AddAttrsIfMissing(target dom.NodeHandle, attrs []dom.Attr) error

	// RemoveFromParent detaches target from its parent's child list.
	RemoveFromParent(target dom.NodeHandle) error

	// ReparentChildren moves all children of node to newParent.
	ReparentChildren(node, newParent dom.NodeHandle) error

	// GetTemplateContents returns the fragment holding a template
	// element's contents.
	GetTemplateContents(target dom.NodeHandle) (dom.NodeHandle, error)

	// SameNode reports whether two handles name the same node.
	SameNode(x, y dom.NodeHandle) bool

	// SetQuirksMode records the document compatibility mode.
	SetQuirksMode(mode QuirksMode)

	// ParseError reports malformed markup. Parsing continues regardless.
	ParseError(msg string)
}
