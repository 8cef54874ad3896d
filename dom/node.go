package dom

import (
	"github.com/fournii/domtree/webidl"
)

// NodeType discriminates the variants of the Node union.
// https://dom.spec.whatwg.org/#dom-node-nodetype
type NodeType uint

const (
	ElementNode NodeType = iota + 1
	TextNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentFragmentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case ProcessingInstructionNode:
		return "processing instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentFragmentNode:
		return "document fragment"
	}
	return "unknown"
}

// https://dom.spec.whatwg.org/#interface-node
//
// Node is a tagged union: NodeType names which of the embedded variant
// payloads is populated, and exactly that one is non-nil. Code switches on
// NodeType and reads the matching payload. Several payloads share field
// names (Data, Children), so reads go through the explicit payload rather
// than field promotion.
type Node struct {
	NodeType NodeType
	NodeName webidl.DOMString

	*Element
	*Text
	*Comment
	*ProcessingInstruction
	*Document
	*DocumentFragment
}

// ChildList returns the child-handle list of the node kinds that hold
// children: documents, elements, and document fragments. Leaf kinds
// return nil.
func (n *Node) ChildList() *HandleList {
	switch n.NodeType {
	case DocumentNode:
		return &n.Document.Children
	case ElementNode:
		return &n.Element.Children
	case DocumentFragmentNode:
		return &n.DocumentFragment.Children
	}
	return nil
}

// NewDocumentNode returns a document with no doctype and no children.
func NewDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{},
	}
}

// NewDocumentFragmentNode returns an empty fragment, the container used
// for template contents.
func NewDocumentFragmentNode() *Node {
	return &Node{
		NodeType:         DocumentFragmentNode,
		NodeName:         "#document-fragment",
		DocumentFragment: &DocumentFragment{},
	}
}

// NewElementNode builds an element from its qualified name and the
// attribute list of the tag token. Attributes apply in order, so a name
// repeated in the token keeps its last value.
func NewElementNode(name QualName, attrs []Attr) *Node {
	m := NewNamedNodeMap()
	for i := range attrs {
		attr := attrs[i]
		m.SetNamedItem(&attr)
	}
	return &Node{
		NodeType: ElementNode,
		NodeName: name.LocalName,
		Element: &Element{
			QualifiedName: name,
			Attributes:    m,
		},
	}
}

func NewTextNode(data webidl.DOMString) *Node {
	return &Node{
		NodeType: TextNode,
		NodeName: "#text",
		Text:     NewText(data),
	}
}

func NewCommentNode(data webidl.DOMString) *Node {
	return &Node{
		NodeType: CommentNode,
		NodeName: "#comment",
		Comment:  NewComment(data),
	}
}

func NewProcessingInstructionNode(target, data webidl.DOMString) *Node {
	return &Node{
		NodeType:              ProcessingInstructionNode,
		NodeName:              target,
		ProcessingInstruction: NewProcessingInstruction(target, data),
	}
}
