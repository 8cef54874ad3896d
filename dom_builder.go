// Package domtree builds an in-memory document tree on behalf of an
// external HTML5 tree-construction algorithm. The algorithm decides what
// happens next and drives a TreeSink; this package supplies DOMBuilder,
// a sink whose nodes live in a dom.NodeArena and are addressed by stable
// handles the algorithm holds on to and replays in later calls.
package domtree

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fournii/domtree/dom"
	"github.com/fournii/domtree/webidl"
)

// DOMBuilder is the TreeSink implementation. One builder owns one arena
// and builds exactly one document per parse. It is not safe for concurrent
// use; the tree-construction algorithm is strictly sequential.
type DOMBuilder struct {
	arena      *dom.NodeArena
	document   dom.NodeHandle
	quirksMode QuirksMode
	config     Config
	log        logrus.FieldLogger
}

var _ TreeSink = (*DOMBuilder)(nil)

// NewDOMBuilder creates a builder for one parse.
func NewDOMBuilder(config Config) *DOMBuilder {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DOMBuilder{
		arena:      dom.NewNodeArena(),
		quirksMode: NoQuirks,
		config:     config,
		log:        log,
	}
}

// GetDocument returns the handle of the document node, creating it on
// first use. Every later call returns the same handle.
func (d *DOMBuilder) GetDocument() dom.NodeHandle {
	if d.document.Null() {
		d.document = d.arena.Insert(dom.NewDocumentNode())
	}
	return d.document
}

// node resolves a handle the builder itself issued. Failing to resolve
// one means builder state is corrupt, which is not recoverable.
func (d *DOMBuilder) node(h dom.NodeHandle) *dom.Node {
	n, err := d.arena.Get(h)
	if err != nil {
		panic(err)
	}
	return n
}

// https://html.spec.whatwg.org/multipage/parsing.html#create-an-element-for-the-token
//
// CreateElement builds an element for a tag token and returns its handle.
// The token's attributes apply in order, so a repeated name keeps its last
// value. The element's parent field starts out pointing at the document;
// the real parent is recorded when the algorithm attaches the element. An
// HTML template element additionally gets an empty fragment to hold its
// contents.
func (d *DOMBuilder) CreateElement(name dom.QualName, attrs []dom.Attr) dom.NodeHandle {
	node := dom.NewElementNode(name, attrs)
	node.Element.Parent = d.GetDocument()
	if name.NamespaceURI == dom.Htmlns && name.LocalName == "template" {
		node.Element.TemplateContents = d.arena.Insert(dom.NewDocumentFragmentNode())
	}
	return d.arena.Insert(node)
}

// CreateComment makes a fresh unattached comment node.
func (d *DOMBuilder) CreateComment(data webidl.DOMString) dom.NodeHandle {
	return d.arena.Insert(dom.NewCommentNode(data))
}

// CreatePI makes a fresh unattached processing instruction node.
func (d *DOMBuilder) CreatePI(target, data webidl.DOMString) dom.NodeHandle {
	return d.arena.Insert(dom.NewProcessingInstructionNode(target, data))
}

// childBearing resolves h to a node that can hold children. Leaf kinds
// are a protocol violation.
func (d *DOMBuilder) childBearing(h dom.NodeHandle) (*dom.Node, *dom.HandleList, error) {
	node, err := d.arena.Get(h)
	if err != nil {
		return nil, nil, err
	}
	children := node.ChildList()
	if children == nil {
		return nil, nil, errors.Wrapf(ErrNotAnElement, "%s node cannot hold children", node.NodeType)
	}
	return node, children, nil
}

// detach removes an element from its recorded parent's child list when it
// is actually listed there. The parent field itself is left alone.
func (d *DOMBuilder) detach(h dom.NodeHandle, node *dom.Node) {
	if node.NodeType != dom.ElementNode || node.Element.Parent.Null() {
		return
	}
	parent, err := d.arena.Get(node.Element.Parent)
	if err != nil {
		return
	}
	if children := parent.ChildList(); children != nil {
		children.Remove(children.Contains(h))
	}
}

// attached reports whether node currently sits in its recorded parent's
// child list. The parent field alone is not enough: it is only a hint
// until the element really appears in a list.
func (d *DOMBuilder) attached(h dom.NodeHandle, node *dom.Node) bool {
	if node.NodeType != dom.ElementNode || node.Element.Parent.Null() {
		return false
	}
	parent, err := d.arena.Get(node.Element.Parent)
	if err != nil {
		return false
	}
	children := parent.ChildList()
	return children != nil && children.Contains(h) != -1
}

// https://html.spec.whatwg.org/multipage/parsing.html#appropriate-place-for-inserting-a-node
//
// Append attaches child as the last child of parent. The node case moves
// an existing node: the node leaves its old parent's child list first, so
// it never appears in two lists at once, and re-appending to the same
// parent moves it to the end. The text case always inserts a fresh text
// node; runs of text arrive merged from the algorithm already. A failed
// append leaves the tree untouched.
func (d *DOMBuilder) Append(parent dom.NodeHandle, child NodeOrText) error {
	defer d.traceMutation("Append")()

	_, children, err := d.childBearing(parent)
	if err != nil {
		return errors.Wrap(err, "append")
	}

	if child.isNode {
		node, err := d.arena.Get(child.node)
		if err != nil {
			return errors.Wrap(err, "append")
		}
		d.detach(child.node, node)
		children.Push(child.node)
		if node.NodeType == dom.ElementNode {
			node.Element.Parent = parent
		}
		return nil
	}

	children.Push(d.arena.Insert(dom.NewTextNode(child.text)))
	return nil
}

// AppendBeforeSibling inserts child into sibling's parent immediately
// before sibling. The sibling must be an element sitting in its parent's
// child list: leaf nodes record no parent, so there is no list to locate.
// The algorithm only asks for this with an attached sibling, anything else
// is a protocol violation and leaves the tree untouched.
func (d *DOMBuilder) AppendBeforeSibling(sibling dom.NodeHandle, child NodeOrText) error {
	defer d.traceMutation("AppendBeforeSibling")()

	sib, err := d.arena.Get(sibling)
	if err != nil {
		return errors.Wrap(err, "append before sibling")
	}
	if sib.NodeType != dom.ElementNode {
		return errors.Wrapf(ErrNotAnElement, "append before sibling: %s sibling records no parent", sib.NodeType)
	}
	if sib.Element.Parent.Null() {
		return errors.Wrap(ErrNotAnElement, "append before sibling: sibling has no parent")
	}
	_, children, err := d.childBearing(sib.Element.Parent)
	if err != nil {
		return errors.Wrap(err, "append before sibling")
	}
	if children.Contains(sibling) == -1 {
		return errors.Wrap(ErrNotAnElement, "append before sibling: sibling not in its parent's child list")
	}

	var newChild dom.NodeHandle
	if child.isNode {
		node, err := d.arena.Get(child.node)
		if err != nil {
			return errors.Wrap(err, "append before sibling")
		}
		d.detach(child.node, node)
		if node.NodeType == dom.ElementNode {
			node.Element.Parent = sib.Element.Parent
		}
		newChild = child.node
	} else {
		newChild = d.arena.Insert(dom.NewTextNode(child.text))
	}

	// the detach above can shift positions in this very list, so the
	// sibling's index is only looked up now
	if i := children.Contains(sibling); i != -1 {
		children.WedgeIn(i, newChild)
	} else {
		children.Push(newChild)
	}
	return nil
}

// AppendBasedOnParentNode inserts child before element when element is
// currently attached, and appends it to prevElement otherwise. The
// algorithm issues this during foster parenting, when the insertion point
// depends on whether the fostered element kept its parent.
func (d *DOMBuilder) AppendBasedOnParentNode(element, prevElement dom.NodeHandle, child NodeOrText) error {
	node, err := d.arena.Get(element)
	if err != nil {
		return errors.Wrap(err, "append based on parent node")
	}
	if d.attached(element, node) {
		return d.AppendBeforeSibling(element, child)
	}
	return d.Append(prevElement, child)
}

// AppendDoctypeToDocument records the doctype declaration on the document.
// A well-formed parse sends at most one; a later declaration replaces the
// earlier one wholesale.
func (d *DOMBuilder) AppendDoctypeToDocument(name, publicID, systemID webidl.DOMString) {
	defer d.traceMutation("AppendDoctypeToDocument")()

	doc := d.node(d.GetDocument())
	doc.Document.Doctype = &dom.DocumentType{
		Name:     name,
		PublicID: publicID,
		SystemID: systemID,
	}
}

// AddAttrsIfMissing folds attrs into target's attribute set without
// overwriting: a name already present keeps its existing value, byte for
// byte. The algorithm issues this for duplicate <html> and <body> tags,
// whose late attributes must not clobber the originals.
func (d *DOMBuilder) AddAttrsIfMissing(target dom.NodeHandle, attrs []dom.Attr) error {
	defer d.traceMutation("AddAttrsIfMissing")()

	node, err := d.arena.Get(target)
	if err != nil {
		return errors.Wrap(err, "add attrs if missing")
	}
	if node.NodeType != dom.ElementNode {
		return errors.Wrapf(ErrNotAnElement, "add attrs if missing: target is a %s node", node.NodeType)
	}
	for i := range attrs {
		attr := attrs[i]
		node.Element.Attributes.SetNamedItemIfAbsent(&attr)
	}
	return nil
}

// RemoveFromParent takes target out of its recorded parent's child list,
// matching by handle identity, and clears its parent. Only elements record
// a parent, so only elements can be removed. Removing an element that was
// created but never attached clears the parent field and touches no list.
func (d *DOMBuilder) RemoveFromParent(target dom.NodeHandle) error {
	defer d.traceMutation("RemoveFromParent")()

	node, err := d.arena.Get(target)
	if err != nil {
		return errors.Wrap(err, "remove from parent")
	}
	if node.NodeType != dom.ElementNode {
		return errors.Wrapf(ErrNotAnElement, "remove from parent: target is a %s node", node.NodeType)
	}
	if node.Element.Parent.Null() {
		return errors.Wrap(ErrNotAnElement, "remove from parent: node has no parent")
	}
	_, children, err := d.childBearing(node.Element.Parent)
	if err != nil {
		return errors.Wrap(err, "remove from parent")
	}
	children.Remove(children.Contains(target))
	node.Element.Parent = dom.NodeHandle{}
	return nil
}

// ReparentChildren moves every child of node to the end of newParent's
// child list, keeping their order. The algorithm issues this when the
// adoption agency relocates a whole subtree.
func (d *DOMBuilder) ReparentChildren(node, newParent dom.NodeHandle) error {
	defer d.traceMutation("ReparentChildren")()

	_, from, err := d.childBearing(node)
	if err != nil {
		return errors.Wrap(err, "reparent children")
	}
	_, to, err := d.childBearing(newParent)
	if err != nil {
		return errors.Wrap(err, "reparent children")
	}
	if node == newParent {
		return nil
	}
	for _, child := range *from {
		to.Push(child)
		if ch, err := d.arena.Get(child); err == nil && ch.NodeType == dom.ElementNode {
			ch.Element.Parent = newParent
		}
	}
	*from = nil
	return nil
}

// https://html.spec.whatwg.org/multipage/scripting.html#template-contents
//
// GetTemplateContents returns the handle of the fragment holding a
// template element's contents. Templates receive their fragment at
// creation, so for them the lookup cannot fail.
func (d *DOMBuilder) GetTemplateContents(target dom.NodeHandle) (dom.NodeHandle, error) {
	node, err := d.arena.Get(target)
	if err != nil {
		return dom.NodeHandle{}, errors.Wrap(err, "get template contents")
	}
	if node.NodeType != dom.ElementNode {
		return dom.NodeHandle{}, errors.Wrapf(ErrNotAnElement, "get template contents: target is a %s node", node.NodeType)
	}
	if node.Element.TemplateContents.Null() {
		return dom.NodeHandle{}, errors.Wrapf(ErrNotATemplate, "get template contents: <%s>", node.NodeName)
	}
	return node.Element.TemplateContents, nil
}

// SameNode reports whether two handles name the same node. Handles are
// plain values, so this is handle equality: two creation calls always
// yield distinct handles, however alike the nodes look.
func (d *DOMBuilder) SameNode(x, y dom.NodeHandle) bool {
	return x == y
}

// ElemName returns the qualified name target was created with. It never
// changes over the element's lifetime.
func (d *DOMBuilder) ElemName(target dom.NodeHandle) (dom.QualName, error) {
	node, err := d.arena.Get(target)
	if err != nil {
		return dom.QualName{}, errors.Wrap(err, "elem name")
	}
	if node.NodeType != dom.ElementNode {
		return dom.QualName{}, errors.Wrapf(ErrNotAnElement, "elem name: target is a %s node", node.NodeType)
	}
	return node.Element.QualifiedName, nil
}

// SetQuirksMode records the compatibility mode the algorithm announced.
// Nothing downstream keys off the mode yet, so the switch is surfaced as
// a warning rather than silently absorbed.
func (d *DOMBuilder) SetQuirksMode(mode QuirksMode) {
	d.quirksMode = mode
	d.log.Warnf("quirks mode handling not implemented: %s", mode)
}

// QuirksMode returns the mode last recorded by SetQuirksMode, NoQuirks
// before any call.
func (d *DOMBuilder) QuirksMode() QuirksMode {
	return d.quirksMode
}

// ParseError surfaces a malformed-markup report from the algorithm. The
// report only reaches the diagnostics log; construction always continues.
func (d *DOMBuilder) ParseError(msg string) {
	d.log.Errorf("parse error: %s", msg)
}

// DocumentString renders the html5lib-format dump of the document, or ""
// when no document node exists yet.
func (d *DOMBuilder) DocumentString() string {
	if d.document.Null() {
		return ""
	}
	return d.arena.SerializeSubtree(d.document)
}

// Finish hands the built tree over: the arena owning every node and the
// document handle. A normal parse issues nothing after this point, though
// the builder keeps working if more instructions arrive.
func (d *DOMBuilder) Finish() (*dom.NodeArena, dom.NodeHandle) {
	return d.arena, d.GetDocument()
}
