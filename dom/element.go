package dom

// https://dom.spec.whatwg.org/#interface-element
//
// Element is the only node kind that records where it hangs in the tree.
// Parent starts out as the document handle when the element is created and
// is rewritten to the real parent each time the element is attached; it is
// a hint until the element actually appears in some child list.
type Element struct {
	QualifiedName QualName
	Attributes    *NamedNodeMap
	Parent        NodeHandle
	Children      HandleList

	// TemplateContents is the fragment holding a template element's
	// contents. Only elements named "template" carry one; for everything
	// else it stays the zero handle.
	// https://html.spec.whatwg.org/multipage/scripting.html#template-contents
	TemplateContents NodeHandle
}
