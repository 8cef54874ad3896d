package dom

// https://dom.spec.whatwg.org/#interface-document
//
// Document is the root payload of one tree. Doctype stays nil until the
// parse appends a doctype declaration; a later declaration replaces the
// whole value.
type Document struct {
	Doctype  *DocumentType
	Children HandleList
}

// https://dom.spec.whatwg.org/#interface-documentfragment
//
// DocumentFragment holds a subtree that is not part of the document
// proper, such as the contents of a template element.
type DocumentFragment struct {
	Children HandleList
}
