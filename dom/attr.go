package dom

import (
	"github.com/fournii/domtree/webidl"
)

// Namespace enumerates the namespaces the HTML parsing algorithm can hand
// over on element and attribute names.
// https://infra.spec.whatwg.org/#namespaces
type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// QualName is a namespace-qualified name, the shape tag and attribute
// names arrive in from the tree-construction algorithm.
type QualName struct {
	NamespaceURI Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
}

// https://dom.spec.whatwg.org/#interface-attr
type Attr struct {
	Namespace Namespace
	Prefix    webidl.DOMString
	LocalName webidl.DOMString
	Value     webidl.DOMString
}
