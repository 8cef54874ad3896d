package dom

import (
	"github.com/fournii/domtree/webidl"
)

// https://dom.spec.whatwg.org/#interface-documenttype
type DocumentType struct {
	Name     webidl.DOMString
	PublicID webidl.DOMString
	SystemID webidl.DOMString
}
