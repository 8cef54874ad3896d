package dom

import (
	"github.com/fournii/domtree/webidl"
)

// https://dom.spec.whatwg.org/#interface-text
type Text struct {
	*CharacterData
}

func NewText(data webidl.DOMString) *Text {
	return &Text{CharacterData: NewCharacterData(data)}
}
