package dom

import (
	"github.com/fournii/domtree/webidl"
)

// https://dom.spec.whatwg.org/#interface-characterdata
type CharacterData struct {
	Data   webidl.DOMString
	Length int
}

func NewCharacterData(data webidl.DOMString) *CharacterData {
	return &CharacterData{
		Data:   data,
		Length: len(data),
	}
}
