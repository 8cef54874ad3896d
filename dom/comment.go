package dom

import (
	"github.com/fournii/domtree/webidl"
)

// https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

func NewComment(data webidl.DOMString) *Comment {
	return &Comment{CharacterData: NewCharacterData(data)}
}
