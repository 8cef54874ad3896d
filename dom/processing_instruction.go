package dom

import (
	"github.com/fournii/domtree/webidl"
)

// https://dom.spec.whatwg.org/#interface-processinginstruction
type ProcessingInstruction struct {
	*CharacterData
	Target webidl.DOMString
}

func NewProcessingInstruction(target, data webidl.DOMString) *ProcessingInstruction {
	return &ProcessingInstruction{
		CharacterData: NewCharacterData(data),
		Target:        target,
	}
}
