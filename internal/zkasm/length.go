package zkasm

import (
	"errors"
	"strings"
)

// instructionLength is the length oracle: given a tokenised line, it
// returns how many 64-bit words the instruction encodes to, without doing
// the encoding itself. This is what lets the relocator predict PC
// advancement before the final encoding pass runs.
func (a *Assembler) instructionLength(tokens []string) (uint64, error) {
	if len(tokens) == 0 {
		return 0, &UnknownOpcodeError{}
	}

	mnemonic := strings.ToLower(tokens[0])
	sp, ok := mnemonics[mnemonic]
	if !ok {
		return 0, &UnknownOpcodeError{Mnemonic: tokens[0]}
	}

	expected := sp.fam.arity()
	if len(tokens) != expected {
		return 0, &ArityMismatchError{Opcode: mnemonic, Expected: expected, Got: len(tokens)}
	}

	var variableOperand string
	switch sp.fam {
	case familyRegOrImmDst:
		variableOperand = tokens[2]
	case familyBranch:
		variableOperand = tokens[1]
	case familyArith:
		variableOperand = tokens[3]
	case familyMemoryStore:
		variableOperand = tokens[1]
	case familyNullary:
		return NoImmInstructionLen, nil
	}

	op, err := a.classify(variableOperand)
	if err != nil {
		// A label not bound yet (a forward reference) always encodes as an
		// immediate; under Config.Strict it is checked again at encoding.
		var unresolved *UnknownLabelPlaceholderError
		if errors.As(err, &unresolved) {
			return ImmInstructionLen, nil
		}
		return 0, err
	}
	if op.Flag == Used {
		return ImmInstructionLen, nil
	}
	return NoImmInstructionLen, nil
}
