package zkasm

import (
	"fmt"
	"strings"
)

// encodeInstruction emits the word sequence for one post-relocation line:
// a 16-hex-digit base instruction word, optionally followed by an
// unpadded-hex immediate word.
func (a *Assembler) encodeInstruction(line string) ([]string, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, &UnknownOpcodeError{}
	}

	mnemonic := strings.ToLower(tokens[0])
	sp, ok := mnemonics[mnemonic]
	if !ok {
		return nil, &UnknownOpcodeError{Mnemonic: tokens[0]}
	}

	expected := sp.fam.arity()
	if len(tokens) != expected {
		return nil, &ArityMismatchError{Opcode: mnemonic, Expected: expected, Got: len(tokens)}
	}

	var raw uint64
	var tail []string

	// setRegOrImm classifies token and either sets the imm-flag bit and
	// appends the immediate follow-word, or sets a one-hot bit at
	// regField+index.
	setRegOrImm := func(token string, regField uint64) error {
		op, err := a.classify(token)
		if err != nil {
			return err
		}
		if op.Flag == Used {
			raw |= 1 << ImmFlagFieldBitPosition
			tail = append(tail, fmt.Sprintf("%#x", op.Value))
		} else {
			raw |= 1 << (regField + op.Value)
		}
		return nil
	}

	switch sp.fam {
	case familyRegOrImmDst:
		dst, err := a.registerIndex(tokens[1])
		if err != nil {
			return nil, err
		}
		if err := setRegOrImm(tokens[2], Reg1FieldBitPosition); err != nil {
			return nil, err
		}
		raw |= bit(sp.opcode) | 1<<(sp.dstField+dst)

	case familyBranch:
		if err := setRegOrImm(tokens[1], Reg1FieldBitPosition); err != nil {
			return nil, err
		}
		raw |= bit(sp.opcode)

	case familyArith:
		dst, err := a.registerIndex(tokens[1])
		if err != nil {
			return nil, err
		}
		src1, err := a.registerIndex(tokens[2])
		if err != nil {
			return nil, err
		}
		if err := setRegOrImm(tokens[3], Reg1FieldBitPosition); err != nil {
			return nil, err
		}
		raw |= bit(sp.opcode) | 1<<(Reg0FieldBitPosition+dst) | 1<<(Reg2FieldBitPosition+src1)

	case familyMemoryStore:
		if err := setRegOrImm(tokens[1], Reg1FieldBitPosition); err != nil {
			return nil, err
		}
		src, err := a.registerIndex(tokens[2])
		if err != nil {
			return nil, err
		}
		raw |= bit(sp.opcode) | 1<<(Reg2FieldBitPosition+src)

	case familyNullary:
		raw |= bit(sp.opcode)
	}

	word := fmt.Sprintf("0x%016x", raw)
	return append([]string{word}, tail...), nil
}
