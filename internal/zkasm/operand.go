package zkasm

import (
	"regexp"
	"strconv"
	"strings"
)

// ImmediateFlag distinguishes a classified operand that resolves to a
// literal/immediate value from one that resolves to a register slot.
type ImmediateFlag int

const (
	// NoUsed means the operand is a register index, to be one-hot encoded
	// into a register field.
	NoUsed ImmediateFlag = iota
	// Used means the operand is a literal, resolved label, or (on a
	// classification miss) the legacy zero placeholder, to be emitted as
	// an immediate follow-word.
	Used
)

// classifiedOperand is the result of classifying one operand token.
type classifiedOperand struct {
	Flag  ImmediateFlag
	Value uint64
}

// registerPattern matches a single-digit register reference, r0..r9
// syntactically (the assembler does not validate the digit is within the
// machine's actual register count).
var registerPattern = regexp.MustCompile(`^r\d$`)

// LabelTable maps a label name to the program-counter value it was bound
// to during relocation.
type LabelTable map[string]uint64

// classify implements the operand classification rules, in order: decimal
// literal, hex literal, register reference, label reference. A label miss
// yields (Used, 0) unless Config.Strict is set, in which case it is an
// UnknownLabelPlaceholderError.
func (a *Assembler) classify(token string) (classifiedOperand, error) {
	token = strings.TrimSpace(token)

	if !strings.Contains(token, "0x") {
		if v, err := strconv.ParseUint(token, 10, 64); err == nil {
			return classifiedOperand{Used, v}, nil
		}
	} else if v, err := strconv.ParseUint(token[strings.Index(token, "0x")+2:], 16, 64); err == nil {
		return classifiedOperand{Used, v}, nil
	}

	if registerPattern.MatchString(token) {
		idx, err := strconv.ParseUint(token[1:], 10, 64)
		if err != nil {
			return classifiedOperand{}, &ParseIntError{Token: token}
		}
		return classifiedOperand{NoUsed, idx}, nil
	}

	if pc, ok := a.Labels[token]; ok {
		return classifiedOperand{Used, pc}, nil
	}
	if a.Config.Strict {
		return classifiedOperand{}, &UnknownLabelPlaceholderError{Label: token}
	}
	return classifiedOperand{Used, 0}, nil
}

// registerIndex parses a bare register token ("r0".."r8") into its index.
// Unlike classify, it never falls back to an immediate or label
// interpretation: it is used for operand slots the grammar fixes to be a
// register (destination slots, the always-register operand of arith ops,
// mstore's source register).
func (a *Assembler) registerIndex(token string) (uint64, error) {
	token = strings.TrimSpace(token)
	if !registerPattern.MatchString(token) {
		return 0, &ParseIntError{Token: token}
	}
	idx, err := strconv.ParseUint(token[1:], 10, 64)
	if err != nil {
		return 0, &ParseIntError{Token: token}
	}
	return idx, nil
}
