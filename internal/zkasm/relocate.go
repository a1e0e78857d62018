package zkasm

import (
	"fmt"
	"strconv"
	"strings"
)

// relocate walks lines with an explicit cursor, stripping label
// definitions and comments, expanding frame-pointer memory pseudo-ops into
// their four-instruction form, and binding each label to the running
// program counter. It replaces a.Labels with a fresh table and fills it. It
// takes ownership of lines: removals and expansions reuse the input's backing
// array, so the caller's slice contents are overwritten; use the returned
// resolved list.
func (a *Assembler) relocate(lines []string) ([]string, error) {
	a.Labels = LabelTable{}
	a.pc = 0

	index := 0
	for index < len(lines) {
		line := lines[index]

		switch {
		case strings.TrimSpace(line) == "":
			lines = dropAt(lines, index)

		case strings.Contains(line, ":"):
			label := strings.TrimSuffix(strings.TrimSpace(line), ":")
			a.Labels[label] = a.pc
			lines = dropAt(lines, index)

		case strings.Contains(line, "//"):
			lines = dropAt(lines, index)

		case strings.Contains(line, "["):
			expansion, err := a.expandFramePointerOperand(line)
			if err != nil {
				return nil, err
			}
			lines = replaceAt(lines, index, expansion)

		default:
			tokens := strings.Fields(line)
			length, err := a.instructionLength(tokens)
			if err != nil {
				return nil, err
			}
			a.pc += length
			index++
		}
	}

	return lines, nil
}

// dropAt removes the line at index without advancing the cursor, so the
// caller re-examines whatever now occupies that position.
func dropAt(lines []string, index int) []string {
	return append(lines[:index], lines[index+1:]...)
}

// replaceAt substitutes the line at index with replacement, leaving the
// cursor at index so the newly-inserted lines are themselves walked by the
// relocator (this is what lets a replacement line that is itself a
// pseudo-op, comment, or label be handled correctly; none of the fixed
// frame-pointer expansions are, but the cursor discipline doesn't assume
// otherwise).
func replaceAt(lines []string, index int, replacement []string) []string {
	tail := append([]string{}, lines[index+1:]...)
	lines = append(lines[:index], replacement...)
	return append(lines, tail...)
}

// expandFramePointerOperand expands a bracketed frame-pointer memory
// pseudo-instruction ("mload rD [r8,offset]" / "mstore [r8,offset] rS")
// into the four real instructions that compute the effective address and
// perform the load/store. The offset's sign is discarded: both positive and
// negative offsets emit abs(offset) as the `not` operand, reproducing a
// documented (if questionable) legacy behaviour.
func (a *Assembler) expandFramePointerOperand(line string) ([]string, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return nil, &MalformedMemoryOperandError{Line: line}
	}

	mnemonic := strings.ToLower(tokens[0])
	var bracketToken, otherReg string
	switch mnemonic {
	case "mload":
		otherReg, bracketToken = tokens[1], tokens[2]
	case "mstore":
		bracketToken, otherReg = tokens[1], tokens[2]
	default:
		return nil, &MalformedMemoryOperandError{Line: line}
	}

	offset, err := a.parseFrameOffset(bracketToken, line)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = -offset
	}

	expansion := []string{
		fmt.Sprintf("not r6 %d", offset),
		"add r6 r6 1",
		"add r6 r8 r6",
	}
	switch mnemonic {
	case "mload":
		expansion = append(expansion, fmt.Sprintf("mload %s r6", otherReg))
	case "mstore":
		expansion = append(expansion, fmt.Sprintf("mstore r6 %s", otherReg))
	}
	return expansion, nil
}

// parseFrameOffset strips "[" and "]" from a bracketed operand, splits on
// ",", validates the base register, and parses the signed offset.
func (a *Assembler) parseFrameOffset(bracketToken, line string) (int64, error) {
	if !strings.HasPrefix(bracketToken, "[") || !strings.HasSuffix(bracketToken, "]") {
		return 0, &MalformedMemoryOperandError{Line: line}
	}
	inner := bracketToken[1 : len(bracketToken)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return 0, &MalformedMemoryOperandError{Line: line}
	}

	base := parts[0]
	if base != "r8" && !a.Config.AllowNonR8Base {
		return 0, &MalformedMemoryOperandError{Line: line}
	}

	offset, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, &ParseIntError{Token: parts[1]}
	}
	return offset, nil
}
