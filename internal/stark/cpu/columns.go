// Package cpu fixes the main execution-trace column layout: one row per
// executed instruction, covering register state, decoded instruction
// fields, per-register and per-opcode one-hot selectors, and the
// program-consistency columns the cpu table cross-checks against the
// program (instruction-memory) table.
package cpu

import "github.com/keurnel/zkasm/internal/stark"

// registerCount mirrors zkasm.RegisterCount (r0..r8); duplicated here rather
// than imported so this package stays independent of the assembler.
const registerCount = 9

// Context columns: clk, pc, flag, and the 9 register values.
const (
	ColClk = iota
	ColPC
	ColFlag
	colStartReg
)

var ColRegs = colRange(colStartReg, registerCount)
var colRegsEnd = ColRegs[len(ColRegs)-1] + 1

// Instruction-decode columns.
var (
	ColRawInst = colRegsEnd
	ColInst    = ColRawInst + 1
	ColOp1Imm  = ColInst + 1
	ColOpcode  = ColOp1Imm + 1
	ColImmVal  = ColOpcode + 1
)

// Register-selector columns: op0/op1/dst scalar slots plus two auxiliaries,
// followed by three one-hot register-selector ranges (which physical
// register each of op0/op1/dst reads or writes).
var (
	ColOp0       = ColImmVal + 1
	ColOp1       = ColOp0 + 1
	ColDst       = ColOp1 + 1
	ColAux0      = ColDst + 1
	ColAux1      = ColAux0 + 1
	colSOp0Start = ColAux1 + 1
)

var ColSOp0 = colRange(colSOp0Start, registerCount)
var ColSOp1 = colRange(ColSOp0[len(ColSOp0)-1]+1, registerCount)
var ColSDst = colRange(ColSOp1[len(ColSOp1)-1]+1, registerCount)
var colSDstEnd = ColSDst[len(ColSDst)-1] + 1

// Opcode-selector columns: one one-hot bit per core opcode, in the same
// order as the assembler's core one-hot block (opcode.go's bits 23-34).
var (
	ColSAdd    = colSDstEnd
	ColSMul    = ColSAdd + 1
	ColSEq     = ColSMul + 1
	ColSAssert = ColSEq + 1
	ColSMov    = ColSAssert + 1
	ColSJmp    = ColSMov + 1
	ColSCjmp   = ColSJmp + 1
	ColSCall   = ColSCjmp + 1
	ColSRet    = ColSCall + 1
	ColSMload  = ColSRet + 1
	ColSMstore = ColSMload + 1
	ColSEnd    = ColSMstore + 1
)

// Builtin-selector columns: one one-hot bit per builtin opcode, in the same
// order as the assembler's builtin one-hot block (opcode.go's bits 14-22).
var (
	ColSRc    = ColSEnd + 1
	ColSAnd   = ColSRc + 1
	ColSOr    = ColSAnd + 1
	ColSXor   = ColSOr + 1
	ColSNot   = ColSXor + 1
	ColSNeq   = ColSNot + 1
	ColSGte   = ColSNeq + 1
	ColSPsdn  = ColSGte + 1
	ColSEcdsa = ColSPsdn + 1
)

// Program-consistency columns: the cpu table's CTL against the program
// table runs over (raw instruction word, pc), split into a live-execution
// side (zipped once per executed row) and a program-preimage side (zipped
// once per program row), each carrying its own lookup-multiplicity filter.
var (
	ColRawPC      = ColSEcdsa + 1
	ColZipRaw     = ColRawPC + 1
	ColZipExed    = ColZipRaw + 1
	ColPerZipRaw  = ColZipExed + 1
	ColPerZipExed = ColPerZipRaw + 1
)

// NumCols is the total column count of one cpu-trace row.
var NumCols = ColPerZipExed + 1

func colRange(start, count int) []int {
	r := make([]int, count)
	for i := range r {
		r[i] = start + i
	}
	return r
}

// CTLDataWithProgram returns the column tuple the cpu table offers for its
// lookup against the program table: the raw instruction word and the pc it
// was fetched from.
func CTLDataWithProgram() []stark.Column {
	return stark.Singles([]int{ColRawInst, ColPC})
}

// CTLFilterWithProgram is the lookup multiplicity for an executed row.
func CTLFilterWithProgram() stark.Column {
	return stark.Single(ColZipExed)
}

// CTLDataWithBitwise returns the operand/result tuple the cpu table offers
// a bitwise (and/or/xor/not) instruction's row for cross-checking against
// the bitwise table.
func CTLDataWithBitwise() []stark.Column {
	return stark.Singles([]int{ColOp0, ColOp1, ColDst})
}

// CTLFilterWithBitwise fires on rows executing a bitwise builtin.
func CTLFilterWithBitwise() stark.Column {
	return stark.Column{LinearCombination: []stark.LinearComboTerm{
		{Index: ColSAnd, Weight: 1},
		{Index: ColSOr, Weight: 1},
		{Index: ColSXor, Weight: 1},
		{Index: ColSNot, Weight: 1},
	}}
}

// CTLDataWithCmp returns the operand tuple for a gte/neq instruction's row.
func CTLDataWithCmp() []stark.Column {
	return stark.Singles([]int{ColOp0, ColOp1})
}

// CTLFilterWithCmp fires on rows executing gte or neq.
func CTLFilterWithCmp() stark.Column {
	return stark.Column{LinearCombination: []stark.LinearComboTerm{
		{Index: ColSGte, Weight: 1},
		{Index: ColSNeq, Weight: 1},
	}}
}

// CTLDataWithRangecheck returns the value column for a range instruction's
// row.
func CTLDataWithRangecheck() []stark.Column {
	return stark.Singles([]int{ColOp0})
}

// CTLFilterWithRangecheck fires on rows executing range.
func CTLFilterWithRangecheck() stark.Column {
	return stark.Single(ColSRc)
}
