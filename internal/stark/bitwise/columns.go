// Package bitwise fixes the trace-column layout for the and/or/xor/not
// builtin table: each row decomposes op0, op1, and the result into 8-bit
// limbs, range-checks every limb via a permuted lookup against a fixed u8
// column, and compresses the per-limb (tag, op0, op1, res) tuple into one
// value per limb for the cpu table's cross-table lookup.
package bitwise

import "github.com/keurnel/zkasm/internal/stark"

const limbCount = 4

// TAG distinguishes which bitwise opcode (and/or/xor/not) produced the row,
// so a single table can serve all four without a dedicated column per op.
const (
	ColTag = iota
	ColOp0
	ColOp1
	ColRes
	colOp0LimbsStart
)

var ColOp0Limbs = colRange(colOp0LimbsStart, limbCount)
var ColOp1Limbs = colRange(ColOp0Limbs[len(ColOp0Limbs)-1]+1, limbCount)
var ColResLimbs = colRange(ColOp1Limbs[len(ColOp1Limbs)-1]+1, limbCount)
var ColCompressLimbs = colRange(ColResLimbs[len(ColResLimbs)-1]+1, limbCount)

var ColOp0LimbsPermuted = colRange(ColCompressLimbs[len(ColCompressLimbs)-1]+1, limbCount)
var ColOp1LimbsPermuted = colRange(ColOp0LimbsPermuted[len(ColOp0LimbsPermuted)-1]+1, limbCount)
var ColResLimbsPermuted = colRange(ColOp1LimbsPermuted[len(ColOp1LimbsPermuted)-1]+1, limbCount)
var ColCompressPermuted = colRange(ColResLimbsPermuted[len(ColResLimbsPermuted)-1]+1, limbCount)

// ColFixRangeCheckU8 is the preprocessed [0, 256) column every limb is
// range-checked against; ColFixRangeCheckU8Permuted carries one permuted
// copy per limb column above (12 = 3 operands * 4 limbs).
var (
	ColFixRangeCheckU8          = ColCompressPermuted[len(ColCompressPermuted)-1] + 1
	colFixRangeCheckU8PermStart = ColFixRangeCheckU8 + 1
)

var ColFixRangeCheckU8Permuted = colRange(colFixRangeCheckU8PermStart, limbCount*3)

var (
	ColFixCompress          = ColFixRangeCheckU8Permuted[len(ColFixRangeCheckU8Permuted)-1] + 1
	colFixCompressPermStart = ColFixCompress + 1
)

var ColFixCompressPermuted = colRange(colFixCompressPermStart, limbCount)

// ColFilter is the cpu table's lookup-multiplicity column for this table.
var ColFilter = ColFixCompressPermuted[len(ColFixCompressPermuted)-1] + 1

// NumCols is the total column count of one bitwise-trace row.
var NumCols = ColFilter + 1

func colRange(start, count int) []int {
	r := make([]int, count)
	for i := range r {
		r[i] = start + i
	}
	return r
}

// CTLDataWithCPU returns the (op0, op1, res) tuple a bitwise row offers the
// cpu table's lookup.
func CTLDataWithCPU() []stark.Column {
	return stark.Singles([]int{ColOp0, ColOp1, ColRes})
}

// CTLFilterWithCPU is the lookup multiplicity on the bitwise side.
func CTLFilterWithCPU() stark.Column {
	return stark.Single(ColFilter)
}
