// Package cmp fixes the trace-column layout for the gte/neq comparison
// builtin table: op0 >= op1 holds iff op0 - op1 (computed in-field) decomposes
// into two 16-bit limbs whose recombination range-checks as a genuine u32,
// rather than wrapping around the field's modulus.
package cmp

import "github.com/keurnel/zkasm/internal/stark"

const (
	ColOp0 = iota
	ColOp1
	ColDiff
	ColDiffLimbLo
	ColDiffLimbHi
	ColDiffLimbLoPermuted
	ColDiffLimbHiPermuted
	ColFilter
)

// NumCols is the total column count of one cmp-trace row.
const NumCols = ColFilter + 1

// CTLDataWithCPU returns the (op0, op1) tuple a cmp row offers the cpu
// table's lookup.
func CTLDataWithCPU() []stark.Column {
	return stark.Singles([]int{ColOp0, ColOp1})
}

// CTLFilterWithCPU is the lookup multiplicity on the cmp side.
func CTLFilterWithCPU() stark.Column {
	return stark.Single(ColFilter)
}

// CTLDataWithRangecheck returns the diff column a cmp row offers the
// rangecheck table's lookup, proving diff is a genuine non-negative u32.
func CTLDataWithRangecheck() []stark.Column {
	return stark.Singles([]int{ColDiff})
}

// CTLFilterWithRangecheck is the lookup multiplicity for the diff check.
func CTLFilterWithRangecheck() stark.Column {
	return stark.Single(ColFilter)
}
