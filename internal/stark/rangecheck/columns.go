// Package rangecheck fixes the trace-column layout for the shared u32
// range-check table: a value is split into 16-bit low/high limbs, each
// range-checked against a preprocessed [0, 2^16) column via a permuted
// lookup pair. Every other table that needs a value
// proven to fit in u32 (cmp's diff, memory's address/value) routes through
// this table via a cross-table lookup rather than duplicating the check.
package rangecheck

import "github.com/keurnel/zkasm/internal/stark"

const (
	ColVal = iota
	ColLimbLo
	ColLimbHi
	ColLimbLoPermuted
	ColLimbHiPermuted
	ColFixRangeCheckU16
	ColFixRangeCheckU16PermutedLo
	ColFixRangeCheckU16PermutedHi
	ColMemoryFilter
	ColCmpFilter
	ColCPUFilter
)

// NumCols is the total column count of one rangecheck-trace row.
const NumCols = ColCPUFilter + 1

// CTLDataMemory returns the value column a rangecheck row offers the
// memory table's lookup.
func CTLDataMemory() []stark.Column {
	return stark.Singles([]int{ColVal})
}

// CTLFilterMemory is the lookup multiplicity for a memory-sourced check.
func CTLFilterMemory() stark.Column {
	return stark.Single(ColMemoryFilter)
}

// CTLDataWithCmp returns the value column a rangecheck row offers the cmp
// table's lookup.
func CTLDataWithCmp() []stark.Column {
	return stark.Singles([]int{ColVal})
}

// CTLFilterWithCmp is the lookup multiplicity for a cmp-sourced check.
func CTLFilterWithCmp() stark.Column {
	return stark.Single(ColCmpFilter)
}

// CTLDataWithCPU returns the value column a rangecheck row offers the cpu
// table's lookup (the `range` opcode's direct range-check request).
func CTLDataWithCPU() []stark.Column {
	return stark.Singles([]int{ColVal})
}

// CTLFilterWithCPU is the lookup multiplicity for a cpu-sourced check.
func CTLFilterWithCPU() stark.Column {
	return stark.Single(ColCPUFilter)
}
