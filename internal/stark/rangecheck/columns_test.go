package rangecheck

import (
	"testing"

	"github.com/keurnel/zkasm/internal/stark"
)

func TestColumns_UniqueAndContiguous(t *testing.T) {
	cols := []int{
		ColVal, ColLimbLo, ColLimbHi, ColLimbLoPermuted, ColLimbHiPermuted,
		ColFixRangeCheckU16, ColFixRangeCheckU16PermutedLo, ColFixRangeCheckU16PermutedHi,
		ColMemoryFilter, ColCmpFilter, ColCPUFilter,
	}
	seen := make(map[int]bool, len(cols))
	max := -1
	for _, c := range cols {
		if seen[c] {
			t.Errorf("column index %d assigned more than once", c)
		}
		seen[c] = true
		if c > max {
			max = c
		}
	}
	for i := 0; i <= max; i++ {
		if !seen[i] {
			t.Errorf("column index %d is unused (gap in layout)", i)
		}
	}
	if NumCols != max+1 {
		t.Errorf("NumCols = %d, want %d", NumCols, max+1)
	}
}

func TestCTLData_AllReferenceVal(t *testing.T) {
	scenarios := []struct {
		name string
		data []stark.Column
	}{
		{"memory", CTLDataMemory()},
		{"cmp", CTLDataWithCmp()},
		{"cpu", CTLDataWithCPU()},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			if len(scenario.data) != 1 || scenario.data[0].LinearCombination[0].Index != ColVal {
				t.Errorf("expected a single column referencing ColVal, got %v", scenario.data)
			}
		})
	}
}

func TestCTLFilters_Distinct(t *testing.T) {
	filters := map[string]int{
		"memory": CTLFilterMemory().LinearCombination[0].Index,
		"cmp":    CTLFilterWithCmp().LinearCombination[0].Index,
		"cpu":    CTLFilterWithCPU().LinearCombination[0].Index,
	}
	seen := make(map[int]string)
	for name, idx := range filters {
		if other, ok := seen[idx]; ok {
			t.Errorf("%s and %s share filter column %d", name, other, idx)
		}
		seen[idx] = name
	}
}
