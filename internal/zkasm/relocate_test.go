package zkasm

import "testing"

func TestExpandFramePointerOperand_Mstore(t *testing.T) {
	a := New(Config{})
	expansion, err := a.expandFramePointerOperand("mstore [r8,-3] r4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{
		"not r6 3",
		"add r6 r6 1",
		"add r6 r8 r6",
		"mstore r6 r4",
	}
	if len(expansion) != len(expected) {
		t.Fatalf("got %d lines, want %d: %v", len(expansion), len(expected), expansion)
	}
	for i := range expected {
		if expansion[i] != expected[i] {
			t.Errorf("line %d = %q, want %q", i, expansion[i], expected[i])
		}
	}
}

func TestExpandFramePointerOperand_PositiveOffsetMatchesNegative(t *testing.T) {
	a := New(Config{})
	negative, err := a.expandFramePointerOperand("mstore [r8,-3] r4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	positive, err := a.expandFramePointerOperand("mstore [r8,3] r4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range negative {
		if negative[i] != positive[i] {
			t.Errorf("line %d: negative-offset expansion %q != positive-offset expansion %q (sign must be discarded)", i, negative[i], positive[i])
		}
	}
}

func TestExpandFramePointerOperand_Mload(t *testing.T) {
	a := New(Config{})
	expansion, err := a.expandFramePointerOperand("mload r0 [r8,-7]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{
		"not r6 7",
		"add r6 r6 1",
		"add r6 r8 r6",
		"mload r0 r6",
	}
	for i := range expected {
		if expansion[i] != expected[i] {
			t.Errorf("line %d = %q, want %q", i, expansion[i], expected[i])
		}
	}
}

func TestExpandFramePointerOperand_NonR8Base(t *testing.T) {
	a := New(Config{})
	if _, err := a.expandFramePointerOperand("mstore [r7,-3] r4"); err == nil {
		t.Fatal("expected MalformedMemoryOperandError for a non-r8 base, got none")
	}

	permissive := New(Config{AllowNonR8Base: true})
	if _, err := permissive.expandFramePointerOperand("mstore [r7,-3] r4"); err != nil {
		t.Fatalf("AllowNonR8Base should permit a non-r8 base: %v", err)
	}
}

func TestExpandFramePointerOperand_Malformed(t *testing.T) {
	scenarios := []string{
		"mstore [r8-3] r4",
		"mstore [r8,] r4",
		"mstore [r8,abc] r4",
	}
	for _, line := range scenarios {
		t.Run(line, func(t *testing.T) {
			a := New(Config{})
			if _, err := a.expandFramePointerOperand(line); err == nil {
				t.Errorf("expected an error for malformed operand %q, got none", line)
			}
		})
	}
}

func TestRelocate_LabelsAndComments(t *testing.T) {
	a := New(Config{})
	lines := []string{
		"mov r0 1",
		"// a comment line",
		".LBL_0_0:",
		"eq r0 r3",
		"cjmp .LBL_0_0",
		"end",
	}
	resolved, err := a.relocate(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range resolved {
		if line == "" {
			t.Errorf("relocate left a blank line in the output")
		}
	}
	want := []string{"mov r0 1", "eq r0 r3", "cjmp .LBL_0_0", "end"}
	if len(resolved) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(resolved), len(want), resolved)
	}
	for i := range want {
		if resolved[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, resolved[i], want[i])
		}
	}

	pc, ok := a.Labels[".LBL_0_0"]
	if !ok {
		t.Fatal("expected .LBL_0_0 to be bound in the label table")
	}
	// "mov r0 1" encodes to 2 words (immediate), so the label after it binds
	// to pc == 2.
	if pc != 2 {
		t.Errorf(".LBL_0_0 bound to pc %d, want 2", pc)
	}
}

func TestRelocate_BlankLinesAreSkipped(t *testing.T) {
	a := New(Config{})
	resolved, err := a.relocate([]string{"mov r0 1", "", "   ", "end"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"mov r0 1", "end"}
	if len(resolved) != len(want) {
		t.Fatalf("got %v, want %v", resolved, want)
	}
}
