package zkasm

// Config holds the two behavioural switches governing relocation leniency:
// by default the assembler preserves the legacy quirks of silent zero on an
// unresolved label and r8-only frame-pointer bases.
type Config struct {
	// Strict upgrades an unresolved label reference from the legacy
	// (Used, 0) placeholder to an UnknownLabelPlaceholderError.
	Strict bool
	// AllowNonR8Base permits a base register other than r8 in a bracketed
	// frame-pointer memory operand instead of raising
	// MalformedMemoryOperandError.
	AllowNonR8Base bool
}

// Assembler owns exclusive state for one compilation unit: its label table
// and the running program counter accumulated during relocation. It is not
// safe to reuse across unrelated inputs; construct a fresh Assembler (via
// New) per call to AssembleLink.
type Assembler struct {
	Labels LabelTable
	Config Config

	pc uint64
}

// New returns an Assembler ready for one assemble-link call.
func New(config Config) *Assembler {
	return &Assembler{
		Labels: LabelTable{},
		Config: config,
	}
}

// AssembleLink runs relocation followed by encoding over lines and returns
// the flat ordered sequence of hex-formatted instruction and immediate
// words.
func (a *Assembler) AssembleLink(lines []string) ([]string, error) {
	resolved, err := a.relocate(lines)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, line := range resolved {
		encoded, err := a.encodeInstruction(line)
		if err != nil {
			return nil, err
		}
		words = append(words, encoded...)
	}
	return words, nil
}

// AssembleLink runs the default (non-strict, r8-only) assembler over lines.
func AssembleLink(lines []string) ([]string, error) {
	return New(Config{}).AssembleLink(lines)
}
