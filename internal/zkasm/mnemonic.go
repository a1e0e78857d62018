package zkasm

// family groups mnemonics by operand shape. The length oracle and the
// encoder both dispatch on it instead of repeating a per-opcode switch.
type family int

const (
	// familyRegOrImmDst covers "opcode dst src" forms where src is either
	// a register or an immediate/label: mov, assert, eq, neq, not, gte,
	// mload.
	familyRegOrImmDst family = iota
	// familyBranch covers "opcode target" forms: jmp, cjmp, call, range.
	familyBranch
	// familyArith covers "opcode dst src1 src2" forms where src1 is always
	// a register and src2 is register-or-immediate: add, mul, and, or, xor.
	familyArith
	// familyMemoryStore covers mstore's "opcode addr src" form, where addr
	// is register-or-immediate and src is always a register.
	familyMemoryStore
	// familyNullary covers ret and end.
	familyNullary
)

// spec pairs a family with the concrete opcode and, for familyRegOrImmDst,
// the register field the destination operand is packed into (mov/not/mload
// use Reg0, the comparison family uses Reg2).
type spec struct {
	opcode   Opcode
	fam      family
	dstField uint64
}

// mnemonics is the mnemonic -> (opcode, arity, operand layout) table the
// length oracle and encoder are both driven from. Opcodes are matched
// case-insensitively; callers lowercase the token before lookup.
var mnemonics = map[string]spec{
	"mov":    {OpcodeMOV, familyRegOrImmDst, Reg0FieldBitPosition},
	"assert": {OpcodeASSERT, familyRegOrImmDst, Reg2FieldBitPosition},
	"eq":     {OpcodeEQ, familyRegOrImmDst, Reg2FieldBitPosition},
	"neq":    {OpcodeNEQ, familyRegOrImmDst, Reg2FieldBitPosition},
	"not":    {OpcodeNOT, familyRegOrImmDst, Reg0FieldBitPosition},
	"gte":    {OpcodeGTE, familyRegOrImmDst, Reg2FieldBitPosition},
	"mload":  {OpcodeMLOAD, familyRegOrImmDst, Reg0FieldBitPosition},

	"jmp":   {OpcodeJMP, familyBranch, 0},
	"cjmp":  {OpcodeCJMP, familyBranch, 0},
	"call":  {OpcodeCALL, familyBranch, 0},
	"range": {OpcodeRC, familyBranch, 0},

	"add": {OpcodeADD, familyArith, 0},
	"mul": {OpcodeMUL, familyArith, 0},
	"and": {OpcodeAND, familyArith, 0},
	"or":  {OpcodeOR, familyArith, 0},
	"xor": {OpcodeXOR, familyArith, 0},

	"mstore": {OpcodeMSTORE, familyMemoryStore, 0},

	"ret": {OpcodeRET, familyNullary, 0},
	"end": {OpcodeEND, familyNullary, 0},
}

// arity returns the expected token count (mnemonic included) for a family.
func (f family) arity() int {
	switch f {
	case familyRegOrImmDst:
		return 3
	case familyBranch:
		return 2
	case familyArith:
		return 4
	case familyMemoryStore:
		return 3
	case familyNullary:
		return 1
	default:
		return 0
	}
}
