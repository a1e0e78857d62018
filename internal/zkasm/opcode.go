// Package zkasm assembles the textual zkVM assembly language into the
// packed 64-bit instruction words consumed by the executor.
package zkasm

// Opcode identifies an instruction mnemonic by the bit position of its
// one-hot field within the instruction word. Positions are not declared in
// mnemonic order: the machine groups the twelve "core" opcodes and the
// nine builtin opcodes into two adjacent one-hot blocks below the
// register fields, and the bit a given opcode occupies is fixed by which
// block it belongs to and its position within it.
type Opcode uint

const (
	// Builtin block, bits 14-22.
	OpcodeECDSA Opcode = 14
	OpcodePSDN  Opcode = 15
	OpcodeGTE   Opcode = 16
	OpcodeNEQ   Opcode = 17
	OpcodeNOT   Opcode = 18
	OpcodeXOR   Opcode = 19
	OpcodeOR    Opcode = 20
	OpcodeAND   Opcode = 21
	OpcodeRC    Opcode = 22

	// Core block, bits 23-34.
	OpcodeEND    Opcode = 23
	OpcodeMSTORE Opcode = 24
	OpcodeMLOAD  Opcode = 25
	OpcodeRET    Opcode = 26
	OpcodeCALL   Opcode = 27
	OpcodeCJMP   Opcode = 28
	OpcodeJMP    Opcode = 29
	OpcodeMOV    Opcode = 30
	OpcodeASSERT Opcode = 31
	OpcodeEQ     Opcode = 32
	OpcodeMUL    Opcode = 33
	OpcodeADD    Opcode = 34
)

// Bit-field base positions and word lengths, fixed by the instruction-format
// contract with the executor.
const (
	Reg0FieldBitPosition    uint64 = 35
	Reg1FieldBitPosition    uint64 = 44
	Reg2FieldBitPosition    uint64 = 53
	ImmFlagFieldBitPosition uint64 = 62

	NoImmInstructionLen uint64 = 1
	ImmInstructionLen   uint64 = 2

	// RegisterCount is the number of one-hot slots in each register field
	// (r0..r8). The assembler does not validate that a parsed register
	// index falls within this count; that is the executor's job.
	RegisterCount = 9
)

// bit returns the single-bit mask for the given opcode's one-hot position.
func bit(op Opcode) uint64 {
	return 1 << uint64(op)
}
