// Package insts provides RV32I instruction definitions.
//
// This package defines the immediate-form (I-type) integer instructions
// and the immediate sign-extension rule used by their encoding. A decoder
// populating Instruction values from binary words lives outside this
// module; execution of the operations lives in the emu package.
package insts

// Op represents an RV32I opcode.
type Op uint16

// RV32I immediate-form integer opcodes.
const (
	OpUnknown Op = iota
	OpADDI
	OpSLTI
	OpSLTIU
	OpANDI
	OpORI
	OpXORI
	OpSLLI
	OpSRLI
	OpSRAI
)

// String returns the assembly mnemonic for the opcode.
func (op Op) String() string {
	switch op {
	case OpADDI:
		return "ADDI"
	case OpSLTI:
		return "SLTI"
	case OpSLTIU:
		return "SLTIU"
	case OpANDI:
		return "ANDI"
	case OpORI:
		return "ORI"
	case OpXORI:
		return "XORI"
	case OpSLLI:
		return "SLLI"
	case OpSRLI:
		return "SRLI"
	case OpSRAI:
		return "SRAI"
	default:
		return "UNKNOWN"
	}
}

// Instruction represents a decoded I-type instruction.
type Instruction struct {
	Op  Op     // Operation code
	Rd  uint8  // Destination register
	Rs1 uint8  // Source register
	Imm uint32 // Immediate value, already sign-extended
}

// SignExtend12 sign-extends a 12-bit two's-complement immediate field to
// 32 bits. The field occupies the low 12 bits of imm; bit 11 is replicated
// into bits 12-31 and any content above bit 11 is discarded.
func SignExtend12(imm uint32) uint32 {
	imm &= 0xFFF
	if imm&0x800 != 0 {
		imm |= ^uint32(0xFFF)
	}
	return imm
}
