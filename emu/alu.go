// Package emu provides functional RV32I emulation.
package emu

import (
	"fmt"

	"github.com/sarchlab/rv32sim/insts"
)

// ALU implements the RV32I immediate-form arithmetic and logic operations.
// Each operation reads rs1 from the register file, computes a 32-bit
// result, and writes it to rd. Immediates are expected to be already
// sign-extended by the caller (see insts.SignExtend12); the ALU performs
// no extension of its own.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADDI performs addition with immediate: rd = rs1 + imm.
// Overflow wraps modulo 2^32 and is never a fault.
func (a *ALU) ADDI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}
	result := uint32(int32(op1) + int32(imm))

	return a.regFile.Write(rd, result)
}

// SLTI performs signed set-less-than with immediate:
// rd = 1 if rs1 < imm (two's-complement comparison), else 0.
func (a *ALU) SLTI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}
	var result uint32
	if int32(op1) < int32(imm) {
		result = 1
	}

	return a.regFile.Write(rd, result)
}

// SLTIU performs unsigned set-less-than with immediate:
// rd = 1 if rs1 < imm (unsigned comparison of the bit patterns), else 0.
// SLTIU rd, rs1, 1 is the SEQZ idiom; it falls out of the general rule.
func (a *ALU) SLTIU(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}
	var result uint32
	if op1 < imm {
		result = 1
	}

	return a.regFile.Write(rd, result)
}

// ANDI performs bitwise AND with immediate: rd = rs1 & imm.
func (a *ALU) ANDI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}

	return a.regFile.Write(rd, op1&imm)
}

// ORI performs bitwise OR with immediate: rd = rs1 | imm.
func (a *ALU) ORI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}

	return a.regFile.Write(rd, op1|imm)
}

// XORI performs bitwise XOR with immediate: rd = rs1 ^ imm.
// XORI rd, rs1, -1 is the NOT idiom.
func (a *ALU) XORI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}

	return a.regFile.Write(rd, op1^imm)
}

// SLLI performs a logical left shift: rd = rs1 << shamt.
func (a *ALU) SLLI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}
	shamt := imm & 0x1F // Shift amount mod 32

	return a.regFile.Write(rd, op1<<shamt)
}

// SRLI performs a logical right shift: rd = rs1 >> shamt.
// Zeroes are shifted into the upper bits.
func (a *ALU) SRLI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}
	shamt := imm & 0x1F // Shift amount mod 32

	return a.regFile.Write(rd, op1>>shamt)
}

// SRAI performs an arithmetic right shift: rd = rs1 >> shamt.
// The original sign bit is shifted into the upper bits.
func (a *ALU) SRAI(rd, rs1 uint8, imm uint32) error {
	op1, err := a.regFile.Read(rs1)
	if err != nil {
		return err
	}
	shamt := imm & 0x1F // Shift amount mod 32

	return a.regFile.Write(rd, uint32(int32(op1)>>shamt))
}

// Apply dispatches one immediate-form operation by its opcode tag.
func (a *ALU) Apply(op insts.Op, rd, rs1 uint8, imm uint32) error {
	switch op {
	case insts.OpADDI:
		return a.ADDI(rd, rs1, imm)
	case insts.OpSLTI:
		return a.SLTI(rd, rs1, imm)
	case insts.OpSLTIU:
		return a.SLTIU(rd, rs1, imm)
	case insts.OpANDI:
		return a.ANDI(rd, rs1, imm)
	case insts.OpORI:
		return a.ORI(rd, rs1, imm)
	case insts.OpXORI:
		return a.XORI(rd, rs1, imm)
	case insts.OpSLLI:
		return a.SLLI(rd, rs1, imm)
	case insts.OpSRLI:
		return a.SRLI(rd, rs1, imm)
	case insts.OpSRAI:
		return a.SRAI(rd, rs1, imm)
	default:
		return fmt.Errorf("unknown operation %v", op)
	}
}
