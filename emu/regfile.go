// Package emu provides functional RV32I emulation.
package emu

import (
	"errors"
	"fmt"
)

// NumRegs is the number of architectural integer registers.
const NumRegs = 32

// ErrInvalidRegister is returned when a register index is outside 0-31.
var ErrInvalidRegister = errors.New("invalid register")

// RegFile represents the RV32I integer register file.
// It contains 32 general-purpose registers (x0-x31).
// x0 is the zero register: it always reads as 0 and ignores writes.
type RegFile struct {
	// X holds general-purpose registers x0-x31.
	// X[0] is never written; the zero register is enforced in Read/Write.
	X [NumRegs]uint32
}

// NewRegFile creates a new all-zero register file.
func NewRegFile() *RegFile {
	return &RegFile{}
}

// Read reads a register value. Register 0 returns 0 (the zero register).
// Indices outside 0-31 return ErrInvalidRegister.
func (r *RegFile) Read(reg uint8) (uint32, error) {
	if reg >= NumRegs {
		return 0, fmt.Errorf("read x%d: %w", reg, ErrInvalidRegister)
	}
	if reg == 0 {
		return 0, nil
	}
	return r.X[reg], nil
}

// Write writes a value to a register. Writes to register 0 are silently
// discarded. Indices outside 0-31 return ErrInvalidRegister.
func (r *RegFile) Write(reg uint8, value uint32) error {
	if reg >= NumRegs {
		return fmt.Errorf("write x%d: %w", reg, ErrInvalidRegister)
	}
	if reg == 0 {
		return nil
	}
	r.X[reg] = value
	return nil
}
