// errors.go - error kinds raised by the Plus/4 core

package main

import "fmt"

// UnsupportedMode is raised when a guest program executes an ADC while the
// decimal flag is set. Decimal-mode ADC is a non-goal; the core refuses to
// guess at its semantics rather than silently producing a wrong result.
type UnsupportedMode struct {
	Opcode byte
	PC     uint16
}

func (e *UnsupportedMode) Error() string {
	return fmt.Sprintf("unsupported mode: decimal ADC at PC=0x%04X (opcode 0x%02X)", e.PC, e.Opcode)
}

// UnknownOpcode is raised for a byte outside the documented 6502 opcode set
// and outside the small list of illegal opcodes treated as NOPs. Recoverable:
// the interpreter logs it, advances PC by one, and continues.
type UnknownOpcode struct {
	Opcode byte
	PC     uint16
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// RomMissing is raised when Step is called before LoadROMs has installed
// both ROM images.
type RomMissing struct{}

func (e *RomMissing) Error() string {
	return "step called before ROM images were loaded"
}

// BadPrg is raised when a PRG body is too short to contain a load address.
type BadPrg struct {
	Len int
}

func (e *BadPrg) Error() string {
	return fmt.Sprintf("PRG body too small (%d bytes, need at least 2 for load address)", e.Len)
}
