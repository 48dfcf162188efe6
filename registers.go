// registers.go - flag bit layout and memory-mapped register addresses
//
// Centralises the Plus/4 I/O register map the core reacts to on write: one
// chip worth of registers (TED) plus the fixed CPU vector and banking
// addresses.

package main

// Status register flag bits, C=0 through N=7 per the canonical 6502 packing.
const (
	FlagC byte = 1 << 0 // Carry
	FlagZ byte = 1 << 1 // Zero
	FlagI byte = 1 << 2 // Interrupt disable
	FlagD byte = 1 << 3 // Decimal mode
	FlagB byte = 1 << 4 // Break
	FlagR byte = 1 << 5 // Reserved, always reads 1
	FlagV byte = 1 << 6 // Overflow
	FlagN byte = 1 << 7 // Negative
)

// Memory map constants.
const (
	ramSize    = 0x10000
	romSize    = 0x8000
	stackBase  = 0x0100
	resetVecLo = 0xFFFC
	resetVecHi = 0xFFFD
	irqVecLo   = 0xFFFE
	irqVecHi   = 0xFFFF
	nmiVecLo   = 0xFFFA
	nmiVecHi   = 0xFFFB
)

// ROM banking and I/O windows.
const (
	ioWindow1Lo = 0xFD00
	ioWindow1Hi = 0xFDFF
	ioWindow2Lo = 0xFF00
	ioWindow2Hi = 0xFF3F

	romBankSelectLo = 0xFDD0
	romBankSelectHi = 0xFDDF

	systemRomFixedLo = 0xFC00
	systemRomFixedHi = 0xFCFF

	romEnableAddr  = 0xFF3E
	romDisableAddr = 0xFF3F

	keyboardLatchAddr = 0xFD30
	keyboardResultAddr = 0xFF08
)

// TED registers (0xFF00-0xFF1F and friends).
const (
	tedTimer0DisableAddr = 0xFF00
	tedTimer0EnableAddr  = 0xFF01
	tedTimer1DisableAddr = 0xFF02
	tedTimer1EnableAddr  = 0xFF03
	tedTimer2DisableAddr = 0xFF04
	tedTimer2EnableAddr  = 0xFF05

	tedVideoModeAddr = 0xFF06 // bit4 = double clock, bit5 = bitmap
	tedCharsetMode   = 0xFF07 // bit7 = 256-char mode

	tedIRRAddr = 0xFF09 // interrupt request register
	tedIMRAddr = 0xFF0A // interrupt mask register + raster-compare bit 8

	tedRasterCompareLoAddr = 0xFF0B
	tedCursorHiAddr        = 0xFF0C
	tedCursorLoAddr        = 0xFF0D

	tedCharsetSourceAddr = 0xFF12 // bit2 set = charset from ROM
	tedCharsetBaseAddr   = 0xFF13
	tedVideoMatrixAddr   = 0xFF14
	tedBackgroundAddr    = 0xFF15
)

// IRR/IMR bit positions.
const (
	irrTimer0 = 0x08
	irrTimer1 = 0x10
	irrTimer2 = 0x40
	irrRaster = 0x02
	irrMaster = 0x80
)

// Timing constants for the TED scheduler.
const (
	clockFrequency       = 885000
	ticksPerRasterLine   = 114
	rasterLines          = 312
	firstScreenLine      = 3
	screenWidth          = 320
	screenHeight         = 200
	ticksPerBlinkInterval = clockFrequency / 8
	timer0ReloadOffset   = 0xC60E
)
