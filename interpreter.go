// interpreter.go - the single-instruction step contract.
//
// Step fetches and dispatches one instruction through the opcode table, then
// drives the TED scheduler forward by the cycles that instruction consumed.

package main

import "log"

// Step executes exactly one instruction and returns the number of clock
// ticks it consumed. It returns RomMissing if LoadROMs has not been called.
// An undocumented opcode with no illegal-NOP mapping does not stop
// execution: it is logged, recorded in lastUnknownOpcode, treated as a
// 1-cycle, 1-byte NOP, and execution continues at the next address.
func (c *Core) Step() (int, error) {
	if !c.romsLoaded {
		return 0, &RomMissing{}
	}

	c.pendingErr = nil

	opPC := c.PC
	opcode := c.fetchByte()
	c.currentOpcode = opcode

	handler := opcodeTable[opcode]
	if handler == nil {
		c.lastUnknownOpcode = &UnknownOpcode{Opcode: opcode, PC: opPC}
		log.Print(c.lastUnknownOpcode)
		c.clockTicks = 1
	} else {
		handler(c)
	}

	c.tedStep(c.clockTicks)

	return c.clockTicks, c.pendingErr
}
