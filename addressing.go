// addressing.go - operand fetch and effective-address computation for each
// 6502 addressing mode, plus the stack and branch helpers the opcode
// handlers share. Reads and writes go through Core's own Peek/Poke rather
// than a separate bus interface, matching the single-owner state in core.go.

package main

// fetchByte reads the byte at PC and advances PC by one.
func (c *Core) fetchByte() byte {
	v := c.Peek(c.PC)
	c.PC++
	return v
}

// fetchWord reads a little-endian word at PC and advances PC by two.
func (c *Core) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *Core) addrZeroPage() uint16  { return uint16(c.fetchByte()) }
func (c *Core) addrZeroPageX() uint16 { return uint16(byte(c.fetchByte() + c.X)) }
func (c *Core) addrZeroPageY() uint16 { return uint16(byte(c.fetchByte() + c.Y)) }
func (c *Core) addrAbsolute() uint16  { return c.fetchWord() }

// addrAbsoluteX returns the effective address and whether the index crossed
// a page boundary (informational only; this core does not add the extra
// penalty cycle real hardware charges for page-crossing indexed operations).
func (c *Core) addrAbsoluteX() (uint16, bool) {
	base := c.fetchWord()
	addr := base + uint16(c.X)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

func (c *Core) addrAbsoluteY() (uint16, bool) {
	base := c.fetchWord()
	addr := base + uint16(c.Y)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

// addrIndirectX: zero-page pointer, indexed by X before the dereference.
// The pointer fetch wraps within page zero.
func (c *Core) addrIndirectX() uint16 {
	zp := c.fetchByte() + c.X
	return c.read16ZeroPageWrap(zp)
}

// addrIndirectY: zero-page pointer dereferenced first, then indexed by Y.
func (c *Core) addrIndirectY() (uint16, bool) {
	zp := c.fetchByte()
	base := c.read16ZeroPageWrap(zp)
	addr := base + uint16(c.Y)
	return addr, (base & 0xFF00) != (addr & 0xFF00)
}

// addrIndirect is JMP's only addressing mode, including the classic 6502
// page-wrap bug: if the pointer's low byte is 0xFF, the high byte is fetched
// from the start of the same page rather than the next page.
func (c *Core) addrIndirect() uint16 {
	ptr := c.fetchWord()
	lo := c.Peek(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.Peek(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// addrRelative computes a branch target from a signed 8-bit offset, applied
// after PC has already advanced past the branch instruction's two bytes.
func (c *Core) addrRelative() uint16 {
	offset := int8(c.fetchByte())
	return uint16(int32(c.PC) + int32(offset))
}

// Stack operations. SP always refers to an address in page 0x01 (invariant
// 1); it wraps modulo 256 rather than ever panicking on over/underflow.
func (c *Core) push(v byte) {
	c.Poke(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *Core) pull() byte {
	c.SP++
	return c.Peek(stackBase + uint16(c.SP))
}

func (c *Core) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Core) pullWord() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// branch takes the branch if cond is true, leaving clockTicks accounting to
// the caller. The opcodes.go branch handlers charge a flat 2 cycles; the
// extra cycle of a taken branch is not added.
func (c *Core) branch(cond bool) {
	target := c.addrRelative()
	if cond {
		c.PC = target
	}
}
