// prg.go - PRG image loader.
//
// LoadPRG always copies the body to RAM[load_addr:]; BASIC pointer patching
// and autorun only happen when the caller explicitly opts in via the
// autorun parameter, never implicitly.

package main

// EndAddress computes the address one past the last byte a PRG body of the
// given length would occupy once loaded at loadAddr, wrapping around the
// 64 KiB address space like the CPU's own program counter does.
func (c *Core) EndAddress(loadAddr uint16, bodyLen int) uint16 {
	return loadAddr + uint16(bodyLen)
}

// LoadPRG copies body into RAM starting at loadAddr. If autorun is true and
// loadAddr is 0x1001 (the standard BASIC program start), it also patches the
// zero-page BASIC text pointers (0x2D/0x2E "start of variables", 0x2F/0x30
// "start of arrays") to the program's end address, the same bookkeeping a
// BASIC LOAD performs before a RUN. It always returns nil: callers pass the
// body only, and the load address comes from wherever they sourced the PRG
// image's first two bytes. BadPrg for an image too short to carry a load
// address is returned by LoadPRGImage.
func (c *Core) LoadPRG(loadAddr uint16, body []byte, autorun bool) error {
	for i, b := range body {
		c.Poke(loadAddr+uint16(i), b)
	}

	if autorun && loadAddr == 0x1001 {
		end := c.EndAddress(loadAddr, len(body))
		c.Poke(0x2D, byte(end))
		c.Poke(0x2E, byte(end>>8))
		c.Poke(0x2F, byte(end))
		c.Poke(0x30, byte(end>>8))
	}

	return nil
}

// LoadPRGImage parses a raw PRG byte stream (2-byte little-endian load
// address followed by payload) and loads it via LoadPRG.
func (c *Core) LoadPRGImage(image []byte, autorun bool) error {
	if len(image) < 2 {
		return &BadPrg{Len: len(image)}
	}

	loadAddr := uint16(image[0]) | uint16(image[1])<<8
	return c.LoadPRG(loadAddr, image[2:], autorun)
}
