// opcodes.go - opcode handler bodies, one per opcode×addressing-mode cell.
//
// Each handler resolves its own operand, applies the ALU/bus effect, and
// records the cycle count it consumed. Page-crossing cycle penalties are not
// added; the extra cycle on some indexed/branch operations is not tracked.

package main

// --- Load / store -----------------------------------------------------

func opLDAimm(c *Core) { c.A = c.fetchByte(); c.updateNZ(c.A); c.clockTicks = 2 }
func opLDAzp(c *Core)  { c.A = c.Peek(c.addrZeroPage()); c.updateNZ(c.A); c.clockTicks = 3 }
func opLDAzpx(c *Core) { c.A = c.Peek(c.addrZeroPageX()); c.updateNZ(c.A); c.clockTicks = 4 }
func opLDAabs(c *Core) { c.A = c.Peek(c.addrAbsolute()); c.updateNZ(c.A); c.clockTicks = 4 }
func opLDAabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.A = c.Peek(addr); c.updateNZ(c.A); c.clockTicks = 4 }
func opLDAabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.A = c.Peek(addr); c.updateNZ(c.A); c.clockTicks = 4 }
func opLDAindx(c *Core) { c.A = c.Peek(c.addrIndirectX()); c.updateNZ(c.A); c.clockTicks = 6 }
func opLDAindy(c *Core) { addr, _ := c.addrIndirectY(); c.A = c.Peek(addr); c.updateNZ(c.A); c.clockTicks = 5 }

func opLDXimm(c *Core) { c.X = c.fetchByte(); c.updateNZ(c.X); c.clockTicks = 2 }
func opLDXzp(c *Core)  { c.X = c.Peek(c.addrZeroPage()); c.updateNZ(c.X); c.clockTicks = 3 }
func opLDXzpy(c *Core) { c.X = c.Peek(c.addrZeroPageY()); c.updateNZ(c.X); c.clockTicks = 4 }
func opLDXabs(c *Core) { c.X = c.Peek(c.addrAbsolute()); c.updateNZ(c.X); c.clockTicks = 4 }
func opLDXabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.X = c.Peek(addr); c.updateNZ(c.X); c.clockTicks = 4 }

func opLDYimm(c *Core) { c.Y = c.fetchByte(); c.updateNZ(c.Y); c.clockTicks = 2 }
func opLDYzp(c *Core)  { c.Y = c.Peek(c.addrZeroPage()); c.updateNZ(c.Y); c.clockTicks = 3 }
func opLDYzpx(c *Core) { c.Y = c.Peek(c.addrZeroPageX()); c.updateNZ(c.Y); c.clockTicks = 4 }
func opLDYabs(c *Core) { c.Y = c.Peek(c.addrAbsolute()); c.updateNZ(c.Y); c.clockTicks = 4 }
func opLDYabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.Y = c.Peek(addr); c.updateNZ(c.Y); c.clockTicks = 4 }

func opSTAzp(c *Core)  { c.Poke(c.addrZeroPage(), c.A); c.clockTicks = 3 }
func opSTAzpx(c *Core) { c.Poke(c.addrZeroPageX(), c.A); c.clockTicks = 4 }
func opSTAabs(c *Core) { c.Poke(c.addrAbsolute(), c.A); c.clockTicks = 4 }
func opSTAabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.Poke(addr, c.A); c.clockTicks = 5 }
func opSTAabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.Poke(addr, c.A); c.clockTicks = 5 }
func opSTAindx(c *Core) { c.Poke(c.addrIndirectX(), c.A); c.clockTicks = 6 }
func opSTAindy(c *Core) { addr, _ := c.addrIndirectY(); c.Poke(addr, c.A); c.clockTicks = 6 }

func opSTXzp(c *Core)  { c.Poke(c.addrZeroPage(), c.X); c.clockTicks = 3 }
func opSTXzpy(c *Core) { c.Poke(c.addrZeroPageY(), c.X); c.clockTicks = 4 }
func opSTXabs(c *Core) { c.Poke(c.addrAbsolute(), c.X); c.clockTicks = 4 }

func opSTYzp(c *Core)  { c.Poke(c.addrZeroPage(), c.Y); c.clockTicks = 3 }
func opSTYzpx(c *Core) { c.Poke(c.addrZeroPageX(), c.Y); c.clockTicks = 4 }
func opSTYabs(c *Core) { c.Poke(c.addrAbsolute(), c.Y); c.clockTicks = 4 }

// --- Register transfers -------------------------------------------------

func opTAX(c *Core) { c.X = c.A; c.updateNZ(c.X); c.clockTicks = 2 }
func opTAY(c *Core) { c.Y = c.A; c.updateNZ(c.Y); c.clockTicks = 2 }
func opTXA(c *Core) { c.A = c.X; c.updateNZ(c.A); c.clockTicks = 2 }
func opTYA(c *Core) { c.A = c.Y; c.updateNZ(c.A); c.clockTicks = 2 }
func opTSX(c *Core) { c.X = c.SP; c.updateNZ(c.X); c.clockTicks = 2 }
func opTXS(c *Core) { c.SP = c.X; c.clockTicks = 2 } // flags untouched

// --- Stack ----------------------------------------------------------------

func opPHA(c *Core) { c.push(c.A); c.clockTicks = 3 }
func opPHP(c *Core) { c.push(c.flags() | FlagB); c.clockTicks = 3 }
func opPLA(c *Core) { c.A = c.pull(); c.updateNZ(c.A); c.clockTicks = 4 }
func opPLP(c *Core) { c.setFlags(c.pull()&^FlagB | c.SR&FlagB); c.clockTicks = 4 } // pulled B bit ignored

// --- Logic ------------------------------------------------------------

func opANDimm(c *Core) { c.and(c.fetchByte()); c.clockTicks = 2 }
func opANDzp(c *Core)  { c.and(c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opANDzpx(c *Core) { c.and(c.Peek(c.addrZeroPageX())); c.clockTicks = 4 }
func opANDabs(c *Core) { c.and(c.Peek(c.addrAbsolute())); c.clockTicks = 4 }
func opANDabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.and(c.Peek(addr)); c.clockTicks = 4 }
func opANDabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.and(c.Peek(addr)); c.clockTicks = 4 }
func opANDindx(c *Core) { c.and(c.Peek(c.addrIndirectX())); c.clockTicks = 6 }
func opANDindy(c *Core) { addr, _ := c.addrIndirectY(); c.and(c.Peek(addr)); c.clockTicks = 5 }

func opORAimm(c *Core) { c.ora(c.fetchByte()); c.clockTicks = 2 }
func opORAzp(c *Core)  { c.ora(c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opORAzpx(c *Core) { c.ora(c.Peek(c.addrZeroPageX())); c.clockTicks = 4 }
func opORAabs(c *Core) { c.ora(c.Peek(c.addrAbsolute())); c.clockTicks = 4 }
func opORAabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.ora(c.Peek(addr)); c.clockTicks = 4 }
func opORAabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.ora(c.Peek(addr)); c.clockTicks = 4 }
func opORAindx(c *Core) { c.ora(c.Peek(c.addrIndirectX())); c.clockTicks = 6 }
func opORAindy(c *Core) { addr, _ := c.addrIndirectY(); c.ora(c.Peek(addr)); c.clockTicks = 5 }

func opEORimm(c *Core) { c.eor(c.fetchByte()); c.clockTicks = 2 }
func opEORzp(c *Core)  { c.eor(c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opEORzpx(c *Core) { c.eor(c.Peek(c.addrZeroPageX())); c.clockTicks = 4 }
func opEORabs(c *Core) { c.eor(c.Peek(c.addrAbsolute())); c.clockTicks = 4 }
func opEORabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.eor(c.Peek(addr)); c.clockTicks = 4 }
func opEORabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.eor(c.Peek(addr)); c.clockTicks = 4 }
func opEORindx(c *Core) { c.eor(c.Peek(c.addrIndirectX())); c.clockTicks = 6 }
func opEORindy(c *Core) { addr, _ := c.addrIndirectY(); c.eor(c.Peek(addr)); c.clockTicks = 5 }

func opBITzp(c *Core)  { c.bit(c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opBITabs(c *Core) { c.bit(c.Peek(c.addrAbsolute())); c.clockTicks = 4 }

// --- Arithmetic ----------------------------------------------------------

func opADCimm(c *Core) { c.recordErr(c.adc(c.fetchByte())); c.clockTicks = 2 }
func opADCzp(c *Core)  { c.recordErr(c.adc(c.Peek(c.addrZeroPage()))); c.clockTicks = 3 }
func opADCzpx(c *Core) { c.recordErr(c.adc(c.Peek(c.addrZeroPageX()))); c.clockTicks = 4 }
func opADCabs(c *Core) { c.recordErr(c.adc(c.Peek(c.addrAbsolute()))); c.clockTicks = 4 }
func opADCabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.recordErr(c.adc(c.Peek(addr))); c.clockTicks = 4 }
func opADCabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.recordErr(c.adc(c.Peek(addr))); c.clockTicks = 4 }
func opADCindx(c *Core) { c.recordErr(c.adc(c.Peek(c.addrIndirectX()))); c.clockTicks = 6 }
func opADCindy(c *Core) { addr, _ := c.addrIndirectY(); c.recordErr(c.adc(c.Peek(addr))); c.clockTicks = 5 }

func opSBCimm(c *Core) { c.sbc(c.fetchByte()); c.clockTicks = 2 }
func opSBCzp(c *Core)  { c.sbc(c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opSBCzpx(c *Core) { c.sbc(c.Peek(c.addrZeroPageX())); c.clockTicks = 4 }
func opSBCabs(c *Core) { c.sbc(c.Peek(c.addrAbsolute())); c.clockTicks = 4 }
func opSBCabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.sbc(c.Peek(addr)); c.clockTicks = 4 }
func opSBCabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.sbc(c.Peek(addr)); c.clockTicks = 4 }
func opSBCindx(c *Core) { c.sbc(c.Peek(c.addrIndirectX())); c.clockTicks = 6 }
func opSBCindy(c *Core) { addr, _ := c.addrIndirectY(); c.sbc(c.Peek(addr)); c.clockTicks = 5 }

func opCMPimm(c *Core) { c.compare(c.A, c.fetchByte()); c.clockTicks = 2 }
func opCMPzp(c *Core)  { c.compare(c.A, c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opCMPzpx(c *Core) { c.compare(c.A, c.Peek(c.addrZeroPageX())); c.clockTicks = 4 }
func opCMPabs(c *Core) { c.compare(c.A, c.Peek(c.addrAbsolute())); c.clockTicks = 4 }
func opCMPabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.compare(c.A, c.Peek(addr)); c.clockTicks = 4 }
func opCMPabsy(c *Core) { addr, _ := c.addrAbsoluteY(); c.compare(c.A, c.Peek(addr)); c.clockTicks = 4 }
func opCMPindx(c *Core) { c.compare(c.A, c.Peek(c.addrIndirectX())); c.clockTicks = 6 }
func opCMPindy(c *Core) { addr, _ := c.addrIndirectY(); c.compare(c.A, c.Peek(addr)); c.clockTicks = 5 }

func opCPXimm(c *Core) { c.compare(c.X, c.fetchByte()); c.clockTicks = 2 }
func opCPXzp(c *Core)  { c.compare(c.X, c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opCPXabs(c *Core) { c.compare(c.X, c.Peek(c.addrAbsolute())); c.clockTicks = 4 }

func opCPYimm(c *Core) { c.compare(c.Y, c.fetchByte()); c.clockTicks = 2 }
func opCPYzp(c *Core)  { c.compare(c.Y, c.Peek(c.addrZeroPage())); c.clockTicks = 3 }
func opCPYabs(c *Core) { c.compare(c.Y, c.Peek(c.addrAbsolute())); c.clockTicks = 4 }

// --- Increment / decrement -------------------------------------------

func opINCzp(c *Core)  { c.inc(c.addrZeroPage()); c.clockTicks = 5 }
func opINCzpx(c *Core) { c.inc(c.addrZeroPageX()); c.clockTicks = 6 }
func opINCabs(c *Core) { c.inc(c.addrAbsolute()); c.clockTicks = 6 }
func opINCabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.inc(addr); c.clockTicks = 7 }

func opDECzp(c *Core)  { c.dec(c.addrZeroPage()); c.clockTicks = 5 }
func opDECzpx(c *Core) { c.dec(c.addrZeroPageX()); c.clockTicks = 6 }
func opDECabs(c *Core) { c.dec(c.addrAbsolute()); c.clockTicks = 6 }
func opDECabsx(c *Core) { addr, _ := c.addrAbsoluteX(); c.dec(addr); c.clockTicks = 7 }

func opINX(c *Core) { c.X++; c.updateNZ(c.X); c.clockTicks = 2 }
func opINY(c *Core) { c.Y++; c.updateNZ(c.Y); c.clockTicks = 2 }
func opDEX(c *Core) { c.X--; c.updateNZ(c.X); c.clockTicks = 2 }
func opDEY(c *Core) { c.Y--; c.updateNZ(c.Y); c.clockTicks = 2 }

// --- Shifts / rotates ------------------------------------------------

func opASLacc(c *Core) { c.A = c.asl(c.A); c.clockTicks = 2 }
func opASLzp(c *Core)  { a := c.addrZeroPage(); c.Poke(a, c.asl(c.Peek(a))); c.clockTicks = 5 }
func opASLzpx(c *Core) { a := c.addrZeroPageX(); c.Poke(a, c.asl(c.Peek(a))); c.clockTicks = 6 }
func opASLabs(c *Core) { a := c.addrAbsolute(); c.Poke(a, c.asl(c.Peek(a))); c.clockTicks = 6 }
func opASLabsx(c *Core) { a, _ := c.addrAbsoluteX(); c.Poke(a, c.asl(c.Peek(a))); c.clockTicks = 7 }

func opLSRacc(c *Core) { c.A = c.lsr(c.A); c.clockTicks = 2 }
func opLSRzp(c *Core)  { a := c.addrZeroPage(); c.Poke(a, c.lsr(c.Peek(a))); c.clockTicks = 5 }
func opLSRzpx(c *Core) { a := c.addrZeroPageX(); c.Poke(a, c.lsr(c.Peek(a))); c.clockTicks = 6 }
func opLSRabs(c *Core) { a := c.addrAbsolute(); c.Poke(a, c.lsr(c.Peek(a))); c.clockTicks = 6 }
func opLSRabsx(c *Core) { a, _ := c.addrAbsoluteX(); c.Poke(a, c.lsr(c.Peek(a))); c.clockTicks = 7 }

func opROLacc(c *Core) { c.A = c.rol(c.A); c.clockTicks = 2 }
func opROLzp(c *Core)  { a := c.addrZeroPage(); c.Poke(a, c.rol(c.Peek(a))); c.clockTicks = 5 }
func opROLzpx(c *Core) { a := c.addrZeroPageX(); c.Poke(a, c.rol(c.Peek(a))); c.clockTicks = 6 }
func opROLabs(c *Core) { a := c.addrAbsolute(); c.Poke(a, c.rol(c.Peek(a))); c.clockTicks = 6 }
func opROLabsx(c *Core) { a, _ := c.addrAbsoluteX(); c.Poke(a, c.rol(c.Peek(a))); c.clockTicks = 7 }

func opRORacc(c *Core) { c.A = c.ror(c.A); c.clockTicks = 2 }
func opRORzp(c *Core)  { a := c.addrZeroPage(); c.Poke(a, c.ror(c.Peek(a))); c.clockTicks = 5 }
func opRORzpx(c *Core) { a := c.addrZeroPageX(); c.Poke(a, c.ror(c.Peek(a))); c.clockTicks = 6 }
func opRORabs(c *Core) { a := c.addrAbsolute(); c.Poke(a, c.ror(c.Peek(a))); c.clockTicks = 6 }
func opRORabsx(c *Core) { a, _ := c.addrAbsoluteX(); c.Poke(a, c.ror(c.Peek(a))); c.clockTicks = 7 }

// --- Control flow -------------------------------------------------------

func opJMPabs(c *Core) { c.PC = c.addrAbsolute(); c.clockTicks = 3 }
func opJMPind(c *Core) { c.PC = c.addrIndirect(); c.clockTicks = 5 }

// JSR pushes the address of the third byte of the JSR instruction (PC+2,
// i.e. one below the return target).
func opJSR(c *Core) {
	target := c.fetchWord()
	c.pushWord(c.PC - 1)
	c.PC = target
	c.clockTicks = 6
}

// RTS pulls a word and adds one.
func opRTS(c *Core) {
	c.PC = c.pullWord() + 1
	c.clockTicks = 6
}

// BRK pushes (PC+2, flags with B=1), sets I, and vectors through
// 0xFFFE/0xFFFF. The opcode byte itself has already advanced PC by one via
// fetchByte in the interpreter; BRK additionally skips a padding byte.
func opBRK(c *Core) {
	c.PC++ // padding byte after BRK
	c.pushWord(c.PC)
	c.push(c.flags() | FlagB)
	c.setFlag(FlagI, true)
	c.PC = c.read16(irqVecLo)
	c.clockTicks = 7
}

// RTI pulls flags then PC (not PC+1).
func opRTI(c *Core) {
	c.setFlags(c.pull())
	c.PC = c.pullWord()
	c.clockTicks = 6
}

// --- Branches ------------------------------------------------------------

func opBPL(c *Core) { c.branch(!c.flagSet(FlagN)); c.clockTicks = 2 }
func opBMI(c *Core) { c.branch(c.flagSet(FlagN)); c.clockTicks = 2 }
func opBVC(c *Core) { c.branch(!c.flagSet(FlagV)); c.clockTicks = 2 }
func opBVS(c *Core) { c.branch(c.flagSet(FlagV)); c.clockTicks = 2 }
func opBCC(c *Core) { c.branch(!c.flagSet(FlagC)); c.clockTicks = 2 }
func opBCS(c *Core) { c.branch(c.flagSet(FlagC)); c.clockTicks = 2 }
func opBNE(c *Core) { c.branch(!c.flagSet(FlagZ)); c.clockTicks = 2 }
func opBEQ(c *Core) { c.branch(c.flagSet(FlagZ)); c.clockTicks = 2 }

// --- Flags -----------------------------------------------------------

func opCLC(c *Core) { c.setFlag(FlagC, false); c.clockTicks = 2 }
func opSEC(c *Core) { c.setFlag(FlagC, true); c.clockTicks = 2 }
func opCLI(c *Core) { c.setFlag(FlagI, false); c.clockTicks = 2 }
func opSEI(c *Core) { c.setFlag(FlagI, true); c.clockTicks = 2 }
func opCLV(c *Core) { c.setFlag(FlagV, false); c.clockTicks = 2 }
func opCLD(c *Core) { c.setFlag(FlagD, false); c.clockTicks = 2 }
func opSED(c *Core) { c.setFlag(FlagD, true); c.clockTicks = 2 }

// --- Misc -----------------------------------------------------------

func opNOP(c *Core) { c.clockTicks = 2 }

// recordErr stashes a non-nil ALU error (UnsupportedMode) for Step to
// surface to the caller; see interpreter.go.
func (c *Core) recordErr(err error) {
	if err != nil {
		c.pendingErr = err
	}
}
