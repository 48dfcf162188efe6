package main

import "testing"

func TestNopCycleAccumulationSingleClockMode(t *testing.T) {
	c := newTestCore()
	c.ram[tedVideoModeAddr] = 0 // single-clock mode, bit4 clear

	c.ram[0x0B00] = 0xEA // NOP
	c.PC = 0x0B00

	before := c.clockCounter
	ticks, err := c.Step()
	if err != nil {
		t.Fatalf("NOP step: unexpected error %v", err)
	}
	if ticks != 2 {
		t.Fatalf("NOP ticks = %d, want 2", ticks)
	}
	if got := c.clockCounter - before; got != 2 {
		t.Errorf("clockCounter advanced by %d, want 2 (1x multiplier, 2-cycle NOP)", got)
	}
}

func TestDoubleClockMultiplierDoublesAccumulation(t *testing.T) {
	c := newTestCore()
	c.ram[tedVideoModeAddr] = 0x10 // double-clock mode

	c.ram[0x0B00] = 0xEA
	c.PC = 0x0B00

	before := c.clockCounter
	if _, err := c.Step(); err != nil {
		t.Fatalf("NOP step: unexpected error %v", err)
	}
	if got := c.clockCounter - before; got != 4 {
		t.Errorf("clockCounter advanced by %d, want 4 (2x multiplier, 2-cycle NOP)", got)
	}
}

func TestTimer0OverflowRaisesIRRAndServicesInterrupt(t *testing.T) {
	c := newTestCore()
	c.ram[tedVideoModeAddr] = 0
	c.timerOn[0] = true
	c.ram[0xFF00] = 0x01 // timer low byte
	c.ram[0xFF01] = 0x00 // timer high byte -> value = 1, dt(=2) overflows it

	c.ram[tedIMRAddr] = irrTimer0 // unmask timer0 interrupt
	c.setFlag(FlagI, false)

	// Install an IRQ vector so serviceInterrupt has somewhere to jump.
	c.systemROM[irqVecLo&0x7FFF] = 0x00
	c.systemROM[irqVecHi&0x7FFF] = 0x30 // 0x3000

	c.SP = 0xFF
	c.ram[0x0B00] = 0xEA // NOP, 2 cycles
	c.PC = 0x0B00

	if _, err := c.Step(); err != nil {
		t.Fatalf("step: unexpected error %v", err)
	}

	if c.ram[tedIRRAddr]&irrTimer0 == 0 {
		t.Error("timer0 overflow did not set IRR bit 0x08")
	}
	if c.ram[tedIRRAddr]&irrMaster == 0 {
		t.Error("timer0 overflow did not set IRR master bit 0x80")
	}
	if c.PC != 0x3000 {
		t.Errorf("timer0 interrupt: PC = 0x%04X, want 0x3000 (serviced)", c.PC)
	}
	if !c.flagSet(FlagI) {
		t.Error("timer0 interrupt: I flag should be set after servicing")
	}
}

func TestTimer0DisabledNeverOverflows(t *testing.T) {
	c := newTestCore()
	c.timerOn[0] = false
	c.ram[0xFF00] = 0x01
	c.ram[0xFF01] = 0x00

	c.ram[0x0B00] = 0xEA
	c.PC = 0x0B00
	if _, err := c.Step(); err != nil {
		t.Fatalf("step: unexpected error %v", err)
	}

	if c.ram[tedIRRAddr]&irrTimer0 != 0 {
		t.Error("disabled timer0 raised an interrupt")
	}
}

func TestRasterLineAdvancesAndWrapsAt312(t *testing.T) {
	c := newTestCore()
	c.rasterLine = 311
	c.clockCounter = ticksPerRasterLine - 1

	c.ram[0x0B00] = 0xEA // 2-cycle NOP pushes clockCounter past the threshold
	c.PC = 0x0B00
	if _, err := c.Step(); err != nil {
		t.Fatalf("step: unexpected error %v", err)
	}

	if c.rasterLine != 0 {
		t.Errorf("rasterLine after wraparound = %d, want 0", c.rasterLine)
	}
}

func TestRasterCompareInterruptFires(t *testing.T) {
	c := newTestCore()
	c.rasterLine = 9
	c.clockCounter = ticksPerRasterLine - 1
	c.ram[tedRasterCompareLoAddr] = 10 // compare against raster line 10
	c.ram[tedIMRAddr] = irrRaster      // unmask bit 1, raster-compare high bit 0
	c.setFlag(FlagI, false)
	c.systemROM[irqVecLo&0x7FFF] = 0x00
	c.systemROM[irqVecHi&0x7FFF] = 0x40

	c.SP = 0xFF
	c.ram[0x0B00] = 0xEA
	c.PC = 0x0B00
	if _, err := c.Step(); err != nil {
		t.Fatalf("step: unexpected error %v", err)
	}

	if c.ram[tedIRRAddr]&irrRaster == 0 {
		t.Error("raster compare match did not set IRR bit 0x02")
	}
	if c.PC != 0x4000 {
		t.Errorf("raster compare interrupt: PC = 0x%04X, want 0x4000", c.PC)
	}
}

func TestFlashCounterTogglesAtBlinkInterval(t *testing.T) {
	c := newTestCore()
	c.flashCounter = ticksPerBlinkInterval - 2
	before := c.flashOn

	c.ram[0x0B00] = 0xEA
	c.PC = 0x0B00
	if _, err := c.Step(); err != nil {
		t.Fatalf("step: unexpected error %v", err)
	}

	if c.flashOn == before {
		t.Error("flashOn did not toggle after crossing the blink interval")
	}
}
