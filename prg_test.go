package main

import "testing"

func TestEndAddressWrapsAround64K(t *testing.T) {
	c := newTestCore()
	if got := c.EndAddress(0x1001, 3); got != 0x1004 {
		t.Errorf("EndAddress(0x1001, 3) = 0x%04X, want 0x1004", got)
	}
	if got := c.EndAddress(0xFFFE, 4); got != 0x0002 {
		t.Errorf("EndAddress(0xFFFE, 4) = 0x%04X, want 0x0002 (wraps past 0xFFFF)", got)
	}
}

func TestLoadPRGImageRejectsShortBody(t *testing.T) {
	c := newTestCore()
	err := c.LoadPRGImage([]byte{0x01}, false)
	if err == nil {
		t.Fatal("LoadPRGImage with 1-byte image: want BadPrg, got nil")
	}
	if _, ok := err.(*BadPrg); !ok {
		t.Fatalf("LoadPRGImage with 1-byte image: want *BadPrg, got %T", err)
	}
}

func TestLoadPRGImageCopiesPayloadToLoadAddress(t *testing.T) {
	c := newTestCore()
	image := []byte{0x00, 0x30, 0xAA, 0xBB, 0xCC} // load addr 0x3000
	if err := c.LoadPRGImage(image, false); err != nil {
		t.Fatalf("LoadPRGImage: unexpected error %v", err)
	}
	if c.Peek(0x3000) != 0xAA || c.Peek(0x3001) != 0xBB || c.Peek(0x3002) != 0xCC {
		t.Errorf("PRG payload not copied correctly: got %02X %02X %02X", c.Peek(0x3000), c.Peek(0x3001), c.Peek(0x3002))
	}
}

func TestLoadPRGAutorunPatchesBasicPointersOnlyAt0x1001(t *testing.T) {
	c := newTestCore()
	body := make([]byte, 10)
	if err := c.LoadPRG(0x1001, body, true); err != nil {
		t.Fatalf("LoadPRG: unexpected error %v", err)
	}
	end := uint16(0x1001) + uint16(len(body))
	if got := uint16(c.Peek(0x2D)) | uint16(c.Peek(0x2E))<<8; got != end {
		t.Errorf("BASIC variables pointer = 0x%04X, want 0x%04X", got, end)
	}
	if got := uint16(c.Peek(0x2F)) | uint16(c.Peek(0x30))<<8; got != end {
		t.Errorf("BASIC arrays pointer = 0x%04X, want 0x%04X", got, end)
	}
}

func TestLoadPRGAutorunSkippedForNonBasicLoadAddress(t *testing.T) {
	c := newTestCore()
	c.Poke(0x2D, 0x11)
	c.Poke(0x2E, 0x22)
	body := make([]byte, 4)
	if err := c.LoadPRG(0x4000, body, true); err != nil {
		t.Fatalf("LoadPRG: unexpected error %v", err)
	}
	if c.Peek(0x2D) != 0x11 || c.Peek(0x2E) != 0x22 {
		t.Error("LoadPRG patched BASIC pointers for a non-0x1001 load address")
	}
}

func TestLoadPRGWithoutAutorunNeverPatchesPointers(t *testing.T) {
	c := newTestCore()
	c.Poke(0x2D, 0x55)
	body := make([]byte, 4)
	if err := c.LoadPRG(0x1001, body, false); err != nil {
		t.Fatalf("LoadPRG: unexpected error %v", err)
	}
	if c.Peek(0x2D) != 0x55 {
		t.Error("LoadPRG patched BASIC pointers despite autorun=false")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := newTestCore()
	c.A, c.X, c.Y = 0x11, 0x22, 0x33
	c.PC = 0x4000
	c.ram[0x5000] = 0x77
	c.rasterLine = 42

	snap := c.TakeSnapshot()
	encoded, err := EncodeSnapshot(snap)
	if err != nil {
		t.Fatalf("EncodeSnapshot: unexpected error %v", err)
	}

	decoded, err := DecodeSnapshot(encoded)
	if err != nil {
		t.Fatalf("DecodeSnapshot: unexpected error %v", err)
	}

	c2 := newTestCore()
	c2.RestoreSnapshot(decoded)

	if c2.A != 0x11 || c2.X != 0x22 || c2.Y != 0x33 || c2.PC != 0x4000 {
		t.Errorf("restored registers = A:%02X X:%02X Y:%02X PC:%04X, want A:11 X:22 Y:33 PC:4000", c2.A, c2.X, c2.Y, c2.PC)
	}
	if c2.ram[0x5000] != 0x77 {
		t.Errorf("restored RAM[0x5000] = 0x%02X, want 0x77", c2.ram[0x5000])
	}
	if c2.rasterLine != 42 {
		t.Errorf("restored rasterLine = %d, want 42", c2.rasterLine)
	}
}

func TestDecodeSnapshotRejectsBadMagic(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not a snapshot at all"))
	if err == nil {
		t.Fatal("DecodeSnapshot with garbage input: want error, got nil")
	}
}
