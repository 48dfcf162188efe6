//go:build !headless

// hud.go - debug HUD overlay (registers, raster line, FPS, last unknown
// opcode), toggled
// with F12. Grounded on golang.org/x/image/font/basicfont, the same stdlib-
// adjacent text package the rest of the pack reaches for rather than
// shipping a custom bitmap font.

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var hudFace = basicfont.Face7x13

func (g *Game) drawHUD(screen *ebiten.Image) {
	if !g.hudOn {
		return
	}

	c := g.core
	lines := []string{
		fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X SR=%02X", c.PC, c.A, c.X, c.Y, c.SP, c.flags()),
		fmt.Sprintf("raster=%03d fps=%.1f", c.rasterLine, ebiten.ActualFPS()),
	}
	if c.lastUnknownOpcode != nil {
		lines = append(lines, fmt.Sprintf("unknown opcode %02X @ %04X", c.lastUnknownOpcode.Opcode, c.lastUnknownOpcode.PC))
	}

	for i, line := range lines {
		text.Draw(screen, line, hudFace, 4, 14+i*14, color.RGBA{R: 0x20, G: 0xFF, B: 0x20, A: 0xFF})
	}
}
