//go:build !headless

// video_ebiten.go - GUI front end: an ebiten.Game driving Core's step loop,
// translating PC keys into the 8x8 matrix and painting the palette-indexed
// frame buffer.
//
// Grounded on video_backend_ebiten.go's Update/Draw/Layout split, its
// Ctrl+Shift+V clipboard-paste handling via golang.design/x/clipboard, and
// original_source/src/keyboard.rs's PC-key-to-matrix table; the 128-entry
// RGB palette is ported from original_source/src/screen.rs.

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

const displayScale = 2

// keyBinding pairs an ebiten key with the matrix cell it drives.
type keyBinding struct {
	key      ebiten.Key
	row, col int
}

// pcKeyToMatrix mirrors original_source/src/keyboard.rs's update(): every PC
// key that maps onto the Plus/4's 64-key matrix, row-major by latch bit.
var pcKeyToMatrix = []keyBinding{
	{ebiten.KeyBackspace, 0, 0},
	{ebiten.KeyEnter, 0, 1},
	{ebiten.KeyF1, 0, 4},
	{ebiten.KeyF2, 0, 5},
	{ebiten.KeyF3, 0, 6},

	{ebiten.Key3, 1, 0},
	{ebiten.KeyW, 1, 1},
	{ebiten.KeyA, 1, 2},
	{ebiten.Key4, 1, 3},
	{ebiten.KeyZ, 1, 4},
	{ebiten.KeyS, 1, 5},
	{ebiten.KeyE, 1, 6},
	{ebiten.KeyShiftLeft, 1, 7},
	{ebiten.KeyShiftRight, 1, 7},

	{ebiten.Key5, 2, 0},
	{ebiten.KeyR, 2, 1},
	{ebiten.KeyD, 2, 2},
	{ebiten.Key6, 2, 3},
	{ebiten.KeyC, 2, 4},
	{ebiten.KeyF, 2, 5},
	{ebiten.KeyT, 2, 6},
	{ebiten.KeyX, 2, 7},

	{ebiten.Key7, 3, 0},
	{ebiten.KeyY, 3, 1},
	{ebiten.KeyG, 3, 2},
	{ebiten.Key8, 3, 3},
	{ebiten.KeyB, 3, 4},
	{ebiten.KeyH, 3, 5},
	{ebiten.KeyU, 3, 6},
	{ebiten.KeyV, 3, 7},

	{ebiten.Key9, 4, 0},
	{ebiten.KeyI, 4, 1},
	{ebiten.KeyJ, 4, 2},
	{ebiten.Key0, 4, 3},
	{ebiten.KeyM, 4, 4},
	{ebiten.KeyK, 4, 5},
	{ebiten.KeyO, 4, 6},
	{ebiten.KeyN, 4, 7},

	{ebiten.KeyArrowDown, 5, 0},
	{ebiten.KeyP, 5, 1},
	{ebiten.KeyL, 5, 2},
	{ebiten.KeyArrowUp, 5, 3},
	{ebiten.KeyPeriod, 5, 4},
	{ebiten.KeyBracketLeft, 5, 5},
	{ebiten.KeyMinus, 5, 6},
	{ebiten.KeyComma, 5, 7},

	{ebiten.KeyArrowLeft, 6, 0},
	{ebiten.KeySlash, 6, 1},
	{ebiten.KeyBracketRight, 6, 2},
	{ebiten.KeyArrowRight, 6, 3},
	{ebiten.KeyEscape, 6, 4},
	{ebiten.KeyEqual, 6, 5},
	{ebiten.KeyBackslash, 6, 7},

	{ebiten.Key1, 7, 0},
	{ebiten.KeyHome, 7, 1},
	{ebiten.KeyControlLeft, 7, 2},
	{ebiten.KeyControlRight, 7, 2},
	{ebiten.Key2, 7, 3},
	{ebiten.KeySpace, 7, 4},
	{ebiten.KeyAltLeft, 7, 5},
	{ebiten.KeyAltRight, 7, 5},
	{ebiten.KeyQ, 7, 6},
	{ebiten.KeyTab, 7, 7},
}

// Game wires an emulation Core into ebiten's Update/Draw/Layout contract.
type Game struct {
	core          *Core
	palette       [128]color.RGBA
	img           *ebiten.Image
	clipboardOK   bool
	stepsPerFrame int
	hudOn         bool
}

// NewGame builds the front end for an already-reset, ROM-loaded core.
// stepsPerFrame bounds how many instructions run per 60Hz tick; Core's own
// raster/timer pacing determines when a video frame is actually complete,
// so this is simply a generous per-tick budget.
func NewGame(core *Core, stepsPerFrame int) *Game {
	g := &Game{
		core:          core,
		img:           ebiten.NewImage(screenWidth, screenHeight),
		stepsPerFrame: stepsPerFrame,
	}
	g.palette = defaultPalette()
	g.clipboardOK = clipboard.Init() == nil
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	var matrix [8][8]bool
	for _, b := range pcKeyToMatrix {
		if ebiten.IsKeyPressed(b.key) {
			matrix[b.row][b.col] = true
		}
	}
	g.core.UpdateKeyboard(matrix)

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.pasteClipboardAsPRG()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.hudOn = !g.hudOn
	}

	for i := 0; i < g.stepsPerFrame; i++ {
		if _, err := g.core.Step(); err != nil {
			if _, unsupported := err.(*UnsupportedMode); unsupported {
				return err
			}
		}
	}
	return nil
}

// pasteClipboardAsPRG treats clipboard text as a raw PRG image: a caller
// copying "header bytes + BASIC tokens" to the clipboard can paste a program
// straight into RAM without a file dialog.
func (g *Game) pasteClipboardAsPRG() {
	if !g.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) < 2 {
		return
	}
	_ = g.core.LoadPRGImage(data, true)
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.core.Frame()
	pix := make([]byte, screenWidth*screenHeight*4)
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			c := g.palette[frame[y][x]&0x7F]
			o := (y*screenWidth + x) * 4
			pix[o], pix[o+1], pix[o+2], pix[o+3] = c.R, c.G, c.B, 0xFF
		}
	}
	g.img.WritePixels(pix)
	screen.DrawImage(g.img, nil)
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// RunGame starts the ebiten window at displayScale magnification.
func RunGame(g *Game, title string) error {
	ebiten.SetWindowSize(screenWidth*displayScale, screenHeight*displayScale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(g)
}

// runFrontend is main.go's build-tag-selected entry point: the GUI variant
// here, a raw-terminal variant in headless.go (tag "headless").
func runFrontend(core *Core, title string) error {
	return RunGame(NewGame(core, 50000), title)
}
