//go:build headless

// headless.go - raw-terminal front end: no GUI, stdin drives the keyboard
// matrix directly and the frame buffer is never painted. Useful for CI and
// for boot/memory-state assertions where only RAM contents, not pixels,
// matter.
//
// Built on golang.org/x/term's raw mode, paired with video_ebiten.go via the
// headless/!headless build tags.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"
)

// asciiToMatrixCell maps a handful of stdin bytes onto Plus/4 matrix cells,
// enough to drive BASIC input without a GUI. Letters/digits map onto the
// same cells original_source/src/keyboard.rs assigns their PC-keyboard
// equivalents; unmapped bytes are ignored.
var asciiToMatrixCell = map[byte][2]int{
	'\r': {0, 1}, '\n': {0, 1},
	' ': {7, 4},
	'1': {7, 0}, '2': {7, 3}, '3': {1, 0}, '4': {1, 3},
	'5': {2, 0}, '6': {2, 3}, '7': {3, 0}, '8': {3, 3},
	'9': {4, 0}, '0': {4, 3},
	'a': {1, 2}, 'b': {3, 4}, 'c': {2, 4}, 'd': {2, 2}, 'e': {1, 6},
	'f': {2, 5}, 'g': {3, 2}, 'h': {3, 5}, 'i': {4, 1}, 'j': {4, 2},
	'k': {4, 5}, 'l': {5, 2}, 'm': {4, 4}, 'n': {4, 7}, 'o': {4, 6},
	'p': {5, 1}, 'q': {7, 6}, 'r': {2, 1}, 's': {1, 5}, 't': {2, 6},
	'u': {3, 6}, 'v': {3, 7}, 'w': {1, 1}, 'x': {2, 7}, 'y': {3, 1},
	'z': {1, 4},
}

// runFrontend runs core to completion against stdin, with no rendering.
// Ctrl+C (delivered as SIGINT) stops the loop cleanly.
func runFrontend(core *Core, title string) error {
	fmt.Fprintf(os.Stderr, "%s (headless)\n", title)

	var restore func() error
	if term.IsTerminal(int(os.Stdin.Fd())) {
		state, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("enter raw terminal mode: %w", err)
		}
		restore = func() error { return term.Restore(int(os.Stdin.Fd()), state) }
		defer restore()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	keyState := make(map[[2]int]bool)
	input := make(chan byte, 64)
	go readStdin(input)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case b := <-input:
			if cell, ok := asciiToMatrixCell[b]; ok {
				keyState[cell] = true
			}
		case <-ticker.C:
			var matrix [8][8]bool
			for cell := range keyState {
				matrix[cell[0]][cell[1]] = true
			}
			core.UpdateKeyboard(matrix)
			for cell := range keyState {
				keyState[cell] = false
			}

			for i := 0; i < 20000; i++ {
				if _, err := core.Step(); err != nil {
					if _, unsupported := err.(*UnsupportedMode); unsupported {
						return err
					}
				}
			}
		}
	}
}

func readStdin(out chan<- byte) {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			out <- buf[0]
		}
		if err != nil {
			return
		}
	}
}
