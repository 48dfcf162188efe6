// script.go - optional Lua autotype/macro layer (-script file.lua).
//
// Grounded on runtime_ipc.go's handler-callback dispatch shape (a small
// Go-side API surface driven by an external actor, here a Lua script
// instead of a Unix socket peer) and on github.com/yuin/gopher-lua's
// registered-function idiom for exposing host state to scripts.

package main

import (
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Scripter drives a core's key matrix from a Lua macro, one frame-paced tick
// at a time. It never touches the frame buffer or ROM state directly.
type Scripter struct {
	state  *lua.LState
	core   *Core
	matrix [8][8]bool
}

// NewScripter loads path and registers the press/release/wait/loadprg API.
func NewScripter(core *Core, path string) (*Scripter, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	s := &Scripter{state: lua.NewState(), core: core}

	s.state.SetGlobal("press", s.state.NewFunction(s.luaPress))
	s.state.SetGlobal("release", s.state.NewFunction(s.luaRelease))
	s.state.SetGlobal("wait", s.state.NewFunction(s.luaWait))
	s.state.SetGlobal("loadprg", s.state.NewFunction(s.luaLoadPRG))

	if err := s.state.DoString(string(body)); err != nil {
		s.state.Close()
		return nil, fmt.Errorf("run script %s: %w", path, err)
	}
	return s, nil
}

// Close releases the Lua interpreter.
func (s *Scripter) Close() { s.state.Close() }

// luaPress(row, col): press(r, c) latches matrix[r][c] = true until the
// matching release() call.
func (s *Scripter) luaPress(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	if row >= 0 && row < 8 && col >= 0 && col < 8 {
		s.matrix[row][col] = true
		s.core.UpdateKeyboard(s.matrix)
	}
	return 0
}

func (s *Scripter) luaRelease(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	if row >= 0 && row < 8 && col >= 0 && col < 8 {
		s.matrix[row][col] = false
		s.core.UpdateKeyboard(s.matrix)
	}
	return 0
}

// luaWait(frames): runs the core forward by frames*20000 instructions (Step
// calls); at two or more cycles per instruction that is at least one TED
// frame worth of raster lines (312 x 114 cycles) per unit.
func (s *Scripter) luaWait(L *lua.LState) int {
	frames := L.CheckInt(1)
	for f := 0; f < frames; f++ {
		for i := 0; i < 20000; i++ {
			if _, err := s.core.Step(); err != nil {
				if _, unsupported := err.(*UnsupportedMode); unsupported {
					return 0
				}
			}
		}
		time.Sleep(time.Millisecond) // yield so a host render loop stays responsive
	}
	return 0
}

// luaLoadPRG(path, autorun): reads a PRG file from disk and injects it.
func (s *Scripter) luaLoadPRG(L *lua.LState) int {
	path := L.CheckString(1)
	autorun := L.OptBool(2, false)

	body, err := os.ReadFile(path)
	if err != nil {
		L.RaiseError("loadprg: %v", err)
		return 0
	}
	if err := s.core.LoadPRGImage(body, autorun); err != nil {
		L.RaiseError("loadprg: %v", err)
	}
	return 0
}
