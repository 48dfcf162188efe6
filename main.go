// main.go - command-line entry point.
//
// Grounded on main.go's hand-rolled os.Args parsing and usage text (no flag/
// cobra/viper); this core takes positional ROM paths plus a handful of
// optional switches for PRG injection and macro scripting.

package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: plus4core <system.rom> [secondary.rom] [-prg file.prg [-autorun]] [-script file.lua]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	args := os.Args[1:]

	systemPath := args[0]
	args = args[1:]

	secondaryPath := ""
	if len(args) > 0 && args[0][0] != '-' {
		secondaryPath = args[0]
		args = args[1:]
	}

	prgPath := ""
	autorun := false
	scriptPath := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-prg":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "-prg requires a file argument")
				os.Exit(1)
			}
			prgPath = args[i]
		case "-autorun":
			autorun = true
		case "-script":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "-script requires a file argument")
				os.Exit(1)
			}
			scriptPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unrecognized argument %q\n", args[i])
			usage()
			os.Exit(1)
		}
	}

	systemROM, err := os.ReadFile(systemPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read system ROM: %v\n", err)
		os.Exit(1)
	}

	var secondaryROM []byte
	if secondaryPath != "" {
		secondaryROM, err = os.ReadFile(secondaryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read secondary ROM: %v\n", err)
			os.Exit(1)
		}
	}

	core := New()
	core.LoadROMs(systemROM, secondaryROM)
	core.HardReset()

	if prgPath != "" {
		body, err := os.ReadFile(prgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read PRG: %v\n", err)
			os.Exit(1)
		}
		if err := core.LoadPRGImage(body, autorun); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load PRG: %v\n", err)
			os.Exit(1)
		}
	}

	if scriptPath != "" {
		scripter, err := NewScripter(core, scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to run script: %v\n", err)
			os.Exit(1)
		}
		defer scripter.Close()
	}

	if err := runFrontend(core, "Plus/4 core"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
