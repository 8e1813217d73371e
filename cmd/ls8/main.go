// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

const (
	EXIT_NOT_FOUND = 2 // Exit status when the program file is missing.
	PROGRAM_SUFFIX = ".ls8"
)

// resolve maps a program name to a file path. Names without the
// .ls8 suffix are looked up in the examples directory.
func resolve(dir string, name string) string {
	if strings.HasSuffix(name, PROGRAM_SUFFIX) {
		return name
	}

	return filepath.Join(dir, name+PROGRAM_SUFFIX)
}

func main() {
	var examples string
	var verbose bool

	flag.StringVar(&examples, "d", "examples", "Directory of programs named without the .ls8 suffix")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [-v] [-d dir] program", os.Args[0], os.Args[0])
	}

	name := flag.Arg(0)

	ld := &cpu.Loader{Verbose: verbose}
	prog, err := ld.LoadFile(resolve(examples, name))
	if err != nil {
		if errors.Is(err, cpu.ErrProgramNotFound{}) {
			fmt.Fprintf(os.Stderr, "%v: %v not found\n", os.Args[0], name)
			os.Exit(EXIT_NOT_FOUND)
		}
		log.Fatalf("%v: %v", name, err)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Console.Output = os.Stdout

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			log.Print(emu.Cpu.String())
		}
		log.Fatalf("%v: %v", name, err)
	}
}
