// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"iter"
	"log"
	"maps"
	"os"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/internal"
)

// Loader reads .ls8 program text into a Program.
//
// Each line holds an optional value followed by an optional '#' comment.
// A value is either a base-2 literal, or a $(...) expression evaluated
// at load time with the opcode mnemonics, register names, and predefines
// bound as integers.
type Loader struct {
	Verbose bool // If set, verbosely logs the loaded values.

	predefine map[string]string // Predefines
}

// Predefine defines a new symbol or redefines an existing symbol.
func (ld *Loader) Predefine(name string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{name: value}
	} else {
		ld.predefine[name] = value
	}
}

// Defines returns an iterator over all of the symbols visible to expressions.
func (ld *Loader) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_cpu_defines), maps.All(ld.predefine))
}

// LoadFile reads a program from a file.
func (ld *Loader) LoadFile(path string) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrProgramNotFound{Path: path, Err: err}
		}
		return
	}
	defer inf.Close()

	prog, err = ld.Parse(inf)
	return
}

// Parse reads a program from a reader.
func (ld *Loader) Parse(in io.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		text, _, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var value byte
		value, err = ld.valueOf(text)
		if err == nil && len(prog.Lines) >= MEMORY_SIZE {
			err = ErrProgramTooLarge
		}
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
			return
		}

		addr := len(prog.Lines)
		if ld.Verbose {
			log.Printf("%03d: %02x %08b %v", lineno, addr, value, text)
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: addr,
			Text:    text,
			Value:   value,
		})
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// valueOf returns the byte value of a program word.
func (ld *Loader) valueOf(word string) (value byte, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		var v64 int64
		v64, err = ld.parenEval(word[2 : len(word)-1])
		if err != nil {
			return
		}
		if v64 < 0 || v64 > 0xff {
			err = ErrValueRange(word)
			return
		}
		value = byte(v64)
		return
	}

	digits := strings.TrimPrefix(strings.TrimPrefix(word, "0b"), "0B")
	u64, err := strconv.ParseUint(digits, 2, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && nerr.Err == strconv.ErrRange {
			err = ErrValueRange(word)
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	if u64 > 0xff {
		err = ErrValueRange(word)
		return
	}

	value = byte(u64)
	return
}

// parenEval does load-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "ls8"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Defines() {
		var v64 int64
		v64, err = strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer symbols.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = errors.Join(ErrParseExpression(expr), ErrExpressionType)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrValueRange("$(" + expr + ")")
		return
	}
	return
}
