package cpu

import (
	"iter"
)

// Line is a single value of a loaded program, with its source location.
type Line struct {
	LineNo  int    // Source line number, starting at 1.
	Address int    // Memory address the value is loaded to.
	Text    string // Source text of the value, without comments.
	Value   byte   // Loaded value.
}

// Program is a loaded program listing.
type Program struct {
	Lines []Line
}

// Debug returns the source line that loaded an address.
func (prog *Program) Debug(addr byte) (line Line, ok bool) {
	for _, ln := range prog.Lines {
		if ln.Address == int(addr) {
			line = ln
			ok = true
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []byte) {
	for _, value := range prog.Values() {
		bins = append(bins, value)
	}

	return
}

// Values iterates over the address and value of each program line.
func (prog *Program) Values() iter.Seq2[int, byte] {
	return func(yield func(addr int, value byte) bool) {
		for _, ln := range prog.Lines {
			if !yield(ln.Address, ln.Value) {
				return
			}
		}
	}
}
