// Package io provides the output sinks for the LS-8 simulator.
// The PRN instruction sends register values to an Output, and the
// Console implementation renders each one as a decimal line.
package io

// Output defines the interface for a value sink attached to the CPU.
type Output interface {
	// Rewind resets the output to its initial state.
	Rewind()
	// Print emits a single register value.
	Print(value uint8) error
}
