// Package cpu implements the processor and program loader for the LS-8 system.
//
// The CPU consists of 256 bytes of memory shared by program and data, eight
// 8-bit general-purpose registers (R0-R7), a program counter (PC), and an ALU.
// Each fetched opcode is dispatched through a fixed handler table built when
// the CPU is created; every handler advances the PC by the width of its own
// instruction, which is encoded in the two high bits of the opcode.
//
// The loader reads the line-oriented .ls8 text format: one base-2 byte per
// line, with '#' comments, plus compile-time $(...) expressions.
package cpu
