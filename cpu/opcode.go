package cpu

import (
	"fmt"
)

// Opcode is the first byte of an instruction.
//
// The opcode bits are laid out as AABCDDDD:
//   - AA: number of operand bytes that follow (0-2)
//   - B: set if the instruction is an ALU operation
//   - C: set if the instruction sets the PC itself
//   - DDDD: instruction identifier
type Opcode uint8

//go:generate go tool stringer -type=Opcode
const (
	NOP = Opcode(0b00000000)
	HLT = Opcode(0b00000001)
	PRN = Opcode(0b01000111)
	LDI = Opcode(0b10000010)
	MUL = Opcode(0b10100010)
)

// Opcode field decode constants.
const (
	OPCODE_OPERANDS_SHIFT = 6           // Shift of the operand count.
	OPCODE_ALU            = 0b0010_0000 // ALU operation bit.
	OPCODE_SETS_PC        = 0b0001_0000 // PC-setting bit.
	OPCODE_ID_MASK        = 0b0000_1111 // Mask of the instruction identifier.
)

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// Width returns the total width of the instruction in bytes.
func (op Opcode) Width() byte {
	return byte(1 + op.Operands())
}

// IsAlu returns true if the opcode is handled by the ALU.
func (op Opcode) IsAlu() bool {
	return (op & OPCODE_ALU) != 0
}

// SetsPc returns true if the opcode's handler sets the PC directly.
func (op Opcode) SetsPc() bool {
	return (op & OPCODE_SETS_PC) != 0
}

// Identifier returns the instruction identifier bits.
func (op Opcode) Identifier() int {
	return int(op & OPCODE_ID_MASK)
}

// Instruction is a decoded view of the bytes at a program counter.
// The operands are always read, even if the opcode does not use them.
type Instruction struct {
	Pc     byte   // Address of the opcode.
	Opcode Opcode // Opcode byte.
	A      byte   // First operand byte.
	B      byte   // Second operand byte.
}

// String returns the assembly language representation of this instruction,
// showing only the operands the opcode consumes.
func (ins Instruction) String() (out string) {
	out = ins.Opcode.String()

	switch ins.Opcode.Operands() {
	case 0:
	case 1:
		out = fmt.Sprintf("%v 0x%02x", out, ins.A)
	default:
		out = fmt.Sprintf("%v 0x%02x 0x%02x", out, ins.A, ins.B)
	}

	return
}
