package cpu

// Signal tells the engine whether to keep running after a handler returns.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	SIGNAL_CONTINUE = Signal(0) // continue
	SIGNAL_HALT     = Signal(1) // halt
)

// Handler executes one opcode. The handler is responsible for the
// complete effect of the instruction, including advancing the PC by
// the instruction width.
type Handler func(cpu *Cpu, a, b byte) (sig Signal, err error)

// newDispatch returns the opcode handler table.
func newDispatch() map[Opcode]Handler {
	return map[Opcode]Handler{
		LDI: handleLdi,
		PRN: handlePrn,
		HLT: handleHlt,
		MUL: handleMul,
		NOP: handleNop,
	}
}

// advance moves the PC past an instruction.
func (cpu *Cpu) advance(op Opcode) {
	cpu.Pc += op.Width()
}

// LDI reg, imm: set register to immediate.
func handleLdi(cpu *Cpu, a, b byte) (sig Signal, err error) {
	err = cpu.Register.Set(a, b)
	if err != nil {
		return
	}

	cpu.advance(LDI)
	return
}

// PRN reg: print register to the output.
func handlePrn(cpu *Cpu, a, b byte) (sig Signal, err error) {
	value, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	out, err := cpu.GetOutput()
	if err != nil {
		return
	}

	err = out.Print(value)
	if err != nil {
		return
	}

	cpu.advance(PRN)
	return
}

// HLT: stop the CPU.
func handleHlt(cpu *Cpu, a, b byte) (sig Signal, err error) {
	sig = SIGNAL_HALT
	return
}

// NOP: do nothing.
func handleNop(cpu *Cpu, a, b byte) (sig Signal, err error) {
	cpu.advance(NOP)
	return
}

// MUL reg_a, reg_b: reg_a *= reg_b
func handleMul(cpu *Cpu, a, b byte) (sig Signal, err error) {
	err = cpu.Alu(ALU_OP_MUL, a, b)
	if err != nil {
		return
	}

	cpu.advance(MUL)
	return
}
