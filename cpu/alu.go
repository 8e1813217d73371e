package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
)

// Alu performs the requested operation on registers a and b, storing
// the result in register a. Results wrap modulo 256.
func (cpu *Cpu) Alu(op AluOp, reg_a byte, reg_b byte) (err error) {
	a, err := cpu.Register.Get(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.Register.Get(reg_b)
	if err != nil {
		return
	}

	output, ok := doAlu(op, a, b)
	if !ok {
		err = ErrUnsupportedOperation(op)
		return
	}

	err = cpu.Register.Set(reg_a, output)
	return
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op AluOp, input byte, value byte) (output byte, ok bool) {
	ok = true

	switch op {
	case ALU_OP_ADD:
		output = input + value
	case ALU_OP_MUL:
		output = input * value
	default:
		ok = false
	}

	return
}
