package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
)

// Output is a value sink for the PRN instruction.
type Output io.Output

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

var _cpu_defines = func() (defines map[string]string) {
	defines = map[string]string{}
	for _, op := range []Opcode{NOP, HLT, PRN, LDI, MUL} {
		defines[op.String()] = fmt.Sprintf("0b%08b", uint8(op))
	}
	for n := range REGISTER_COUNT {
		defines[fmt.Sprintf("R%d", n)] = fmt.Sprintf("%d", n)
	}
	return
}()

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory       // Program and data memory.
	Register RegisterFile // Register bank.
	Pc       byte         // Program counter.
	Ir       Opcode       // Most recently fetched opcode.
	State    State        // Execution state.

	Ticks int // Instructions executed since reset.

	output   Output
	dispatch map[Opcode]Handler // Fixed once built by NewCpu.
}

// NewCpu creates a new CPU in the running state, with zeroed memory
// and registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		dispatch: newDispatch(),
	}

	return
}

// Defines for the cpu: opcode mnemonics and register names.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetOutput attaches the sink used by PRN.
func (cpu *Cpu) SetOutput(out Output) {
	cpu.output = out
}

// GetOutput gets the sink used by PRN.
func (cpu *Cpu) GetOutput() (out Output, err error) {
	if cpu.output == nil {
		err = ErrOutputInvalid
		return
	}

	out = cpu.output
	return
}

// Reset the CPU state.
// - Clears memory and registers.
// - Zeros the PC and statistics counters.
// - Rewinds the output.
// - Returns to the running state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.output != nil {
		cpu.output.Rewind()
	}
}

// Load a program image at address 0.
func (cpu *Cpu) Load(program []byte) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(program))
	}

	return
}

// Handles returns true if the opcode has a handler.
func (cpu *Cpu) Handles(op Opcode) (ok bool) {
	_, ok = cpu.dispatch[op]
	return
}

// Decode returns the instruction view at an address.
func (cpu *Cpu) Decode(pc byte) (ins Instruction) {
	ins = Instruction{
		Pc:     pc,
		Opcode: Opcode(cpu.Memory.Read(pc)),
		A:      cpu.Memory.Read(pc + 1),
		B:      cpu.Memory.Read(pc + 2),
	}
	return
}

// Fetch decodes the instruction at the PC, and finds its handler.
func (cpu *Cpu) Fetch() (ins Instruction, handler Handler, err error) {
	ins = cpu.Decode(cpu.Pc)
	cpu.Ir = ins.Opcode

	handler, ok := cpu.dispatch[ins.Opcode]
	if !ok {
		err = ErrUnknownOpcode{Opcode: ins.Opcode, Pc: ins.Pc}
		return
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		err = ErrHalted
		return
	case STATE_FAULTED:
		err = ErrFaulted
		return
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_FAULTED
		}
	}()

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	ins, handler, err := cpu.Fetch()
	if err != nil {
		return
	}

	sig, err := handler(cpu, ins.A, ins.B)
	if err != nil {
		err = errors.Join(ErrInstruction(ins), err)
		return
	}

	cpu.Ticks++

	if sig == SIGNAL_HALT {
		cpu.State = STATE_HALTED
		if cpu.Verbose {
			log.Printf("cpu: halted at 0x%02x", cpu.Pc)
		}
	}

	return
}

// Run ticks the CPU until it halts or faults.
// A program that never halts runs forever.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	if cpu.State == STATE_FAULTED {
		err = ErrFaulted
	}

	return
}

// Trace returns a single line showing the PC, the next three bytes
// of memory, and the register bank.
func (cpu *Cpu) Trace() (text string) {
	ins := cpu.Decode(cpu.Pc)
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |", cpu.Pc, uint8(ins.Opcode), ins.A, ins.B)
	for _, value := range cpu.Register {
		text += fmt.Sprintf(" %02X", value)
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %02X %v\n", "ir", uint8(cpu.Ir), cpu.Ir)
	for n, value := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("r%d", n), value)
	}

	return
}
