package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrFaulted         = errors.New(f("cpu faulted"))
	ErrOutputInvalid   = errors.New(f("output invalid"))
	ErrProgramTooLarge = errors.New(f("program larger than memory"))

	// Loader errors
	ErrExpressionType = errors.New(f("expression is not an integer"))
)

// ErrUnknownOpcode is returned when the fetched byte has no handler.
type ErrUnknownOpcode struct {
	Opcode Opcode // Fetched byte.
	Pc     byte   // Address it was fetched from.
}

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode 0x%02x at pc 0x%02x", uint8(err.Opcode), err.Pc)
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrUnsupportedOperation is returned when the ALU does not implement an operation.
type ErrUnsupportedOperation AluOp

func (err ErrUnsupportedOperation) Error() string {
	return f("unsupported alu operation %v", AluOp(err).String())
}

func (err ErrUnsupportedOperation) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupportedOperation)
	return
}

// ErrRegisterInvalid is returned when an operand names a register that does not exist.
type ErrRegisterInvalid byte

func (err ErrRegisterInvalid) Error() string {
	return f("register %v invalid", uint8(err))
}

func (err ErrRegisterInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterInvalid)
	return
}

// ErrInstruction identifies the instruction that faulted.
type ErrInstruction Instruction

func (err ErrInstruction) Error() string {
	return f("0x%02x: %v", err.Pc, Instruction(err).String())
}

func (err ErrInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrInstruction)
	return
}

// ErrProgramNotFound is returned when a program source file does not exist.
type ErrProgramNotFound struct {
	Path string
	Err  error
}

func (err ErrProgramNotFound) Error() string {
	return f("%v not found", err.Path)
}

func (err ErrProgramNotFound) Unwrap() error {
	return err.Err
}

func (err ErrProgramNotFound) Is(target error) (ok bool) {
	_, ok = target.(ErrProgramNotFound)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a binary number", string(err))
}

type ErrValueRange string

func (err ErrValueRange) Error() string {
	return f("'%v' does not fit in a byte", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
