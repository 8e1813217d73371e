package cpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzLdi(f *testing.F) {
	f.Add(uint8(0), uint8(0))
	f.Add(uint8(7), uint8(0xff))
	f.Add(uint8(3), uint8(0x80))

	f.Fuzz(func(t *testing.T, reg uint8, value uint8) {
		assert := assert.New(t)

		reg %= REGISTER_COUNT

		cpu := NewCpu()
		assert.NoError(cpu.Load([]byte{byte(LDI), reg, value}))

		err := cpu.Tick()
		assert.NoError(err)
		assert.Equal(value, cpu.Register[reg])
		assert.Equal(byte(3), cpu.Pc)
		assert.Equal(STATE_RUNNING, cpu.State)
	})
}

func FuzzMul(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint8(0), uint8(1))
	f.Add(uint8(200), uint8(200), uint8(0), uint8(1))
	f.Add(uint8(0xff), uint8(0xff), uint8(6), uint8(7))
	f.Add(uint8(9), uint8(9), uint8(2), uint8(2))

	f.Fuzz(func(t *testing.T, a uint8, b uint8, reg_a uint8, reg_b uint8) {
		assert := assert.New(t)

		reg_a %= REGISTER_COUNT
		reg_b %= REGISTER_COUNT
		if reg_a == reg_b {
			b = a
		}

		cpu := NewCpu()
		for n := range REGISTER_COUNT {
			cpu.Register[n] = byte(0x30 + n)
		}
		cpu.Register[reg_a] = a
		cpu.Register[reg_b] = b
		assert.NoError(cpu.Load([]byte{byte(MUL), reg_a, reg_b}))

		pre_register := cpu.Register
		pre_memory := cpu.Memory

		err := cpu.Tick()
		assert.NoError(err)

		expected := byte((int(a) * int(b)) % 256)
		assert.Equal(expected, cpu.Register[reg_a])
		for n := range REGISTER_COUNT {
			if n != int(reg_a) {
				assert.Equal(pre_register[n], cpu.Register[n])
			}
		}
		assert.Equal(pre_memory, cpu.Memory)
		assert.Equal(byte(3), cpu.Pc)
	})
}

func FuzzCpu(f *testing.F) {
	for op := range 0x100 {
		f.Add(uint8(op), uint8(0), uint8(1))
	}

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8) {
		assert := assert.New(t)

		output := &bytes.Buffer{}
		cpu := NewCpu()
		cpu.SetOutput(&io.Console{Output: output})
		assert.NoError(cpu.Load([]byte{opcode, a, b}))
		cpu.Register[1] = 3

		op := Opcode(opcode)
		pre_register := cpu.Register

		err := cpu.Tick()
		if !cpu.Handles(op) {
			assert.Equal(ErrUnknownOpcode{Opcode: op, Pc: 0}, err)
			assert.Equal(STATE_FAULTED, cpu.State)
			assert.Equal(pre_register, cpu.Register)
			return
		}

		if errors.Is(err, ErrRegisterInvalid(0)) {
			assert.True(a >= REGISTER_COUNT || (op.Operands() == 2 && op.IsAlu() && b >= REGISTER_COUNT))
			assert.Equal(STATE_FAULTED, cpu.State)
			assert.Equal(byte(0), cpu.Pc)
			return
		}

		assert.NoError(err)
		if op == HLT {
			assert.Equal(STATE_HALTED, cpu.State)
			assert.Equal(byte(0), cpu.Pc)
		} else {
			assert.Equal(STATE_RUNNING, cpu.State)
			assert.Equal(op.Width(), cpu.Pc)
		}
	})
}
