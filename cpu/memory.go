package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the single address space shared by program and data.
// Addresses are bytes, so every access is in range.
type Memory [MEMORY_SIZE]byte

func (mem *Memory) Read(addr byte) byte {
	return mem[addr]
}

func (mem *Memory) Write(addr byte, value byte) {
	mem[addr] = value
}

// Load copies a program image into memory, starting at address 0.
func (mem *Memory) Load(data []byte) (err error) {
	if len(data) > len(mem) {
		err = ErrProgramTooLarge
		return
	}

	copy(mem[:], data)

	return
}

func (mem *Memory) Reset() {
	clear(mem[:])
}
