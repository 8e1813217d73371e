package cpu

const (
	REGISTER_COUNT = 8 // Number of general-purpose registers.
)

// RegisterFile is the bank of general-purpose registers R0-R7.
type RegisterFile [REGISTER_COUNT]byte

func (rf *RegisterFile) Get(index byte) (value byte, err error) {
	if int(index) >= len(rf) {
		err = ErrRegisterInvalid(index)
		return
	}

	value = rf[index]
	return
}

func (rf *RegisterFile) Set(index byte, value byte) (err error) {
	if int(index) >= len(rf) {
		err = ErrRegisterInvalid(index)
		return
	}

	rf[index] = value
	return
}

func (rf *RegisterFile) Reset() {
	clear(rf[:])
}
