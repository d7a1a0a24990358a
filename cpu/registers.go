package cpu

import (
	"maps"
	"slices"
)

// Registers is a bank of named registers.
// A register that has never been written reads as zero.
type Registers struct {
	Data map[rune]int64
}

// Reset clears all registers back to zero.
func (rb *Registers) Reset() {
	clear(rb.Data)
}

// Get returns the value of a register.
func (rb *Registers) Get(name rune) int64 {
	return rb.Data[name]
}

// Names returns the names of all written registers, in order.
func (rb *Registers) Names() []rune {
	return slices.Sorted(maps.Keys(rb.Data))
}

// Read resolves an operand to its value.
func (rb *Registers) Read(op Operand) int64 {
	if op.IsRegister() {
		return rb.Get(op.Register)
	}

	return op.Value
}

func (rb *Registers) store(name rune, value int64) {
	if rb.Data == nil {
		rb.Data = make(map[rune]int64, 8)
	}
	rb.Data[name] = value
}

// Set stores the value of src into dst.
func (rb *Registers) Set(dst rune, src Operand) {
	rb.store(dst, rb.Read(src))
}

// Add adds the value of src to dst.
func (rb *Registers) Add(dst rune, src Operand) {
	rb.store(dst, rb.Get(dst)+rb.Read(src))
}

// Mul multiplies dst by the value of src.
func (rb *Registers) Mul(dst rune, src Operand) {
	rb.store(dst, rb.Get(dst)*rb.Read(src))
}

// Mod replaces dst with the remainder of dst divided by src.
// The remainder has the sign of the dividend.
func (rb *Registers) Mod(dst rune, src Operand) (err error) {
	divisor := rb.Read(src)
	if divisor == 0 {
		err = ErrArithmetic
		return
	}

	rb.store(dst, rb.Get(dst)%divisor)

	return
}
