package cpu

import (
	"strconv"
	"strings"
)

// Mnemonic is an instruction operation.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_SET = Mnemonic(0) // set
	OP_ADD = Mnemonic(1) // add
	OP_MUL = Mnemonic(2) // mul
	OP_MOD = Mnemonic(3) // mod
	OP_SND = Mnemonic(4) // snd
	OP_RCV = Mnemonic(5) // rcv
	OP_JGZ = Mnemonic(6) // jgz
)

// Arity returns the number of operands the mnemonic takes.
func (op Mnemonic) Arity() int {
	switch op {
	case OP_SND, OP_RCV:
		return 1
	default:
		return 2
	}
}

// Writable returns true if the first operand of the mnemonic is a
// destination register.
func (op Mnemonic) Writable() bool {
	switch op {
	case OP_SET, OP_ADD, OP_MUL, OP_MOD, OP_RCV:
		return true
	default:
		return false
	}
}

// Operand is either a literal value, or a reference to a register.
type Operand struct {
	Register rune  // Register name, or 0 for a literal.
	Value    int64 // Literal value.
}

// Reg returns a register reference operand.
func Reg(name rune) Operand {
	return Operand{Register: name}
}

// Imm returns a literal operand.
func Imm(value int64) Operand {
	return Operand{Value: value}
}

// IsRegister returns true if the operand names a register.
func (op Operand) IsRegister() bool {
	return op.Register != 0
}

// String returns the canonical program text of the operand.
func (op Operand) String() string {
	if op.IsRegister() {
		return string(op.Register)
	}

	return strconv.FormatInt(op.Value, 10)
}

// Instruction is a single decoded instruction.
type Instruction struct {
	Op Mnemonic
	A  Operand
	B  Operand
}

// MakeSet creates a 'set dst src' instruction.
func MakeSet(dst rune, src Operand) Instruction {
	return Instruction{Op: OP_SET, A: Reg(dst), B: src}
}

// MakeAdd creates an 'add dst src' instruction.
func MakeAdd(dst rune, src Operand) Instruction {
	return Instruction{Op: OP_ADD, A: Reg(dst), B: src}
}

// MakeMul creates a 'mul dst src' instruction.
func MakeMul(dst rune, src Operand) Instruction {
	return Instruction{Op: OP_MUL, A: Reg(dst), B: src}
}

// MakeMod creates a 'mod dst src' instruction.
func MakeMod(dst rune, src Operand) Instruction {
	return Instruction{Op: OP_MOD, A: Reg(dst), B: src}
}

// MakeSnd creates a 'snd src' instruction.
func MakeSnd(src Operand) Instruction {
	return Instruction{Op: OP_SND, A: src}
}

// MakeRcv creates a 'rcv dst' instruction.
func MakeRcv(dst rune) Instruction {
	return Instruction{Op: OP_RCV, A: Reg(dst)}
}

// MakeJgz creates a 'jgz test offset' instruction.
func MakeJgz(test, offset Operand) Instruction {
	return Instruction{Op: OP_JGZ, A: test, B: offset}
}

// Operands returns the operands used by the instruction.
func (inst Instruction) Operands() []Operand {
	if inst.Op.Arity() == 1 {
		return []Operand{inst.A}
	}

	return []Operand{inst.A, inst.B}
}

// String returns the canonical program text of the instruction.
func (inst Instruction) String() string {
	words := []string{inst.Op.String()}
	for _, op := range inst.Operands() {
		words = append(words, op.String())
	}

	return strings.Join(words, " ")
}
