package cpu

import (
	"iter"
	"strings"
)

// Opcode is a decoded instruction with its source location.
type Opcode struct {
	LineNo int      // Line number in the program text.
	Words  []string // Words of the source line.
	Instruction
}

// Program is an ordered listing of instructions.
// The index of an instruction is its address.
type Program struct {
	Opcodes []Opcode
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int64 {
	if prog == nil {
		return 0
	}

	return int64(len(prog.Opcodes))
}

// Contains returns true if pc addresses an instruction.
func (prog *Program) Contains(pc int64) bool {
	return pc >= 0 && pc < prog.Len()
}

// Fetch returns the instruction at pc.
func (prog *Program) Fetch(pc int64) (inst Instruction, ok bool) {
	if !prog.Contains(pc) {
		return
	}

	return prog.Opcodes[pc].Instruction, true
}

// Debug returns the opcode at pc, or nil if pc is out of range.
func (prog *Program) Debug(pc int64) *Opcode {
	if !prog.Contains(pc) {
		return nil
	}

	return &prog.Opcodes[pc]
}

// Instructions iterates the program in address order.
func (prog *Program) Instructions() iter.Seq2[int64, Instruction] {
	return func(yield func(pc int64, inst Instruction) bool) {
		for pc := range prog.Len() {
			if !yield(pc, prog.Opcodes[pc].Instruction) {
				return
			}
		}
	}
}

// String returns the canonical listing of the program.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, inst := range prog.Instructions() {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
