// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// opMap maps instruction mnemonics.
var opMap = map[string]Mnemonic{
	"set": OP_SET,
	"add": OP_ADD,
	"mul": OP_MUL,
	"mod": OP_MOD,
	"snd": OP_SND,
	"rcv": OP_RCV,
	"jgz": OP_JGZ,
}

// parenRe matches a compile-time $(...) expression.
var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler decodes program text into a Program.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of decoded opcodes.

	predefine map[string]int64 // Constants visible to $(...) expressions.
}

// Predefine defines a new constant or redefines an existing constant
// for use in $(...) expressions.
func (asm *Assembler) Predefine(name string, value int64) {
	if asm.predefine == nil {
		asm.predefine = map[string]int64{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Predefines returns the names of all predefined constants, in order.
func (asm *Assembler) Predefines() []string {
	return slices.Sorted(maps.Keys(asm.predefine))
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range asm.predefine {
		pred[key] = starlark.MakeInt64(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// parseLine expands $(...) expressions, and splits a line into words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	if strings.Contains(line, "$(") {
		line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
			value, _err := asm.parenEval(str[2 : len(str)-1])
			if _err != nil {
				if err == nil {
					err = _err
				}
				return str
			}
			return strconv.FormatInt(value, 10)
		})
		if err != nil {
			return
		}
	}

	words = strings.Fields(line)

	return
}

// register decodes a register name.
// A register is a single character that is not a number.
func (asm *Assembler) register(word string) (name rune, err error) {
	if _, perr := strconv.ParseInt(word, 10, 64); perr == nil {
		err = ErrRegisterInvalid
		return
	}

	name, size := utf8.DecodeRuneInString(word)
	if size != len(word) || name == utf8.RuneError || name == 0 {
		err = ErrRegisterInvalid
		return
	}

	return
}

// operand decodes a literal value, or a register reference.
func (asm *Assembler) operand(word string) (op Operand, err error) {
	value, err := strconv.ParseInt(word, 10, 64)
	if err == nil {
		op = Imm(value)
		return
	}

	name, err := asm.register(word)
	if err != nil {
		err = ErrParseOperand(word)
		return
	}

	op = Reg(name)

	return
}

// decodeWords decodes the words of a line into an instruction.
func (asm *Assembler) decodeWords(words []string) (inst Instruction, err error) {
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	if len(args) != op.Arity() {
		err = ErrOperandCount
		return
	}

	inst.Op = op

	var ops [2]Operand
	for n, word := range args {
		if n == 0 && op.Writable() {
			var name rune
			name, err = asm.register(word)
			if err != nil {
				return
			}
			ops[n] = Reg(name)
			continue
		}

		ops[n], err = asm.operand(word)
		if err != nil {
			return
		}
	}

	inst.A, inst.B = ops[0], ops[1]

	return
}

// Decode decodes a single line of program text.
func (asm *Assembler) Decode(line string) (inst Instruction, err error) {
	words, err := asm.parseLine(strings.TrimSpace(line))
	if err != nil {
		return
	}

	return asm.decodeWords(words)
}

// Parse parses an input stream into a Program.
// Empty lines are skipped; every other line is one instruction.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		lineno += 1
		line = strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if asm.Verbose {
			log.Debugf("asm: %v: %v", lineno, line)
		}

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		var inst Instruction
		inst, err = asm.decodeWords(words)
		if err != nil {
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:      lineno,
			Words:       words,
			Instruction: inst,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// Decode decodes a single line of program text, without predefines.
func Decode(line string) (inst Instruction, err error) {
	asm := &Assembler{}
	return asm.Decode(line)
}

// DecodeProgram decodes a complete program text, without predefines.
func DecodeProgram(text string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(text))
}
