package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleProgram = `set a 1
add a 2
mul a a
mod a 5
snd a
set a 0
rcv a
jgz a -1
set a 1
jgz a -2`

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(int64(0), prog.Len())
	assert.Empty(asm.Predefines())
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := DecodeProgram(sampleProgram)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Instruction{
		MakeSet('a', Imm(1)),
		MakeAdd('a', Imm(2)),
		MakeMul('a', Reg('a')),
		MakeMod('a', Imm(5)),
		MakeSnd(Reg('a')),
		MakeSet('a', Imm(0)),
		MakeRcv('a'),
		MakeJgz(Reg('a'), Imm(-1)),
		MakeSet('a', Imm(1)),
		MakeJgz(Reg('a'), Imm(-2)),
	}

	assert.Equal(int64(len(expected)), prog.Len())
	for pc, inst := range prog.Instructions() {
		assert.Equal(expected[pc], inst, "pc %d", pc)
		assert.Equal(int(pc)+1, prog.Opcodes[pc].LineNo)
	}

	assert.Equal(sampleProgram+"\n", prog.String())
}

func TestAssemblerLines(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"",
		"   set a 1   ",
		"",
		"\tsnd\t a",
		"   ",
		"rcv b",
	}

	prog, err := DecodeProgram(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Opcode{
		{2, []string{"set", "a", "1"}, MakeSet('a', Imm(1))},
		{4, []string{"snd", "a"}, MakeSnd(Reg('a'))},
		{6, []string{"rcv", "b"}, MakeRcv('b')},
	}

	assert.Equal(expected, prog.Opcodes)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
		inst Instruction
	}){
		{"set", "set a 1", MakeSet('a', Imm(1))},
		{"add_reg", "add b a", MakeAdd('b', Reg('a'))},
		{"mul_neg", "mul c -7", MakeMul('c', Imm(-7))},
		{"mod", "mod X 5", MakeMod('X', Imm(5))},
		{"snd_imm", "snd 42", MakeSnd(Imm(42))},
		{"snd_reg", "snd p", MakeSnd(Reg('p'))},
		{"rcv", "rcv z", MakeRcv('z')},
		{"jgz_imm", "jgz 1 3", MakeJgz(Imm(1), Imm(3))},
		{"jgz_reg", "jgz a b", MakeJgz(Reg('a'), Reg('b'))},
		{"plus", "set a +5", MakeSet('a', Imm(5))},
		{"max", "set a 9223372036854775807", MakeSet('a', Imm(9223372036854775807))},
		{"min", "set a -9223372036854775808", MakeSet('a', Imm(-9223372036854775808))},
		{"case", "set A a", MakeSet('A', Reg('a'))},
		{"unicode", "set π 3", MakeSet('π', Imm(3))},
		{"sign_reg", "add a -", MakeAdd('a', Reg('-'))},
		{"whitespace", "  jgz\ta   -2  ", MakeJgz(Reg('a'), Imm(-2))},
	}

	for _, entry := range table {
		inst, err := Decode(entry.line)
		assert.NoError(err, entry.name)
		assert.Equal(entry.inst, inst, entry.name)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line  string
		canon string
	}){
		{"set a 1", "set a 1"},
		{"set a +5", "set a 5"},
		{"add  b   a", "add b a"},
		{"mul a a", "mul a a"},
		{"mod a -05", "mod a -5"},
		{"snd 0", "snd 0"},
		{"rcv q", "rcv q"},
		{"jgz 1 -3", "jgz 1 -3"},
		{"jgz p p", "jgz p p"},
	}

	for _, entry := range table {
		inst, err := Decode(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.canon, inst.String(), entry.line)

		again, err := Decode(inst.String())
		assert.NoError(err, entry.line)
		assert.Equal(inst, again, entry.line)
	}
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
		err  error
	}){
		{"empty", "", ErrOpcodeMissing},
		{"unknown", "sub a 1", ErrOpcodeInvalid},
		{"upper", "SET a 1", ErrOpcodeInvalid},
		{"few", "set a", ErrOperandCount},
		{"many", "snd a b", ErrOperandCount},
		{"none", "rcv", ErrOperandCount},
		{"jgz_few", "jgz 1", ErrOperandCount},
		{"dst_literal", "set 5 1", ErrRegisterInvalid},
		{"dst_long", "add ab 1", ErrRegisterInvalid},
		{"rcv_literal", "rcv 0", ErrRegisterInvalid},
		{"src_long", "set a bc", ErrOperandInvalid},
		{"jgz_long", "jgz ab 1", ErrOperandInvalid},
		{"overflow", "set a 9223372036854775808", ErrOperandInvalid},
	}

	for _, entry := range table {
		_, err := Decode(entry.line)
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestParseSyntaxError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"set a 1",
		"",
		"frob a",
		"snd a",
	}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrOpcodeInvalid)

	var syntax *ErrSyntax
	if assert.True(errors.As(err, &syntax)) {
		assert.Equal(3, syntax.LineNo)
		assert.Equal("frob a", syntax.Line)
	}
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("N", 10)
	asm.Predefine("SHIFT", 4)
	asm.Predefine("N", 12)

	assert.Equal([]string{"N", "SHIFT"}, asm.Predefines())

	table := [](struct {
		name string
		line string
		inst Instruction
	}){
		{"const", "set a $(1 + 2)", MakeSet('a', Imm(3))},
		{"predefine", "mul a $(N * 2)", MakeMul('a', Imm(24))},
		{"shift", "set a $(1 << SHIFT)", MakeSet('a', Imm(16))},
		{"negative", "jgz a $(-N)", MakeJgz(Reg('a'), Imm(-12))},
		{"both", "jgz $(N - 12) $(N // 5)", MakeJgz(Imm(0), Imm(2))},
	}

	for _, entry := range table {
		inst, err := asm.Decode(entry.line)
		assert.NoError(err, entry.name)
		assert.Equal(entry.inst, inst, entry.name)
	}

	for _, line := range []string{
		"set a $(UNKNOWN)",
		"set a $(\"text\")",
		"set a $(1 +)",
		"set a $(1 << 70)",
	} {
		_, err := asm.Decode(line)
		var expr ErrParseExpression
		assert.True(errors.As(err, &expr), line)
	}
}

func FuzzDecode(f *testing.F) {
	for _, line := range strings.Split(sampleProgram, "\n") {
		f.Add(line)
	}
	f.Add("jgz 1 3")
	f.Add("set a +5")
	f.Add("snd -9223372036854775808")

	f.Fuzz(func(t *testing.T, line string) {
		inst, err := Decode(line)
		if err != nil {
			return
		}

		again, err := Decode(inst.String())
		if err != nil {
			t.Fatalf("%q: canonical %q does not decode: %v", line, inst.String(), err)
		}
		if again != inst {
			t.Fatalf("%q: %v != %v", line, again, inst)
		}
	})
}
