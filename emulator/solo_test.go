package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/duet/cpu"
	"github.com/ezrec/duet/io"
)

var sampleProgram = []string{
	"set a 1",
	"add a 2",
	"mul a a",
	"mod a 5",
	"snd a",
	"set a 0",
	"rcv a",
	"jgz a -1",
	"set a 1",
	"jgz a -2",
}

func TestSolo(t *testing.T) {
	assert := assert.New(t)

	solo := NewSolo(doParse(t, sampleProgram))
	result, err := solo.Run()
	assert.NoError(err)

	assert.Equal(1, result.Sends[0])
	assert.Equal(0, result.Sends[1])
	assert.Equal(cpu.STATE_SUSPENDED, result.States[0])
	assert.Equal(int64(6), solo.Pc)
	assert.Equal(int64(4), solo.Register.Get('a'))

	// Blocked forever on the empty queue.
	result, err = solo.Run()
	assert.NoError(err)
	assert.Equal(1, result.Sends[0])
	assert.Equal(int64(6), solo.Pc)

	solo.Reset()
	assert.Equal(int64(0), solo.Pc)
	assert.Equal(0, solo.Input.Len())
}

func TestSoloHalt(t *testing.T) {
	assert := assert.New(t)

	solo := NewSolo(doParse(t, []string{"jgz a -1"}))
	result, err := solo.Run()
	assert.NoError(err)

	assert.Equal(cpu.STATE_HALTED, result.States[0])
	assert.Equal(int64(1), solo.Pc)
	assert.Equal(0, result.Sends[0])
}

func TestSoloFault(t *testing.T) {
	assert := assert.New(t)

	solo := NewSolo(doParse(t, []string{"set a 1", "mod a b"}))
	_, err := solo.Run()
	assert.ErrorIs(err, cpu.ErrArithmetic)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(int64(0), runtime.Cpu)
		assert.Equal(2, runtime.LineNo)
		assert.Equal(int64(1), runtime.Pc)
	}
}

func TestSoloTape(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"rcv a",
		"mul a 2",
		"snd a",
		"jgz 1 -3",
	}

	output := &bytes.Buffer{}
	tape := &io.Tape{
		Input:  strings.NewReader("1 2\n-3\n"),
		Output: output,
	}

	solo := NewSoloTape(doParse(t, program), tape)
	result, err := solo.Run()
	assert.NoError(err)

	assert.Equal(3, result.Sends[0])
	assert.Equal(cpu.STATE_SUSPENDED, result.States[0])
	assert.Equal(int64(0), solo.Pc)
	assert.Equal("2\n4\n-6\n", output.String())
}
