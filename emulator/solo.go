package emulator

import (
	"github.com/ezrec/duet/cpu"
	"github.com/ezrec/duet/io"
)

// Solo is a single cpu, by default wired so that its output feeds back
// into its own input.
type Solo struct {
	Verbose bool // If set, enables verbose logging.

	*cpu.Cpu // The instance, with identity 0.
}

// NewSolo creates a self-looped instance for a program.
func NewSolo(prog *cpu.Program) (solo *Solo) {
	queue := &io.Queue{}

	solo = &Solo{
		Cpu: cpu.NewCpu(0, prog, queue, queue),
	}

	return
}

// NewSoloTape creates an instance reading from and writing to a tape.
func NewSoloTape(prog *cpu.Program, tape *io.Tape) (solo *Solo) {
	solo = &Solo{
		Cpu: cpu.NewCpu(0, prog, tape, tape),
	}

	return
}

// Reset the instance, and drain its channels.
func (solo *Solo) Reset() {
	solo.Cpu.Input.Rewind()
	solo.Cpu.Output.Rewind()
	solo.Cpu.Verbose = solo.Verbose
	solo.Cpu.Reset()
}

// Run the instance once, until it suspends or halts.
func (solo *Solo) Run() (result Result, err error) {
	solo.Cpu.Verbose = solo.Verbose

	_, err = runCpu(solo.Cpu)

	result.Sends[0] = solo.Cpu.Sends
	result.States[0] = solo.Cpu.State
	result.States[1] = cpu.STATE_HALTED
	result.Turns = 1

	return
}
