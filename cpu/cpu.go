package cpu

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/duet/io"
)

// Channel is a value channel interface.
type Channel io.Channel

// State is the execution state of a Cpu.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING   = State(0) // running
	STATE_SUSPENDED = State(1) // suspended
	STATE_HALTED    = State(2) // halted
)

// ID_REGISTER is seeded with the identity of the Cpu on reset.
const ID_REGISTER = 'p'

// Cpu is the simulation context for a single program instance.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Id      int64    // Identity, seeded into register 'p'.
	Program *Program // Program being executed.

	Pc       int64     // Current program counter.
	Register Registers // Register bank.
	State    State     // Current execution state.

	Sends int // Total values sent since reset.
	Ticks int // Total instructions executed since reset.

	Input  Channel // Channel read by 'rcv'.
	Output Channel // Channel written by 'snd'.
}

// NewCpu creates a new, reset, CPU.
func NewCpu(id int64, prog *Program, input, output Channel) (cpu *Cpu) {
	cpu = &Cpu{
		Id:      id,
		Program: prog,
		Input:   input,
		Output:  output,
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers, and seeds the identity register.
// - Zeros the program counter and statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.WithField("cpu", cpu.Id).Debug("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Register.Set(ID_REGISTER, Imm(cpu.Id))

	cpu.Pc = 0
	cpu.Sends = 0
	cpu.Ticks = 0

	cpu.State = STATE_RUNNING
	if !cpu.Program.Contains(cpu.Pc) {
		cpu.State = STATE_HALTED
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 6s: %v\n", "id", cpu.Id)
	text += fmt.Sprintf("% 6s: %v\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 6s: %v\n", "state", cpu.State)
	text += fmt.Sprintf("% 6s: %v\n", "sends", cpu.Sends)
	text += fmt.Sprintf("% 6s: %v\n", "ticks", cpu.Ticks)
	for _, name := range cpu.Register.Names() {
		text += fmt.Sprintf("% 6s: %v\n", string(name), cpu.Register.Get(name))
	}

	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	inst, ok := cpu.Program.Fetch(cpu.Pc)
	if !ok {
		cpu.State = STATE_HALTED
		return
	}

	err = cpu.Execute(inst)
	if err != nil {
		return
	}

	// A suspended 'rcv' is retried, and is not counted.
	if cpu.State != STATE_SUSPENDED {
		cpu.Ticks += 1
	}

	return
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()
	if cpu.Verbose {
		log.WithFields(log.Fields{"cpu": cpu.Id, "pc": cpu.Pc}).Debug(inst)
	}

	rb := &cpu.Register
	next_pc := cpu.Pc + 1

	switch inst.Op {
	case OP_SET:
		rb.Set(inst.A.Register, inst.B)
	case OP_ADD:
		rb.Add(inst.A.Register, inst.B)
	case OP_MUL:
		rb.Mul(inst.A.Register, inst.B)
	case OP_MOD:
		err = rb.Mod(inst.A.Register, inst.B)
		if err != nil {
			return
		}
	case OP_SND:
		if cpu.Output == nil {
			err = ErrChannelNone
			return
		}
		err = cpu.Output.Send(rb.Read(inst.A))
		if err != nil {
			return
		}
		cpu.Sends += 1
	case OP_RCV:
		if cpu.Input == nil {
			err = ErrChannelNone
			return
		}
		value, ok := cpu.Input.Receive()
		if !ok {
			// Don't advance; retry on the next run.
			cpu.State = STATE_SUSPENDED
			return
		}
		rb.Set(inst.A.Register, Imm(value))
	case OP_JGZ:
		if rb.Read(inst.A) > 0 {
			next_pc = cpu.Pc + rb.Read(inst.B)
		}
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Pc = next_pc

	if !cpu.Program.Contains(cpu.Pc) {
		cpu.State = STATE_HALTED
	}

	return
}

// Run executes instructions until the CPU is suspended on an empty
// input channel, or halted by leaving the program.
func (cpu *Cpu) Run() (state State, err error) {
	if cpu.State == STATE_SUSPENDED {
		cpu.State = STATE_RUNNING
	}

	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			break
		}
	}

	if cpu.Verbose {
		log.WithFields(log.Fields{"cpu": cpu.Id, "pc": cpu.Pc}).Debugf("cpu: %v", cpu.State)
	}

	state = cpu.State

	return
}
