package emulator

import (
	log "github.com/sirupsen/logrus"

	"github.com/ezrec/duet/cpu"
	"github.com/ezrec/duet/io"
)

// Duet is a pair of cpus running the same program, cross-wired so that
// each one's output queue is the other's input queue.
type Duet struct {
	Verbose bool // If set, enables verbose logging.

	Cpu   [2]*cpu.Cpu  // The two instances, with identities 0 and 1.
	Queue [2]*io.Queue // Input queue of each instance.

	Turns int // Turns taken since reset.
}

// NewDuet creates a new duet for a program.
func NewDuet(prog *cpu.Program) (duet *Duet) {
	duet = &Duet{}

	for id := range duet.Queue {
		duet.Queue[id] = &io.Queue{}
	}

	for id := range duet.Cpu {
		peer := 1 - id
		duet.Cpu[id] = cpu.NewCpu(int64(id), prog, duet.Queue[id], duet.Queue[peer])
	}

	return
}

// Reset both instances, and drain both queues.
func (duet *Duet) Reset() {
	for id := range duet.Cpu {
		duet.Queue[id].Rewind()
		duet.Cpu[id].Verbose = duet.Verbose
		duet.Cpu[id].Reset()
	}

	duet.Turns = 0
}

// Turn runs a single instance until it suspends or halts.
// Progress is true if the instance sent at least one value.
func (duet *Duet) Turn(id int) (progress bool, err error) {
	cp := duet.Cpu[id]
	cp.Verbose = duet.Verbose

	progress, err = runCpu(cp)
	duet.Turns++

	if duet.Verbose {
		log.WithFields(log.Fields{
			"turn":    duet.Turns,
			"cpu":     id,
			"state":   cp.State,
			"sends":   cp.Sends,
			"pending": duet.Queue[1-id].Len(),
		}).Debug("duet: turn")
	}

	return
}

// Result returns the current statistics of the duet.
func (duet *Duet) Result() (result Result) {
	for id, cp := range duet.Cpu {
		result.Sends[id] = cp.Sends
		result.States[id] = cp.State
	}
	result.Turns = duet.Turns

	return
}

// Run alternates turns between the instances, starting with instance 0.
// The run ends as soon as an instance sends nothing during its turn.
func (duet *Duet) Run() (result Result, err error) {
	for done := false; !done; {
		for id := range duet.Cpu {
			var progress bool
			progress, err = duet.Turn(id)
			if err != nil {
				break
			}
			if !progress {
				if duet.Verbose {
					log.WithField("cpu", id).Debug("duet: deadlock")
				}
				done = true
				break
			}
		}
		if err != nil {
			break
		}
	}

	result = duet.Result()

	return
}
