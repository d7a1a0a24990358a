// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator schedules cpu instances connected by message queues.
package emulator

import (
	"github.com/ezrec/duet/cpu"
)

// Result of a scheduler run.
type Result struct {
	Sends  [2]int       // Total sends per instance.
	States [2]cpu.State // Final state per instance.
	Turns  int          // Number of turns taken.
}

// runCpu runs one cpu until it suspends or halts, and reports if it sent
// any values during the turn.
func runCpu(cp *cpu.Cpu) (progress bool, err error) {
	before := cp.Sends

	_, err = cp.Run()
	if err != nil {
		lineno := 0
		if op := cp.Program.Debug(cp.Pc); op != nil {
			lineno = op.LineNo
		}
		err = &ErrRuntime{Cpu: cp.Id, LineNo: lineno, Pc: cp.Pc, Err: err}
		return
	}

	progress = cp.Sends != before

	return
}
