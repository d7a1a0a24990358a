package emulator

import (
	"github.com/ezrec/duet/translate"
)

var f = translate.From

// ErrRuntime indicates the instance and location of a runtime error.
type ErrRuntime struct {
	Cpu    int64
	LineNo int
	Pc     int64
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("cpu %d line %d pc %d: %v", err.Cpu, err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
