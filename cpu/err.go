package cpu

import (
	"errors"

	"github.com/ezrec/duet/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrArithmetic  = errors.New(f("modulo by zero"))
	ErrChannelNone = errors.New(f("channel not connected"))

	// Decode errors
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOperandCount    = errors.New(f("wrong number of operands"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrOperandInvalid  = errors.New(f("operand invalid"))
)

// ErrInstruction identifies the instruction that faulted.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrSyntax locates a decode error in the program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a value or register", string(err))
}

func (err ErrParseOperand) Unwrap() error {
	return ErrOperandInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
