package io

import (
	"bufio"
	"io"
	"strconv"
)

// Tape provides sequential text I/O for a single instance.
// Values are read from Input as whitespace separated decimal integers,
// and written to Output one per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	pending []int64
	eof     bool
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; it only drops buffered input.
func (tc *Tape) Rewind() {
	tc.pending = nil
}

// fill reads the next token from the input, if there is one.
func (tc *Tape) fill() {
	if len(tc.pending) > 0 || tc.eof || tc.Input == nil {
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	if !tc.scanner.Scan() {
		tc.eof = true
		return
	}

	value, err := strconv.ParseInt(tc.scanner.Text(), 10, 64)
	if err != nil {
		// Malformed input ends the tape.
		tc.eof = true
		return
	}

	tc.pending = append(tc.pending, value)
}

// Receive reads the next value from the input stream.
// End of input, or a token that is not a number, reads as empty.
func (tc *Tape) Receive() (value int64, ok bool) {
	tc.fill()

	if len(tc.pending) == 0 {
		return
	}

	value = tc.pending[0]
	ok = true
	tc.pending = tc.pending[1:]

	return
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = io.WriteString(tc.Output, strconv.FormatInt(value, 10)+"\n")

	return
}

// Len reports 1 if a value can be received without blocking, 0 otherwise.
func (tc *Tape) Len() int {
	tc.fill()

	return len(tc.pending)
}
