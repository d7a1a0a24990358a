// Package cpu implements the instruction decoder and execution engine for
// duet programs.
//
// A program is a list of seven instructions (set, add, mul, mod, snd, rcv,
// jgz) over single-character registers that read as zero until written.
// Each Cpu owns its own register bank and program counter, and exchanges
// values with its peer only through its Input and Output channels.
//
// A Cpu runs until it suspends on an empty input channel, or halts when the
// program counter leaves the program.
package cpu
