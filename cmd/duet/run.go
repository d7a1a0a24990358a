package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/duet/emulator"
	"github.com/ezrec/duet/io"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [program_file]",
	Short: "run a program as a cross-wired pair of instances.",
	Long: `Run two instances of a program, with identities 0 and 1, each
	sending to the other. The run ends when an instance sends nothing
	during its turn, and the send count of each instance is reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(cmd, args)
		if err != nil {
			return fail(err)
		}

		duet := emulator.NewDuet(prog)
		duet.Verbose = GetFlag(cmd, "verbose")
		duet.Reset()

		result, err := duet.Run()
		if err != nil {
			return fail(err)
		}

		reportSends(cmd, result.Sends[:]...)

		return nil
	},
}

var soloCmd = &cobra.Command{
	Use:   "solo [flags] [program_file]",
	Short: "run a program as a single instance sending to itself.",
	Long: `Run one instance of a program, with identity 0, whose sent
	values are queued for its own receives. The run ends when the
	instance suspends or halts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(cmd, args)
		if err != nil {
			return fail(err)
		}

		solo := emulator.NewSolo(prog)
		solo.Verbose = GetFlag(cmd, "verbose")

		result, err := solo.Run()
		if err != nil {
			return fail(err)
		}

		reportSends(cmd, result.Sends[0])

		return nil
	},
}

var execCmd = &cobra.Command{
	Use:   "exec [flags] [program_file]",
	Short: "run a program as a single instance on standard input and output.",
	Long: `Run one instance of a program, with identity 0. Received values
	are read from standard input as decimal integers, and sent values
	are written to standard output, one per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(cmd, args)
		if err != nil {
			return fail(err)
		}

		tape := &io.Tape{
			Input:  cmd.InOrStdin(),
			Output: cmd.OutOrStdout(),
		}

		solo := emulator.NewSoloTape(prog, tape)
		solo.Verbose = GetFlag(cmd, "verbose")

		_, err = solo.Run()
		if err != nil {
			return fail(err)
		}

		return nil
	},
}

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] [program_file]",
	Short: "print the canonical listing of a program.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := loadProgram(cmd, args)
		if err != nil {
			return fail(err)
		}

		_, err = cmd.OutOrStdout().Write([]byte(prog.String()))

		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(soloCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(disasmCmd)
}
