package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/efronlicht/enve"

	"github.com/ezrec/duet/cpu"
)

// DEFAULT_PROGRAM is the program file used when none is named.
const DEFAULT_PROGRAM = "example"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "duet",
	Short:         "An interpreter for duet programs.",
	Long:          "Runs programs of the seven instruction duet language, as a cross-wired pair or alone.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", enve.BoolOr("DUET_VERBOSE", false), "trace every instruction and turn")
	rootCmd.PersistentFlags().StringToInt64P("define", "D", nil, "define a constant for $(...) expressions")
}

// GetFlag gets an expected boolean flag, or exits.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetDefines gets the constant definitions, or exits.
func GetDefines(cmd *cobra.Command) map[string]int64 {
	r, err := cmd.Flags().GetStringToInt64("define")
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// programFile returns the program file named on the command line, the
// DUET_PROGRAM environment variable, or the default.
func programFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return enve.StringOr("DUET_PROGRAM", DEFAULT_PROGRAM)
}

// loadProgram reads and decodes the program named by the arguments.
func loadProgram(cmd *cobra.Command, args []string) (prog *cpu.Program, err error) {
	name := programFile(args)

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: GetFlag(cmd, "verbose")}
	for key, value := range GetDefines(cmd) {
		asm.Predefine(key, value)
	}

	prog, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	log.Debugf("duet: %v: %d instructions", name, prog.Len())

	return
}

// reportSends writes the final send counts.
func reportSends(cmd *cobra.Command, sends ...int) {
	counts := make([]string, len(sends))
	for n, count := range sends {
		counts[n] = fmt.Sprint(count)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "sends = %s\n", strings.Join(counts, ", "))
}

// fail logs an error, and returns it to cobra.
func fail(err error) error {
	log.Error(err)
	return err
}
