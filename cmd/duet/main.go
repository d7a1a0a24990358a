// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command duet runs programs of the duet instruction language.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
