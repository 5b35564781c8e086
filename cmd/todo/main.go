package main

import (
	"fmt"
	"os"

	"github.com/fmizzell/todo/internal/exitcode"
)

// version is set at build time
var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitcode.FromError(err))
	}
}
