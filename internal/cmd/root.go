package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nlpy",
	Short: "nlpy - translate plain English instructions into Python code",
	Long: `nlpy turns short English instructions into Python snippets using an
ordered table of pattern rules. The first rule that matches the whole
instruction wins.

Examples of instructions it understands:
  print numbers from 1 to 5
  create list 1,2,3
  create dictionary name:john, age:25
  if x equals 10 then print correct

Run 'nlpy commands' for the full catalog, or 'nlpy repl' for an
interactive shell that can also execute the generated code.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
