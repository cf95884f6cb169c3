package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

const pythonTutorialURL = "https://docs.python.org/3/tutorial/index.html"

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Open the Python tutorial in your browser",
	Long: `Open the official Python tutorial in the default browser, for reading
up on the constructs nlpy generates (lists, dicts, loops, input).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Opening %s\n", pythonTutorialURL)
		if err := browser.OpenURL(pythonTutorialURL); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
