package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dharmi1503/nlpy-cli/internal/engine"
	"github.com/Dharmi1503/nlpy-cli/internal/ui"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List every supported instruction template",
	Long: `Print the instruction catalog. The catalog is derived from the rule
table itself, so this list is always in sync with what the engine
actually accepts.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng := engine.New()

		fmt.Println(ui.Title("Supported instructions"))
		for _, doc := range eng.Catalog() {
			fmt.Printf("  %-42s %s\n", doc.Usage, doc.Summary)
			if verbose {
				fmt.Println(ui.Indent("e.g. " + doc.Example))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
