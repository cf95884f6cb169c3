package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dharmi1503/nlpy-cli/internal/config"
	"github.com/Dharmi1503/nlpy-cli/internal/engine"
	"github.com/Dharmi1503/nlpy-cli/internal/runner"
	"github.com/Dharmi1503/nlpy-cli/internal/ui"
)

var translateRun bool

var translateCmd = &cobra.Command{
	Use:   "translate <instruction>...",
	Short: "Translate one instruction and print the generated Python",
	Example: `  nlpy translate print numbers from 1 to 5
  nlpy translate "create dictionary name:john, age:25"
  nlpy translate --run add 10 and 20`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().BoolVar(&translateRun, "run", false, "execute the generated code with a python interpreter")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	instruction := strings.Join(args, " ")
	eng := engine.New()

	if verbose {
		ui.PrintInfo(fmt.Sprintf("instruction: %q", engine.Normalize(instruction)))
	}

	code, err := eng.Translate(instruction)
	if err != nil {
		return err
	}

	fmt.Println(code)

	if code == engine.Unrecognized {
		printSuggestions(eng, instruction)
		return nil
	}

	if translateRun && code != engine.EmptyInstruction {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runSnippet(cmd.Context(), runner.New(cfg.PythonBin), code)
	}
	return nil
}

// printSuggestions shows "did you mean" hints next to the sentinel.
func printSuggestions(eng *engine.Engine, instruction string) {
	hints := eng.Suggest(instruction, 3)
	if len(hints) == 0 {
		return
	}
	ui.PrintWarn("closest commands:")
	for _, hint := range hints {
		fmt.Println(ui.Indent(hint))
	}
}

// runSnippet executes code and reports the interpreter's output.
// Execution failures are reported, never propagated into the engine.
func runSnippet(ctx context.Context, r *runner.Runner, code string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := r.Run(ctx, code)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	if result.Stdout != "" {
		fmt.Print(result.Stdout)
	}
	if result.ExitCode != 0 {
		ui.PrintError(fmt.Sprintf("python exited with code %d", result.ExitCode))
		if result.Stderr != "" {
			fmt.Print(result.Stderr)
		}
		return nil
	}
	ui.PrintOK("code executed successfully")
	return nil
}
