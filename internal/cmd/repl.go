package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/Dharmi1503/nlpy-cli/internal/config"
	"github.com/Dharmi1503/nlpy-cli/internal/engine"
	"github.com/Dharmi1503/nlpy-cli/internal/runner"
	"github.com/Dharmi1503/nlpy-cli/internal/ui"
)

var replAutoRun bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive shell: type instructions, get Python back",
	Long: `Start an interactive shell. Each line is translated to Python and
printed; you can optionally execute the generated snippet with a local
python interpreter. Variables referenced by the snippets (my_list,
my_string, my_dict) are seeded fresh for every execution.

Type 'exit', 'quit' or 'q' to leave.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replAutoRun, "run", false, "execute every generated snippet without asking")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	autoRun := replAutoRun || cfg.AutoRun

	eng := engine.New()
	run := runner.New(cfg.PythonBin)
	histPath := cfg.History()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Println(ui.Title("nlpy " + version))
	fmt.Println("Type an instruction, 'help' for the catalog, 'exit' to quit.")

	for {
		line, err := ln.Prompt("nlpy> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Println()
			return nil
		}

		instruction := strings.TrimSpace(line)
		switch strings.ToLower(instruction) {
		case "exit", "quit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "":
			continue
		}
		ln.AppendHistory(instruction)

		code, err := eng.Translate(instruction)
		if err != nil {
			ui.PrintError(err.Error())
			continue
		}

		fmt.Println(ui.Code(code))

		if code == engine.Unrecognized {
			printSuggestions(eng, instruction)
			continue
		}

		if !executable(code) {
			continue
		}
		if !autoRun && !confirmRun() {
			continue
		}
		if err := runSnippet(context.Background(), run, code); err != nil {
			// Execution problems stay in the shell; the engine holds
			// no state to corrupt.
			ui.PrintError(err.Error())
		}
	}
}

// executable reports whether code is worth sending to an interpreter.
// Pure comment output (help text, markers) is display-only.
func executable(code string) bool {
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return true
		}
	}
	return false
}

// confirmRun asks whether to execute the generated snippet.
func confirmRun() bool {
	prompt := promptui.Prompt{
		Label:     "Run this code",
		IsConfirm: true,
	}
	// promptui returns an error for anything but an explicit yes.
	_, err := prompt.Run()
	return err == nil
}
