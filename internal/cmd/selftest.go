package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dharmi1503/nlpy-cli/internal/engine"
	"github.com/Dharmi1503/nlpy-cli/internal/ui"
)

// selftestCases are fixed instructions with a substring each output
// must contain. The harness checks containment, not equality, so the
// help case can assert on its header alone.
var selftestCases = []struct {
	instruction string
	expect      string
}{
	{"print hello world", `print("hello world")`},
	{"print numbers from 1 to 5", "for i in range(1, 6):\n    print(i)"},
	{"add 10 and 20", "print(10 + 20)"},
	{"create list 1,2,3,4,5", "my_list = [1, 2, 3, 4, 5]"},
	{"append 6 to list", "my_list.append(6)"},
	{"sort list", "my_list.sort()"},
	{"print list", "print(my_list)"},
	{"square 5", "print(5 ** 2)"},
	{"create string hello python", `my_string = "hello python"`},
	{"uppercase string", "my_string = my_string.upper()"},
	{"print string", "print(my_string)"},
	{"create dictionary name:john, age:25", `my_dict = {"name": "john", "age": 25}`},
	{"print dictionary", "print(my_dict)"},
	{"if x equals 10 then print correct", `if x == 10: print("correct")`},
	{"loop list", "for item in my_list:\n    print(item)"},
	{"ask input enter your name:", `user_input = input("enter your name:")`},
	{"help", "# Available commands:"},
	{"do a backflip", engine.Unrecognized},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in translation checks",
	Long: `Feed a fixed batch of instructions through the engine and verify each
output contains its expected snippet. Exits non-zero if any check fails.`,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) error {
	eng := engine.New()
	failed := 0

	fmt.Println(ui.Title("nlpy selftest"))

	for _, tc := range selftestCases {
		code, err := eng.Translate(tc.instruction)
		switch {
		case err != nil:
			failed++
			ui.PrintError(fmt.Sprintf("%q: %v", tc.instruction, err))
		case !strings.Contains(code, tc.expect):
			failed++
			ui.PrintError(fmt.Sprintf("%q", tc.instruction))
			fmt.Println(ui.Indent("got:      " + code))
			fmt.Println(ui.Indent("expected: " + tc.expect))
		default:
			ui.PrintOK(fmt.Sprintf("%q", tc.instruction))
			if verbose {
				fmt.Println(ui.Indent(code))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(selftestCases))
	}
	ui.PrintOK(fmt.Sprintf("all %d checks passed", len(selftestCases)))
	return nil
}
