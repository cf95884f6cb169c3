package cmd

import (
	"strings"
	"testing"

	"github.com/Dharmi1503/nlpy-cli/internal/engine"
)

// The shipped selftest batch must be green against the shipped rule
// table; a red selftest command would ship a broken engine.
func TestSelftestCasesPass(t *testing.T) {
	eng := engine.New()

	for _, tc := range selftestCases {
		code, err := eng.Translate(tc.instruction)
		if err != nil {
			t.Errorf("Translate(%q) error: %v", tc.instruction, err)
			continue
		}
		if !strings.Contains(code, tc.expect) {
			t.Errorf("Translate(%q) = %q, want it to contain %q", tc.instruction, code, tc.expect)
		}
	}
}

func TestExecutable(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{`print("hello")`, true},
		{"for i in range(1, 6):\n    print(i)", true},
		{engine.Unrecognized, false},
		{engine.EmptyInstruction, false},
		{"# Available commands:\n# print TEXT - print any text", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := executable(tt.code); got != tt.want {
			t.Errorf("executable(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
