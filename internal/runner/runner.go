// Package runner executes generated snippets against a real Python
// interpreter. It is a host-side collaborator: the translation engine
// never sees execution results, and a failing snippet cannot affect
// the rule table.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// seedPrelude declares the variables the generated snippets refer to,
// so "append 6 to list" works without a prior "create list". Mirrors
// the namespace an interactive session starts with.
const seedPrelude = `my_list = []
my_string = ""
my_dict = {}
user_input = ""
`

// DefaultTimeout bounds a single snippet execution.
const DefaultTimeout = 10 * time.Second

// Result holds the outcome of one snippet execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes snippets with a Python interpreter.
type Runner struct {
	// PythonBin is the interpreter command. Empty means auto-detect.
	PythonBin string

	// Timeout bounds each execution. Zero means DefaultTimeout.
	Timeout time.Duration
}

// New returns a runner for the given interpreter ("" = auto-detect).
func New(pythonBin string) *Runner {
	return &Runner{PythonBin: pythonBin}
}

// Script returns the full program that will be executed for code:
// the seed prelude followed by the snippet.
func (r *Runner) Script(code string) string {
	return seedPrelude + code + "\n"
}

// Run writes the script to a temp file and executes it. A non-zero
// exit is not a Go error: the Result carries the interpreter's stderr
// and exit code for the caller to report.
func (r *Runner) Run(ctx context.Context, code string) (*Result, error) {
	python, err := r.resolvePython()
	if err != nil {
		return nil, err
	}

	scriptPath, err := r.writeScript(r.Script(code))
	if err != nil {
		return nil, fmt.Errorf("failed to write script: %w", err)
	}
	defer func() { _ = os.Remove(scriptPath) }()

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, python, scriptPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("execution timed out after %s", timeout)
		}
		exitErr, ok := runErr.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("failed to execute %s: %w", python, runErr)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// resolvePython finds the interpreter to use.
func (r *Runner) resolvePython() (string, error) {
	if r.PythonBin != "" {
		return r.PythonBin, nil
	}
	for _, candidate := range []string{"python3", "python"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found in PATH")
}

// writeScript writes the script to a temp file and returns its path.
func (r *Runner) writeScript(script string) (string, error) {
	tmpFile, err := os.CreateTemp("", "nlpy-*.py")
	if err != nil {
		return "", err
	}
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.WriteString(script); err != nil {
		_ = os.Remove(tmpFile.Name())
		return "", err
	}

	return filepath.Clean(tmpFile.Name()), nil
}
