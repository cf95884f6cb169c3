package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize applies color only if output is a TTY
func colorize(color, msg string) string {
	if !isTTY() {
		return msg
	}
	return color + msg + Reset
}

// OK formats a success message with [OK] prefix in green
func OK(msg string) string {
	return fmt.Sprintf("%s %s", colorize(Green, "[OK]"), msg)
}

// Error formats an error message with [ERROR] prefix in red
func Error(msg string) string {
	return fmt.Sprintf("%s %s", colorize(Red, "[ERROR]"), msg)
}

// Warn formats a warning message with [WARN] prefix in yellow
func Warn(msg string) string {
	return fmt.Sprintf("%s %s", colorize(Yellow, "[WARN]"), msg)
}

// Info formats an info message with [INFO] prefix in blue
func Info(msg string) string {
	return fmt.Sprintf("%s %s", colorize(Blue, "[INFO]"), msg)
}

// Title formats a section title in bold cyan
func Title(msg string) string {
	return colorize(Bold+Cyan, msg)
}

// Code frames a generated snippet between rulers so it stands out from
// the shell chrome around it.
func Code(code string) string {
	ruler := colorize(Cyan, "----------------------------------------")
	return ruler + "\n" + code + "\n" + ruler
}

// PrintOK prints a success message
func PrintOK(msg string) {
	fmt.Println(OK(msg))
}

// PrintError prints an error message
func PrintError(msg string) {
	fmt.Println(Error(msg))
}

// PrintWarn prints a warning message
func PrintWarn(msg string) {
	fmt.Println(Warn(msg))
}

// PrintInfo prints an info message
func PrintInfo(msg string) {
	fmt.Println(Info(msg))
}

// Indent returns the message with indentation
func Indent(msg string) string {
	return "     " + msg
}
