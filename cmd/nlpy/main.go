package main

import (
	"github.com/Dharmi1503/nlpy-cli/internal/cmd"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	cmd.Execute()
}
