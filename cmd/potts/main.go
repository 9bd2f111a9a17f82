package main

import (
	"os"

	"github.com/joho/godotenv"

	"potts-mc/cmd/potts/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Optional; POTTS_* variables may also come from the real environment.
	_ = godotenv.Load()

	commands.SetVersionInfo(version, commit, date)

	// Errors are printed by the report printer with color formatting.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
