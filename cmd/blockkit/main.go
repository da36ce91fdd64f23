package main

import (
	"log"
	"os"

	"github.com/dyluth/blockkit/cmd/blockkit/commands"
	"github.com/dyluth/blockkit/internal/config"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("[WARN] %v", err)
	}

	commands.SetVersionInfo(version, commit, date)

	// Errors are printed directly by the printer package with color formatting
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
