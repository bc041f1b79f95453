package main

import (
	"fmt"
	"os"

	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// A name on the command line skips the name prompt.
	if len(os.Args) > 1 {
		cfg.HunterName = os.Args[1]
	}

	if err := tui.StartWith(cfg); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
