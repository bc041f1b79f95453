package tui

import (
	"fmt"

	"github.com/tatianab/treasure-hunter/internal/config"
	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/logger"
	"github.com/tatianab/treasure-hunter/internal/models"
)

// Start loads the configuration from the environment and runs the game.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return StartWith(cfg)
}

// StartWith runs the game with an explicit configuration.
func StartWith(cfg *config.Config) error {
	log, closer, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	rules, err := models.DefaultRules()
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	src := engine.NewSource(cfg.Seed)

	return Run(Options{
		HunterName: cfg.HunterName,
		Difficulty: cfg.Difficulty,
		NewGame: func(name string, d models.Difficulty) (*engine.Engine, error) {
			sessionLog, _ := logger.WithSession(log)
			return engine.NewEngine(src, rules, d, name, sessionLog)
		},
	})
}
