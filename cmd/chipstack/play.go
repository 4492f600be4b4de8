package main

import (
	"github.com/lox/chipstack/cmd/chipstack/shared"
	"github.com/lox/chipstack/internal/tui"
)

type PlayCmd struct {
	LogFile string `long:"log-file" help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}

	logger, closer, err := shared.SetupFileLogger(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	shell, _, err := buildShell(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting chipstack", "config", g.Config, "provider", cfg.Wallet.Provider,
		"winnings", cfg.Wallet.Winnings())
	return tui.Run(shell, logger)
}
