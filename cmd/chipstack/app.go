package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/chipstack/internal/bets"
	"github.com/lox/chipstack/internal/casino"
	"github.com/lox/chipstack/internal/chips"
	"github.com/lox/chipstack/internal/config"
	"github.com/lox/chipstack/internal/game"
)

// loadConfig reads and validates the configuration, applying flag overrides
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// buildShell wires the configured bet provider and games into a shell
func buildShell(cfg *config.Config, logger *log.Logger) (*casino.Shell, *chips.Table, error) {
	table, err := cfg.Table()
	if err != nil {
		return nil, nil, err
	}

	opts := []bets.Option{
		bets.WithLogger(logger),
		bets.WithChipHeight(cfg.Wallet.ChipHeight),
	}

	var provider bets.BetProvider
	switch cfg.Wallet.Provider {
	case config.ProviderForm:
		provider = bets.NewFormBets(cfg.Wallet.Winnings(), opts...)
	default:
		provider, err = bets.NewChipBets(table, cfg.Wallet.Winnings(), opts...)
		if err != nil {
			return nil, nil, err
		}
	}

	games := make([]game.GamePlugin, 0, len(cfg.Games))
	for _, gc := range cfg.Games {
		games = append(games, game.NewSampleGame(gc.Name, gc.Label, gc.Spots, logger))
	}

	shell, err := casino.NewShell(provider, logger, games...)
	if err != nil {
		return nil, nil, err
	}
	return shell, table, nil
}
