package main

import (
	"github.com/lox/chipstack/cmd/chipstack/shared"
	"github.com/lox/chipstack/internal/remote"
)

type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	logger := shared.SetupConsoleLogger(cfg.UI.LogLevel)
	shell, table, err := buildShell(cfg, logger)
	if err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = cfg.ListenAddr()
	}

	ctx := shared.SetupSignalHandler(logger)
	return remote.NewServer(shell, table, logger).Run(ctx, addr)
}
