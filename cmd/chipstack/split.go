package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/chipstack/internal/chips"
)

type SplitCmd struct {
	Amount int `arg:"" help:"Amount to break into chips"`
}

func (c *SplitCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}
	return writeSplit(os.Stdout, table, c.Amount)
}

func writeSplit(w io.Writer, table *chips.Table, amount int) error {
	ledger := chips.NewLedger(table)
	if err := table.Split(amount, ledger); err != nil {
		return err
	}

	parts := make([]string, 0, len(table.Values()))
	for _, st := range table.Stacks(ledger, false) {
		parts = append(parts, fmt.Sprintf("%d x $%d", st.Count, st.Value))
	}
	if len(parts) == 0 {
		parts = append(parts, "no chips")
	}

	_, err := fmt.Fprintf(w, "$%d = %s (%d chips)\n", amount, strings.Join(parts, " + "), ledger.Chips())
	return err
}
