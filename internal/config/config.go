package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/chipstack/internal/chips"
)

// Provider names accepted by wallet.provider.
const (
	ProviderChips = "chips"
	ProviderForm  = "form"
)

// Config represents the complete casino configuration
type Config struct {
	Wallet        *WalletSettings      `hcl:"wallet,block"`
	Denominations []DenominationConfig `hcl:"denomination,block"`
	Games         []GameConfig         `hcl:"game,block"`
	UI            *UISettings          `hcl:"ui,block"`
	Server        *ServerSettings      `hcl:"server,block"`
}

// WalletSettings controls the player's bankroll and how bets are made.
// StartingWinnings is nil only when the attribute was left out.
type WalletSettings struct {
	StartingWinnings *int   `hcl:"starting_winnings,optional"`
	Provider         string `hcl:"provider,optional"`
	ChipHeight       int    `hcl:"chip_height,optional"`
}

// Winnings returns the starting bankroll
func (w *WalletSettings) Winnings() int {
	if w.StartingWinnings == nil {
		return 0
	}
	return *w.StartingWinnings
}

// DenominationConfig defines one chip value and its colours
type DenominationConfig struct {
	Value    int    `hcl:"value"`
	FG       string `hcl:"fg,optional"`
	BG       string `hcl:"bg,optional"`
	Selected string `hcl:"selected,optional"`
}

// GameConfig registers a sample game
type GameConfig struct {
	Name  string   `hcl:"name,label"`
	Label string   `hcl:"label,optional"`
	Spots []string `hcl:"spots,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// ServerSettings contains remote adapter settings
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	winnings := 100
	denoms := chips.DefaultDenominations()
	dcs := make([]DenominationConfig, len(denoms))
	for i, d := range denoms {
		dcs[i] = DenominationConfig{Value: d.Value, FG: d.Foreground, BG: d.Background, Selected: d.Selected}
	}

	return &Config{
		Wallet: &WalletSettings{
			StartingWinnings: &winnings,
			Provider:         ProviderChips,
			ChipHeight:       chips.DefaultChipHeight,
		},
		Denominations: dcs,
		Games: []GameConfig{
			{Name: "sample-game-1", Label: "Sample Game #1", Spots: []string{"main"}},
			{Name: "sample-game-2", Label: "Sample Game #2", Spots: []string{"left", "right"}},
		},
		UI: &UISettings{
			LogLevel: "warn",
			LogFile:  "chipstack.log",
		},
		Server: &ServerSettings{
			Address: "localhost",
			Port:    8080,
		},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to the
// defaults when the file does not exist
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults(DefaultConfig())
	return &config, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.Wallet == nil {
		c.Wallet = defaults.Wallet
	}
	if c.Wallet.StartingWinnings == nil {
		c.Wallet.StartingWinnings = defaults.Wallet.StartingWinnings
	}
	if c.Wallet.Provider == "" {
		c.Wallet.Provider = defaults.Wallet.Provider
	}
	if c.Wallet.ChipHeight == 0 {
		c.Wallet.ChipHeight = defaults.Wallet.ChipHeight
	}

	if len(c.Denominations) == 0 {
		c.Denominations = defaults.Denominations
	}
	for i := range c.Denominations {
		d := &c.Denominations[i]
		if d.FG == "" {
			d.FG = "#000000"
		}
		if d.BG == "" {
			d.BG = "#cccccc"
		}
		if d.Selected == "" {
			d.Selected = "#ffff00"
		}
	}

	if len(c.Games) == 0 {
		c.Games = defaults.Games
	}
	for i := range c.Games {
		if c.Games[i].Label == "" {
			c.Games[i].Label = c.Games[i].Name
		}
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}

	if c.Server == nil {
		c.Server = defaults.Server
	}
	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Wallet.Winnings() < 0 {
		return fmt.Errorf("starting winnings cannot be negative")
	}

	if c.Wallet.Provider != ProviderChips && c.Wallet.Provider != ProviderForm {
		return fmt.Errorf("invalid bet provider: %s", c.Wallet.Provider)
	}

	if c.Wallet.ChipHeight <= 0 {
		return fmt.Errorf("chip height must be positive")
	}

	if _, err := c.Table(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Games))
	for _, g := range c.Games {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("game name is required")
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate game: %s", g.Name)
		}
		seen[g.Name] = true
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// Table builds the denomination table
func (c *Config) Table() (*chips.Table, error) {
	ds := make([]chips.Denomination, len(c.Denominations))
	for i, d := range c.Denominations {
		ds[i] = chips.Denomination{
			Value:      d.Value,
			Foreground: d.FG,
			Background: d.BG,
			Selected:   d.Selected,
		}
	}
	return chips.NewTable(ds...)
}

// ListenAddr returns the address the remote adapter binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
