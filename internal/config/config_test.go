package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chipstack/internal/chips"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chipstack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, []int{100, 25, 5, 1}, table.Values())
	assert.Equal(t, "localhost:8080", cfg.ListenAddr())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
wallet {
  starting_winnings = 500
  provider          = "form"
}

denomination {
  value = 10
  bg    = "#0000cc"
}

denomination {
  value = 1
}

game "roulette" {
  label = "Roulette"
  spots = ["red", "black"]
}

game "dice" {}

ui {
  log_level = "debug"
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 500, cfg.Wallet.Winnings())
	assert.Equal(t, ProviderForm, cfg.Wallet.Provider)
	assert.Equal(t, chips.DefaultChipHeight, cfg.Wallet.ChipHeight)

	table, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 1}, table.Values())
	ten, ok := table.Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "#0000cc", ten.Background)
	assert.Equal(t, "#000000", ten.Foreground)

	require.Len(t, cfg.Games, 2)
	assert.Equal(t, GameConfig{Name: "roulette", Label: "Roulette", Spots: []string{"red", "black"}}, cfg.Games[0])
	assert.Equal(t, "dice", cfg.Games[1].Label)

	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "chipstack.log", cfg.UI.LogFile)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigStartingWinnings(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, `wallet { starting_winnings = 0 }`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.NotNil(t, cfg.Wallet.StartingWinnings)
	assert.Equal(t, 0, cfg.Wallet.Winnings())

	cfg, err = LoadConfig(writeConfig(t, `wallet { provider = "form" }`))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Wallet.Winnings())
}

func TestLoadConfigParseError(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(writeConfig(t, `wallet {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")

	_, err = LoadConfig(writeConfig(t, `wallet { colour = "red" }`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative winnings", func(c *Config) { *c.Wallet.StartingWinnings = -1 }, "starting winnings cannot be negative"},
		{"bad provider", func(c *Config) { c.Wallet.Provider = "tokens" }, "invalid bet provider: tokens"},
		{"bad chip height", func(c *Config) { c.Wallet.ChipHeight = 0 }, "chip height must be positive"},
		{"duplicate denomination", func(c *Config) {
			c.Denominations = append(c.Denominations, DenominationConfig{Value: 5})
		}, "duplicate denomination"},
		{"zero denomination", func(c *Config) { c.Denominations[0].Value = 0 }, "denomination must be positive"},
		{"duplicate game", func(c *Config) { c.Games[1].Name = c.Games[0].Name }, "duplicate game: sample-game-1"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid server port: 70000"},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }, "invalid log level: loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
