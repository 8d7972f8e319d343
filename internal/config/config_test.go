package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.NoError(t, config.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videopoker.hcl")
	src := `
game {
  starting_credits = 250
  bets             = [1, 2, 5]
  gamble_reveal_ms = 400
}

ui {
  mode  = "tui"
  theme = "mono"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	config, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, 250, config.Game.StartingCredits)
	assert.Equal(t, []int{1, 2, 5}, config.Game.Bets)
	assert.Equal(t, 400*time.Millisecond, config.Game.RevealDelay())
	assert.Equal(t, ModeTUI, config.UI.Mode)
	assert.Equal(t, ThemeMono, config.UI.Theme)

	// unset values keep their defaults
	assert.Equal(t, "info", config.UI.LogLevel)
	assert.Equal(t, "videopoker.log", config.UI.LogFile)
}

func TestParsePartialBlocks(t *testing.T) {
	config, err := Parse([]byte(`ui { log_level = "debug" }`), "inline.hcl")
	require.NoError(t, err)

	assert.Equal(t, 100, config.Game.StartingCredits)
	assert.Equal(t, []int{5, 10, 20, 30}, config.Game.Bets)
	assert.Equal(t, "debug", config.UI.LogLevel)
	assert.Equal(t, ModeConsole, config.UI.Mode)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `game {`, "failed to parse"},
		{"unknown attribute", `game { jackpot = 1 }`, "failed to decode"},
		{"wrong type", `game { bets = "five" }`, "failed to decode"},
		{"unknown block", `table "main" {}`, "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"negative credits", func(c *Config) { c.Game.StartingCredits = -5 }, "starting credits"},
		{"zero credits", func(c *Config) { c.Game.StartingCredits = 0 }, "starting credits"},
		{"no bets", func(c *Config) { c.Game.Bets = nil }, "at least one bet"},
		{"zero bet", func(c *Config) { c.Game.Bets = []int{5, 0} }, "bet must be positive"},
		{"duplicate bet", func(c *Config) { c.Game.Bets = []int{5, 10, 5} }, "duplicate bet 5"},
		{"negative delay", func(c *Config) { c.Game.GambleRevealMS = -1 }, "reveal delay"},
		{"unknown mode", func(c *Config) { c.UI.Mode = "gui" }, "invalid mode"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid theme"},
		{"unknown level", func(c *Config) { c.UI.LogLevel = "trace" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
