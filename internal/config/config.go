package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when --config is not given
const DefaultFile = "videopoker.hcl"

const (
	ModeConsole = "console"
	ModeTUI     = "tui"

	ThemeDefault = "default"
	ThemeMono    = "mono"
)

var (
	validModes     = []string{ModeConsole, ModeTUI}
	validThemes    = []string{ThemeDefault, ThemeMono}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config is the complete game configuration
type Config struct {
	Game GameSettings
	UI   UISettings
}

// GameSettings controls the credit loop
type GameSettings struct {
	StartingCredits int   `hcl:"starting_credits,optional"`
	Bets            []int `hcl:"bets,optional"`
	GambleRevealMS  int   `hcl:"gamble_reveal_ms,optional"`
}

// UISettings controls presentation and logging
type UISettings struct {
	Mode     string `hcl:"mode,optional"`
	Theme    string `hcl:"theme,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// file mirrors the on-disk layout; both blocks are optional
type file struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			StartingCredits: 100,
			Bets:            []int{5, 10, 20, 30},
			GambleRevealMS:  0,
		},
		UI: UISettings{
			Mode:     ModeConsole,
			Theme:    ThemeDefault,
			LogLevel: "info",
			LogFile:  "videopoker.log",
		},
	}
}

// Load reads an HCL config file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything left unset.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if raw.Game != nil {
		config.Game.merge(*raw.Game)
	}
	if raw.UI != nil {
		config.UI.merge(*raw.UI)
	}
	return config, nil
}

func (g *GameSettings) merge(o GameSettings) {
	if o.StartingCredits != 0 {
		g.StartingCredits = o.StartingCredits
	}
	if o.Bets != nil {
		g.Bets = slices.Clone(o.Bets)
	}
	if o.GambleRevealMS != 0 {
		g.GambleRevealMS = o.GambleRevealMS
	}
}

func (u *UISettings) merge(o UISettings) {
	if o.Mode != "" {
		u.Mode = o.Mode
	}
	if o.Theme != "" {
		u.Theme = o.Theme
	}
	if o.LogLevel != "" {
		u.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		u.LogFile = o.LogFile
	}
}

// RevealDelay is the pause before a gamble card is revealed
func (g GameSettings) RevealDelay() time.Duration {
	return time.Duration(g.GambleRevealMS) * time.Millisecond
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.StartingCredits <= 0 {
		return fmt.Errorf("starting credits must be positive, got %d", c.Game.StartingCredits)
	}

	if len(c.Game.Bets) == 0 {
		return fmt.Errorf("at least one bet must be configured")
	}
	seen := make(map[int]bool, len(c.Game.Bets))
	for _, bet := range c.Game.Bets {
		if bet <= 0 {
			return fmt.Errorf("bet must be positive, got %d", bet)
		}
		if seen[bet] {
			return fmt.Errorf("duplicate bet %d", bet)
		}
		seen[bet] = true
	}

	if c.Game.GambleRevealMS < 0 {
		return fmt.Errorf("gamble reveal delay must not be negative, got %dms", c.Game.GambleRevealMS)
	}

	if !slices.Contains(validModes, c.UI.Mode) {
		return fmt.Errorf("invalid mode %q, must be one of %v", c.UI.Mode, validModes)
	}
	if !slices.Contains(validThemes, c.UI.Theme) {
		return fmt.Errorf("invalid theme %q, must be one of %v", c.UI.Theme, validThemes)
	}
	if !slices.Contains(validLogLevels, c.UI.LogLevel) {
		return fmt.Errorf("invalid log level %q, must be one of %v", c.UI.LogLevel, validLogLevels)
	}

	return nil
}
