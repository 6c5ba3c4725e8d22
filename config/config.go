package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/lixenwraith/connect-four/constants"
)

// Config is the game configuration. Defaults come from env-default tags;
// no environment variable names are bound, so only a config file overrides them.
type Config struct {
	Debug       bool          `yaml:"debug" toml:"debug" env-default:"false"`
	Mute        bool          `yaml:"mute" toml:"mute" env-default:"false"`
	KeepOpen    bool          `yaml:"keep-open" toml:"keep-open" env-default:"false"`
	EndGameWait time.Duration `yaml:"end-game-wait" toml:"end-game-wait" env-default:"1s"`

	Layout Layout `yaml:"layout" toml:"layout"`
	Theme  Theme  `yaml:"theme" toml:"theme"`
	Audio  Audio  `yaml:"audio" toml:"audio"`
}

// Layout sets the size of one board cell in terminal cells
type Layout struct {
	CellWidth  int `yaml:"cell-width" toml:"cell-width" env-default:"6"`
	CellHeight int `yaml:"cell-height" toml:"cell-height" env-default:"3"`
}

// Theme colors, W3C names or #rrggbb
type Theme struct {
	Board   string `yaml:"board" toml:"board" env-default:"#46519c"`
	Hole    string `yaml:"hole" toml:"hole" env-default:"#333333"`
	Player1 string `yaml:"player1" toml:"player1" env-default:"#ff0000"`
	Player2 string `yaml:"player2" toml:"player2" env-default:"#ffff00"`
	Text    string `yaml:"text" toml:"text" env-default:"#ffffff"`
}

// Audio settings; Volume is the master volume in [0, 1]
type Audio struct {
	SampleRate int     `yaml:"sample-rate" toml:"sample-rate" env-default:"48000"`
	Volume     float64 `yaml:"volume" toml:"volume" env-default:"0.5"`
}

// Load reads the configuration file at path, or only the defaults when path is empty.
// The format follows the file extension: .yaml, .yml or .toml.
// Defaults are filled before the file is decoded, so explicit zero values in the file are kept.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %q: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// decodeFile overlays the keys present in the file onto cfg
func decodeFile(path string, cfg *Config) error {
	var parse func(io.Reader, any) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parse = cleanenv.ParseYAML
	case ".toml":
		parse = cleanenv.ParseTOML
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// An empty YAML document decodes to io.EOF
	if err := parse(f, cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Errorf("default config invalid: %w", err))
	}
	return cfg
}

// Validate checks value ranges and colors
func (c *Config) Validate() error {
	var errs []error

	if c.EndGameWait < 0 {
		errs = append(errs, fmt.Errorf("end-game-wait must not be negative, got %s", c.EndGameWait))
	}
	if c.Layout.CellWidth < constants.MinCellSize {
		errs = append(errs, fmt.Errorf("layout.cell-width must be at least %d, got %d", constants.MinCellSize, c.Layout.CellWidth))
	}
	if c.Layout.CellHeight < constants.MinCellSize {
		errs = append(errs, fmt.Errorf("layout.cell-height must be at least %d, got %d", constants.MinCellSize, c.Layout.CellHeight))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample-rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	colors := map[string]string{
		"theme.board":   c.Theme.Board,
		"theme.hole":    c.Theme.Hole,
		"theme.player1": c.Theme.Player1,
		"theme.player2": c.Theme.Player2,
		"theme.text":    c.Theme.Text,
	}
	for name, value := range colors {
		if tcell.GetColor(value) == tcell.ColorDefault {
			errs = append(errs, fmt.Errorf("%s: unknown color %q", name, value))
		}
	}

	return errors.Join(errs...)
}
