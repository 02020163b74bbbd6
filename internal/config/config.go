package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pushoff/internal/arena"
	"github.com/san-kum/pushoff/internal/collect"
	"github.com/san-kum/pushoff/internal/match"
	"github.com/san-kum/pushoff/internal/physics"
)

const (
	ModePushoff = "pushoff"
	ModeCollect = "collect"

	DefaultFPS     = 60
	DefaultDataDir = ".pushoff"
)

// Controller kinds for each player slot.
const (
	PlayerKeys      = "keys"
	PlayerBot       = "bot"
	PlayerChargeBot = "charge-bot"
	PlayerNone      = "none"
)

type Config struct {
	Preset    string           `yaml:"preset"`
	Mode      string           `yaml:"mode"`
	Features  match.Features   `yaml:"features"`
	Tuning    physics.Tuning   `yaml:"tuning"`
	Arena     arena.Bounds     `yaml:"arena"`
	Obstacles arena.Options    `yaml:"obstacles"`
	Platform  physics.Platform `yaml:"platform"`
	Players   PlayersConfig    `yaml:"players"`
	Seed      int64            `yaml:"seed"`
	FPS       int              `yaml:"fps"`
	Sound     bool             `yaml:"sound"`
	DataDir   string           `yaml:"data_dir"`
}

type PlayersConfig struct {
	P1 string `yaml:"p1"`
	P2 string `yaml:"p2"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:    "classic",
		Mode:      ModePushoff,
		Features:  match.Features{Charge: true, Obstacles: true},
		Tuning:    physics.DefaultTuning(),
		Arena:     arena.DefaultBounds(),
		Obstacles: arena.DefaultOptions(),
		Platform:  physics.Platform{W: match.PlatformWidth, H: match.PlatformHeight},
		Players:   PlayersConfig{P1: PlayerKeys, P2: PlayerKeys},
		FPS:       DefaultFPS,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Mode != ModePushoff && c.Mode != ModeCollect:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %.0fx%.0f", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Arena.Margin < 0:
		return fmt.Errorf("%w: arena margin must not be negative", ErrInvalid)
	case c.Tuning.PlayerSize <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Tuning.Friction <= 0 || c.Tuning.Friction >= 1:
		return fmt.Errorf("%w: friction must be in (0, 1), got %f", ErrInvalid, c.Tuning.Friction)
	case c.Tuning.MaxCharge < 0:
		return fmt.Errorf("%w: max charge must not be negative", ErrInvalid)
	case c.Tuning.CollisionCooldown < 0:
		return fmt.Errorf("%w: collision cooldown must not be negative", ErrInvalid)
	case c.Features.Obstacles && (c.Obstacles.Interval <= 0 || c.Obstacles.Lifetime <= 0):
		return fmt.Errorf("%w: obstacle interval and lifetime must be positive", ErrInvalid)
	case c.Features.Platform && (c.Platform.W <= 0 || c.Platform.H <= 0):
		return fmt.Errorf("%w: platform must have positive size", ErrInvalid)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	for _, kind := range []string{c.Players.P1, c.Players.P2} {
		switch kind {
		case PlayerKeys, PlayerBot, PlayerChargeBot, PlayerNone:
		default:
			return fmt.Errorf("%w: unknown player kind %q", ErrInvalid, kind)
		}
	}
	return nil
}

func (c *Config) MatchOptions() match.Options {
	opts := match.DefaultOptions(c.Features)
	opts.Tuning = c.Tuning
	opts.Bounds = c.Arena
	opts.Obstacles = c.Obstacles
	opts.Platform = c.Platform
	opts.Seed = c.Seed
	return opts
}

func (c *Config) CollectOptions() collect.Options {
	opts := collect.DefaultOptions()
	opts.Tuning = c.Tuning
	opts.Bounds = c.Arena
	opts.Seed = c.Seed
	return opts
}

func (c *Config) ScoresPath() string { return filepath.Join(c.DataDir, "scores.db") }
func (c *Config) RunsDir() string    { return filepath.Join(c.DataDir, "runs") }

// Board is the scoreboard key for this configuration.
func (c *Config) Board() string {
	if c.Preset != "" {
		return c.Preset
	}
	return c.Mode
}
