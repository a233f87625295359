// Package config loads minesweeper settings from MINESWEEPER_* environment
// variables with command-line flags layered on top.
package config

import (
	"errors"
	"flag"
	"fmt"

	"minesweeper/internal/core"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Color modes
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds settings shared by the play and serve commands
type Config struct {
	Size        int    `env:"MINESWEEPER_SIZE"         envDefault:"10"          validate:"min=2,max=99"`
	Mines       int    `env:"MINESWEEPER_MINES"        envDefault:"10"          validate:"min=1"`
	Seed        uint64 `env:"MINESWEEPER_SEED"` // 0 draws a random seed per game
	StoragePath string `env:"MINESWEEPER_STORAGE_PATH"`
	Color       string `env:"MINESWEEPER_COLOR"        envDefault:"auto"        validate:"oneof=auto on off"`
	HistoryFile string `env:"MINESWEEPER_HISTORY_FILE" envDefault:".minesweeper_history"`
	APIHost     string `env:"MINESWEEPER_API_HOST"     envDefault:"localhost"   validate:"required"`
	APIPort     int    `env:"MINESWEEPER_API_PORT"     envDefault:"8080"        validate:"min=1,max=65535"`
	Dev         bool   `env:"MINESWEEPER_DEV"`
	PIDPath     string `env:"MINESWEEPER_PID"`
	PIDLock     bool   `env:"MINESWEEPER_PID_LOCK"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(configValidation, Config{})
	return v
}

func configValidation(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Size > 0 && cfg.Mines >= cfg.Size*cfg.Size {
		sl.ReportError(cfg.Mines, "Mines", "Mines", "ltboard", fmt.Sprint(cfg.Size*cfg.Size))
	}
}

// Load parses the environment, then flags from args, and validates the result
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Size, "size", cfg.Size, "Board side length")
	fs.IntVar(&cfg.Mines, "mines", cfg.Mines, "Number of mines")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Mine layout seed (0 for random)")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "Path to SQLite results ledger (disables persistence if empty)")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Colored output: auto, on or off")
	fs.StringVar(&cfg.HistoryFile, "history-file", cfg.HistoryFile, "Readline history file (empty disables history)")
	fs.StringVar(&cfg.APIHost, "api-host", cfg.APIHost, "Stats API server host")
	fs.IntVar(&cfg.APIPort, "api-port", cfg.APIPort, "Stats API server port")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "Development mode (relaxed rate limits, WAL journal)")
	fs.StringVar(&cfg.PIDPath, "pid", cfg.PIDPath, "Optional path to write PID file")
	fs.BoolVar(&cfg.PIDLock, "pid-lock", cfg.PIDLock, "Lock PID file to allow only one instance (requires -pid)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and the board shape
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %s", core.ValidationDetails(err))
	}
	if c.PIDLock && c.PIDPath == "" {
		return errors.New("invalid config: -pid-lock flag requires the -pid flag to be set")
	}
	return nil
}

// UseColor resolves the color mode against whether output is a terminal
func (c Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return isTerminal
	}
}

// APIAddr is the stats API listen address
func (c Config) APIAddr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// NewGameRequest builds the request for a game with the configured shape
func (c Config) NewGameRequest() core.NewGameRequest {
	req := core.NewGameRequest{Size: c.Size, Mines: c.Mines}
	if c.Seed != 0 {
		seed := c.Seed
		req.Seed = &seed
	}
	return req
}
