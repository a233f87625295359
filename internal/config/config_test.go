package config

import (
	"flag"
	"strings"
	"testing"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	return Load(fs, args)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 10 || cfg.Mines != 10 {
		t.Errorf("default board %dx%d with %d mines, want 10x10 with 10", cfg.Size, cfg.Size, cfg.Mines)
	}
	if cfg.Color != ColorAuto || cfg.APIAddr() != "localhost:8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.NewGameRequest().Seed != nil {
		t.Error("zero seed should leave request seed unset")
	}
}

func TestEnvThenFlags(t *testing.T) {
	t.Setenv("MINESWEEPER_SIZE", "6")
	t.Setenv("MINESWEEPER_MINES", "4")
	t.Setenv("MINESWEEPER_SEED", "77")
	t.Setenv("MINESWEEPER_COLOR", "off")

	cfg, err := load(t, "-mines", "5", "-api-port", "9000")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 6 {
		t.Errorf("Size = %d, want 6 from env", cfg.Size)
	}
	if cfg.Mines != 5 {
		t.Errorf("Mines = %d, want 5 from flag", cfg.Mines)
	}
	if cfg.APIPort != 9000 {
		t.Errorf("APIPort = %d, want 9000", cfg.APIPort)
	}

	req := cfg.NewGameRequest()
	if req.Seed == nil || *req.Seed != 77 {
		t.Errorf("request seed = %v, want 77", req.Seed)
	}
	if cfg.UseColor(true) {
		t.Error("color off should ignore terminal")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"mines fill board", []string{"-size", "3", "-mines", "9"}, "Mines must be less than 9"},
		{"size too small", []string{"-size", "1", "-mines", "1"}, "Size must be at least 2"},
		{"bad color", []string{"-color", "rainbow"}, "Color must be one of [auto on off]"},
		{"lock without pid", []string{"-pid-lock"}, "-pid-lock flag requires the -pid flag"},
		{"unknown flag", []string{"-bogus"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestUseColorAuto(t *testing.T) {
	cfg := Config{Color: ColorAuto}
	if !cfg.UseColor(true) || cfg.UseColor(false) {
		t.Error("auto color should follow terminal detection")
	}
	if !(Config{Color: ColorOn}).UseColor(false) {
		t.Error("color on should force color")
	}
}
