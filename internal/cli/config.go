package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/snapdock/pkg/board"
	snaperrors "github.com/matzehuels/snapdock/pkg/errors"
	"github.com/matzehuels/snapdock/pkg/geom"
)

// Config is the snapdock configuration file (~/.config/snapdock/config.toml).
//
// Example:
//
//	tolerance = 20.0
//
//	[[block]]
//	id = "alpha"
//	x = 40.0
//	y = 40.0
//	width = 200.0
//	height = 50.0
//	color = "steelblue"
//
//	[[block]]
//	id = "beta"
//	x = 40.0
//	y = 90.0
//	width = 200.0
//	height = 50.0
//	next = ""
//
// When no [[block]] entries are present, the built-in five-block demo board
// is used.
type Config struct {
	// Tolerance is the snap tolerance in surface units.
	Tolerance float64 `toml:"tolerance"`

	// Blocks is the optional seed block set.
	Blocks []BlockConfig `toml:"block"`
}

// BlockConfig describes one seed block.
type BlockConfig struct {
	ID     string  `toml:"id"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Color  string  `toml:"color"`
	Next   string  `toml:"next"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Tolerance: geom.DefaultTolerance}
}

// DefaultConfigPath returns ~/.config/snapdock/config.toml (XDG aware).
func DefaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the TOML config at path. A missing file yields the
// defaults; a malformed file is a structured error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, snaperrors.Wrap(snaperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, snaperrors.Wrap(snaperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if cfg.Tolerance < 0 {
		return cfg, snaperrors.New(snaperrors.ErrCodeInvalidConfig, "tolerance must not be negative")
	}
	return cfg, nil
}

// NewBoard builds the configured board: the [[block]] entries when present,
// otherwise the built-in demo seed. Chain links are applied after every block
// exists so forward references work regardless of entry order.
func (cfg Config) NewBoard() (*board.Board, error) {
	if len(cfg.Blocks) == 0 {
		return board.Seed(cfg.Tolerance), nil
	}

	b := board.New(cfg.Tolerance)
	for _, bc := range cfg.Blocks {
		_, err := b.AddBlock(board.Block{
			ID:    bc.ID,
			X:     bc.X,
			Y:     bc.Y,
			W:     bc.Width,
			H:     bc.Height,
			Color: bc.Color,
		})
		if err != nil {
			return nil, snaperrors.Wrap(snaperrors.ErrCodeInvalidBlock, err, "config block %q", bc.ID)
		}
	}
	for _, bc := range cfg.Blocks {
		if bc.Next != "" {
			b.Connect(bc.ID, bc.Next)
		}
	}
	return b, nil
}

// loadBoard is the common "config flag to board" path used by the commands.
func loadBoard(configPath string) (*board.Board, Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, Config{}, err
		}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, cfg, err
	}
	b, err := cfg.NewBoard()
	if err != nil {
		return nil, cfg, err
	}
	return b, cfg, nil
}
