// Package config loads gridpath's TOML configuration.
//
// A missing file is not an error: Load returns Default. Keys absent from
// the file keep their default values, and unknown keys are rejected so a
// typo does not silently fall back to a default.
//
// Example file:
//
//	grid_size = 50
//	canvas_width = 800
//	frame_delay = "15ms"
//	frame_border = false
//
//	[server]
//	addr = ":8080"
//	max_grid_size = 500
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults, matching an 800 px window split into 50 rows.
const (
	DefaultGridSize    = 50
	DefaultCanvasWidth = 800
	DefaultFrameDelay  = 15 * time.Millisecond
	DefaultAddr        = ":8080"
	DefaultMaxGridSize = 500
)

// Config is the complete harness configuration.
type Config struct {
	// GridSize is the number of cells per side.
	GridSize int `toml:"grid_size"`

	// CanvasWidth is the side of the drawing surface in pixels.
	CanvasWidth int `toml:"canvas_width"`

	// FrameDelay is the pause between two search steps in play mode.
	FrameDelay time.Duration `toml:"frame_delay"`

	// FrameBorder forces the outer ring of cells to Barrier on a new grid.
	FrameBorder bool `toml:"frame_border"`

	Server Server `toml:"server"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`

	// MaxGridSize bounds the side of a grid accepted in a request.
	MaxGridSize int `toml:"max_grid_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GridSize:    DefaultGridSize,
		CanvasWidth: DefaultCanvasWidth,
		FrameDelay:  DefaultFrameDelay,
		Server: Server{
			Addr:        DefaultAddr,
			MaxGridSize: DefaultMaxGridSize,
		},
	}
}

// CellPixelWidth is the side of one cell on the canvas, rounded down.
func (c Config) CellPixelWidth() int {
	if c.GridSize <= 0 {
		return 0
	}
	return c.CanvasWidth / c.GridSize
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 1:
		return fmt.Errorf("%w: grid_size must be at least 1, got %d", ErrInvalidConfig, c.GridSize)
	case c.CanvasWidth < c.GridSize:
		return fmt.Errorf("%w: canvas_width %d is narrower than grid_size %d", ErrInvalidConfig, c.CanvasWidth, c.GridSize)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame_delay must not be negative, got %s", ErrInvalidConfig, c.FrameDelay)
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	case c.Server.MaxGridSize < 1:
		return fmt.Errorf("%w: server.max_grid_size must be at least 1, got %d", ErrInvalidConfig, c.Server.MaxGridSize)
	}
	return nil
}

// Load reads the file at path on top of Default and validates the result.
// An empty path or a file that does not exist yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of Default and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
