package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.GridSize)
	assert.Equal(t, 800, cfg.CanvasWidth)
	assert.Equal(t, 16, cfg.CellPixelWidth())
	assert.Equal(t, 15*time.Millisecond, cfg.FrameDelay)
	assert.False(t, cfg.FrameBorder)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestCellPixelWidth_RoundsDown(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 30
	assert.Equal(t, 26, cfg.CellPixelWidth())
	cfg.GridSize = 0
	assert.Equal(t, 0, cfg.CellPixelWidth())
}

func TestParse_OverridesAndKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(`
grid_size = 20
frame_delay = "40ms"
frame_border = true

[server]
addr = "127.0.0.1:9000"
`)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GridSize)
	assert.Equal(t, 800, cfg.CanvasWidth, "unset key keeps default")
	assert.Equal(t, 40, cfg.CellPixelWidth())
	assert.Equal(t, 40*time.Millisecond, cfg.FrameDelay)
	assert.True(t, cfg.FrameBorder)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, config.DefaultMaxGridSize, cfg.Server.MaxGridSize)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":         `grid_size = `,
		"unknown key":    `grid_sise = 10`,
		"zero grid":      `grid_size = 0`,
		"narrow canvas":  "grid_size = 100\ncanvas_width = 50",
		"negative delay": `frame_delay = "-1s"`,
		"empty addr":     "[server]\naddr = \"\"",
		"wrong type":     `grid_size = "big"`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(in)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "gridpath.toml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size = 10\n"), 0o644))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.GridSize)
	assert.Equal(t, 80, cfg.CellPixelWidth())
}
