package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFormat(t *testing.T) {
	cases := []struct {
		opts    exportOpts
		want    string
		wantErr bool
	}{
		{exportOpts{}, formatSVG, false},
		{exportOpts{output: "grid.svg"}, formatSVG, false},
		{exportOpts{output: "grid.DOT"}, formatDOT, false},
		{exportOpts{output: "grid.gv"}, formatDOT, false},
		{exportOpts{output: "grid.svg", format: "dot"}, formatDOT, false},
		{exportOpts{output: "grid.png"}, "", true},
	}
	for _, c := range cases {
		got, err := exportFormat(c.opts)
		if c.wantErr {
			assert.Error(t, err, "%+v", c.opts)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%+v", c.opts)
	}
}

func TestExport_DOTFile(t *testing.T) {
	mapPath := writeFile(t, "m.txt", "S.\n.E\n")
	cfgPath := writeFile(t, "c.toml", "grid_size = 2\ncanvas_width = 40\n")
	out := filepath.Join(t.TempDir(), "grid.dot")

	stdout, err := execute(t, "--config", cfgPath, "export", mapPath, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	dot := string(data)
	assert.True(t, strings.HasPrefix(dot, "graph G {"))
	assert.Contains(t, dot, `r0_c0 [pos="10,30!", fillcolor="#ffa500"]`)
	assert.Equal(t, 2, strings.Count(dot, " -- "), "path edges")
}

func TestExport_NoSearchToStdout(t *testing.T) {
	mapPath := writeFile(t, "m.txt", "S.\n.E\n")
	stdout, err := execute(t, append(noConfig(t), "export", mapPath, "--format", "dot", "--no-search")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "layout=neato")
	assert.NotContains(t, stdout, " -- ")
	assert.NotContains(t, stdout, "#800080\"]", "no path cells without a search")
}

func TestExport_SVG(t *testing.T) {
	mapPath := writeFile(t, "m.txt", "S.\n.E\n")
	out := filepath.Join(t.TempDir(), "grid.svg")
	_, err := execute(t, append(noConfig(t), "export", mapPath, "-o", out)...)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
