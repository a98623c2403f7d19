package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallWithGap = `
S....
.....
##.##
.....
....E
`

func noConfig(t *testing.T) []string {
	return []string{"--config", writeFile(t, "empty.toml", "")}
}

func TestSolve_Plain(t *testing.T) {
	path := writeFile(t, "m.txt", wallWithGap)
	out, err := execute(t, append(noConfig(t), "solve", "--plain", "--verify", path)...)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, byte('*'), lines[2][2*2], "gap cell is on the path")
	assert.Contains(t, out, "path found")
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "breadth-first search agrees")
}

func TestSolve_JSON(t *testing.T) {
	path := writeFile(t, "m.txt", wallWithGap)
	out, err := execute(t, append(noConfig(t), "solve", "--json", "--verify", path)...)
	require.NoError(t, err)

	var r solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Found)
	assert.Equal(t, 8, r.Cost)
	assert.Len(t, r.Path, 9)
	assert.Contains(t, r.Path, [2]int{2, 2})
	require.NotNil(t, r.Verified)
	assert.True(t, *r.Verified)
	assert.Empty(t, r.Bridge)
	assert.Equal(t, byte('S'), r.Grid[0])
}

func TestSolve_NoPathSuggestsBridge(t *testing.T) {
	path := writeFile(t, "m.txt", "S.#..\n..#..\n#####\n.....\n....E\n")
	out, err := execute(t, append(noConfig(t), "solve", "--json", "--verify", path)...)
	require.NoError(t, err)

	var r solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.False(t, r.Found)
	assert.Empty(t, r.Path)
	require.NotNil(t, r.Verified)
	assert.True(t, *r.Verified)
	assert.Len(t, r.Bridge, 1, "one barrier separates the halves")
}

func TestSolve_Stdin(t *testing.T) {
	c := New(&strings.Builder{}, LogInfo)
	root := c.RootCommand()
	var out strings.Builder
	root.SetOut(&out)
	root.SetIn(strings.NewReader("S.\n.E\n"))
	root.SetArgs(append(noConfig(t), "solve", "--plain", "-"))
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "SSoo\n") || strings.HasPrefix(out.String(), "SSxx\n"),
		"got %q", out.String())
}

func TestSolve_BadMaps(t *testing.T) {
	cases := map[string]string{
		"no endpoints": "...\n...\n...\n",
		"non-square":   "S..\n..E\n",
		"bad symbol":   "S?\n.E\n",
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "m.txt", m)
			_, err := execute(t, append(noConfig(t), "solve", path)...)
			assert.Error(t, err)
		})
	}

	_, err := execute(t, append(noConfig(t), "solve", "/does/not/exist.txt")...)
	assert.Error(t, err)
}
