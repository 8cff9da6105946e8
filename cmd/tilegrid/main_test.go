package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/geom"
)

const caveMap = `
name: cave
legend:
  "#": wall
  ".": floor
rows:
  - "#####"
  - "#..##"
  - "#.#.#"
  - "#####"
`

const islandsMap = `
name: islands
legend:
  "0": water
rows:
  - "01102"
  - "11022"
  - "30220"
`

// run executes the CLI with plain output and returns stdout.
func run(t *testing.T, mapBody string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.yaml")
	require.NoError(t, os.WriteFile(mapPath, []byte(mapBody), 0o600))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0o600))

	full := []string{args[0], mapPath, "--config", cfgPath, "--no-color"}
	full = append(full, args[1:]...)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(full)
	err := root.Execute()
	return out.String(), err
}

func TestRegionsCommand(t *testing.T) {
	out, err := run(t, caveMap, "regions")
	require.NoError(t, err)

	assert.Contains(t, out, "3 regions in cave (5×4)")
	assert.Contains(t, out, "wall")
	assert.Contains(t, out, "at (1,1): 3 cells")
	assert.Contains(t, out, "at (3,2): 1 cells")
	assert.Contains(t, out, "00000\n01100\n01020\n00000\n", "plain render labels each region")
}

func TestRegionsCommand_MinSize(t *testing.T) {
	out, err := run(t, caveMap, "regions", "--min", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "at (3,2)")
	assert.Contains(t, out, "00000\n01100\n010.0\n00000\n", "regions below --min are drawn untouched")
}

func TestFillCommand(t *testing.T) {
	out, err := run(t, caveMap, "fill", "--at", "1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "region at (1,1) (floor): 3 cells")
	assert.Contains(t, out, "#####\n#00##\n#0#.#\n#####\n")

	_, err = run(t, caveMap, "fill", "--at", "9,9")
	assert.ErrorContains(t, err, "outside")

	_, err = run(t, caveMap, "fill", "--at", "nope")
	assert.Error(t, err)
}

func TestNeighborsCommand(t *testing.T) {
	out, err := run(t, caveMap, "neighbors", "--at", "0,0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "north"))
	assert.Contains(t, lines[0], "outside")
	assert.Contains(t, lines[1], "wall")

	out, err = run(t, caveMap, "neighbors", "--at", "2,1", "--group", "all")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 8)

	out, err = run(t, caveMap, "neighbors", "--at", "2,1", "--dir", "w,s")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "floor")
	assert.Contains(t, lines[1], "wall")

	_, err = run(t, caveMap, "neighbors", "--at", "0,0", "--dir", "up")
	assert.Error(t, err)
}

func TestBridgeCommand(t *testing.T) {
	out, err := run(t, islandsMap, "bridge", "--from", "1,0", "--to", "4,0")
	require.NoError(t, err)
	assert.Contains(t, out, "convert 1 cells along 3 steps")

	_, err = run(t, islandsMap, "bridge", "--from", "1,0", "--to", "4,0", "--blocked", "0")
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 3, -2 ")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(3, -2), p)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderer_Color(t *testing.T) {
	r := newRenderer(true, []string{"9"})
	assert.True(t, r.color)
	assert.False(t, newRenderer(true, nil).color, "colour needs a palette")
}
