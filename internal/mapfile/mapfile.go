// Package mapfile reads the YAML tile-map format used by the tilegrid CLI.
//
// A map file lists its rows as strings, one rune per tile, plus an optional
// legend naming each rune:
//
//	name: cave
//	legend:
//	  "#": wall
//	  ".": floor
//	rows:
//	  - "#####"
//	  - "#..##"
package mapfile

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyMap indicates a map with no rows or an empty first row.
	ErrEmptyMap = errors.New("mapfile: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing rune counts.
	ErrNonRectangular = errors.New("mapfile: all rows must have the same length")
	// ErrBadLegend indicates a legend key that is not exactly one rune.
	ErrBadLegend = errors.New("mapfile: legend keys must be single characters")
)

// Map is a parsed, validated tile map.
type Map struct {
	Name   string
	Legend map[rune]string
	Width  int
	Height int
	rows   []string
}

// yamlMap is the on-disk layout.
type yamlMap struct {
	Name   string            `yaml:"name"`
	Legend map[string]string `yaml:"legend,omitempty"`
	Rows   []string          `yaml:"rows"`
}

// Load reads and parses the map at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML map and checks that it is a non-empty rectangle.
func Parse(data []byte) (*Map, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if len(ym.Rows) == 0 || ym.Rows[0] == "" {
		return nil, ErrEmptyMap
	}
	w := utf8.RuneCountInString(ym.Rows[0])
	for i, row := range ym.Rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, i, n, w)
		}
	}

	legend := make(map[rune]string, len(ym.Legend))
	for k, name := range ym.Legend {
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) {
			return nil, fmt.Errorf("%w: %q", ErrBadLegend, k)
		}
		legend[r] = name
	}

	return &Map{
		Name:   ym.Name,
		Legend: legend,
		Width:  w,
		Height: len(ym.Rows),
		rows:   ym.Rows,
	}, nil
}

// Rows returns fresh rune storage for the map, one slice per row.
func (m *Map) Rows() [][]rune {
	out := make([][]rune, len(m.rows))
	for y, row := range m.rows {
		out[y] = []rune(row)
	}
	return out
}

// Describe returns the legend name for r, or r itself when it has none.
func (m *Map) Describe(r rune) string {
	if name, ok := m.Legend[r]; ok {
		return name
	}
	return string(r)
}

// Lookup returns the rune whose legend name is name.
func (m *Map) Lookup(name string) (rune, bool) {
	for r, n := range m.Legend {
		if n == name {
			return r, true
		}
	}
	return 0, false
}
