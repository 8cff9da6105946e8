package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/grid"
)

// renderer draws a map with some cells tagged by a small integer class.
// With colour, tagged cells keep their rune and take the class's palette
// colour. Without it, tagged cells are replaced by a class label.
type renderer struct {
	color  bool
	styles []lipgloss.Style
}

const plainLabels = "0123456789abcdefghijklmnopqrstuvwxyz"

func newRenderer(color bool, palette []string) *renderer {
	r := &renderer{color: color && len(palette) > 0}
	for _, c := range palette {
		r.styles = append(r.styles, lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true))
	}
	return r
}

// render writes the grid row by row. tag reports the class of a cell, or
// false to draw it untouched.
func (r *renderer) render(g grid.Capability[rune], tag func(p geom.Point) (int, bool)) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := geom.Pt(x, y)
			tile, _ := g.Get(p)
			class, ok := tag(p)
			switch {
			case !ok:
				b.WriteRune(tile)
			case r.color:
				b.WriteString(r.styles[class%len(r.styles)].Render(string(tile)))
			default:
				b.WriteByte(plainLabels[class%len(plainLabels)])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// parsePoint reads "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geom.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}
