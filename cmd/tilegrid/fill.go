package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/grid"
)

func (a *app) fillCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "fill <map>",
		Short: "Flood fill the region around one cell",
		Long: `Extract the 4-connected region of identical tiles that contains
the given cell and draw it.

Examples:
  tilegrid fill maps/cave.yaml --at 1,1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(at)
			if err != nil {
				return err
			}
			m, view, err := a.openMap(args[0])
			if err != nil {
				return err
			}
			if !view.IsInside(start) {
				return fmt.Errorf("start %v is outside the %d×%d map", start, view.Width(), view.Height())
			}

			region := grid.Region[rune](view, start, func(r rune) rune { return r })
			tile, _ := view.Get(start)
			a.logger.Info("region filled", "map", args[0], "start", start.String(), "cells", region.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "region at %v (%s): %d cells\n\n", start, m.Describe(tile), region.Len())
			fmt.Fprint(out, a.renderer().render(view, func(p geom.Point) (int, bool) {
				return 0, region.Has(grid.Cell[rune]{X: p.X, Y: p.Y})
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Start cell as x,y")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
