package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/compass"
)

func (a *app) neighborsCmd() *cobra.Command {
	var (
		at    string
		group string
		dirs  []string
	)
	cmd := &cobra.Command{
		Use:   "neighbors <map>",
		Short: "List the neighbors of one cell",
		Long: `Look up the cells around a position, either by direction group
(cardinal, diagonal, all) or by explicit directions. Cells outside the map
are listed as outside so the output lines up with the directions asked for.

Examples:
  tilegrid neighbors maps/cave.yaml --at 0,0
  tilegrid neighbors maps/cave.yaml --at 2,1 --group all
  tilegrid neighbors maps/cave.yaml --at 2,1 --dir n --dir sw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(at)
			if err != nil {
				return err
			}

			var directions []compass.Direction
			if len(dirs) > 0 {
				for _, s := range dirs {
					d, err := compass.ParseDirection(s)
					if err != nil {
						return err
					}
					directions = append(directions, d)
				}
			} else {
				g := a.settings.NeighborGroup()
				if group != "" {
					if g, err = compass.ParseGroup(group); err != nil {
						return err
					}
				}
				directions = g.Directions()
			}

			m, view, err := a.openMap(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, n := range view.CompassNeighbors(p, directions) {
				if !n.OK {
					fmt.Fprintf(out, "%-9s %-8v outside\n", directions[i], n.Position)
					continue
				}
				fmt.Fprintf(out, "%-9s %-8v %s\n", directions[i], n.Position, m.Describe(n.Tile))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Cell as x,y")
	cmd.Flags().StringVar(&group, "group", "", "Direction group: cardinal, diagonal or all (default from settings)")
	cmd.Flags().StringSliceVar(&dirs, "dir", nil, "Explicit directions, e.g. n,ne,sw (overrides --group)")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
