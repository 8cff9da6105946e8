package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/grid"
)

func (a *app) bridgeCmd() *cobra.Command {
	var (
		from, to      string
		free, blocked string
	)
	cmd := &cobra.Command{
		Use:   "bridge <map>",
		Short: "Find the cheapest conversion joining two regions",
		Long: `Find the fewest cells to convert so the region around --from
touches the region around --to. Tiles listed in --free cost nothing to cross,
tiles in --blocked are never crossed, every other tile costs one conversion.
--free defaults to the tiles of the two start cells.

Examples:
  tilegrid bridge maps/islands.yaml --from 1,0 --to 4,0
  tilegrid bridge maps/cave.yaml --from 1,1 --to 7,3 --blocked '#'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parsePoint(from)
			if err != nil {
				return err
			}
			dst, err := parsePoint(to)
			if err != nil {
				return err
			}
			_, view, err := a.openMap(args[0])
			if err != nil {
				return err
			}

			same := func(r rune) rune { return r }
			srcRegion := grid.Region[rune](view, src, same)
			dstRegion := grid.Region[rune](view, dst, same)

			if !cmd.Flags().Changed("free") {
				a1, _ := view.Get(src)
				b1, _ := view.Get(dst)
				free = string([]rune{a1, b1})
			}
			cost := func(r rune) grid.Cost {
				switch {
				case strings.ContainsRune(blocked, r):
					return grid.Blocked
				case strings.ContainsRune(free, r):
					return grid.Free
				}
				return grid.Convert
			}

			path, n, err := grid.Bridge[rune](view, cellsOf(srcRegion.Items()), cellsOf(dstRegion.Items()), cost)
			if errors.Is(err, grid.ErrEmptyRegion) {
				return fmt.Errorf("bridge endpoints must lie inside the map: %w", err)
			}
			if err != nil {
				return err
			}
			a.logger.Info("bridge found", "map", args[0], "cost", n, "length", len(path))

			onPath := make(map[geom.Point]struct{}, len(path))
			steps := make([]string, len(path))
			for i, p := range path {
				onPath[p] = struct{}{}
				steps[i] = p.String()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "convert %d cells along %d steps:\n%s\n\n", n, len(path), strings.Join(steps, " "))
			fmt.Fprint(out, a.renderer().render(view, func(p geom.Point) (int, bool) {
				_, ok := onPath[p]
				return 0, ok
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "A cell of the first region as x,y")
	cmd.Flags().StringVar(&to, "to", "", "A cell of the second region as x,y")
	cmd.Flags().StringVar(&free, "free", "", "Tiles crossed at no cost")
	cmd.Flags().StringVar(&blocked, "blocked", "", "Tiles that may not be crossed")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func cellsOf(cells []grid.Cell[rune]) []geom.Point {
	out := make([]geom.Point, len(cells))
	for i, c := range cells {
		out[i] = c.Point()
	}
	return out
}
