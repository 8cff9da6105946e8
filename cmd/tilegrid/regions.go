package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/geom"
	"github.com/katalvlaran/tilegrid/grid"
)

func (a *app) regionsCmd() *cobra.Command {
	var minSize int
	cmd := &cobra.Command{
		Use:   "regions <map>",
		Short: "Partition a map into 4-connected regions",
		Long: `Split every cell of the map into maximal 4-connected regions of
identical tiles, list them by first cell and draw them.

Examples:
  tilegrid regions maps/cave.yaml
  tilegrid regions maps/cave.yaml --min 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, view, err := a.openMap(args[0])
			if err != nil {
				return err
			}

			comps := grid.Regions[rune](view, func(r rune) rune { return r })
			a.logger.Info("regions computed", "map", args[0], "regions", len(comps))

			class := make(map[geom.Point]int)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d regions in %s (%d×%d)\n", len(comps), m.Name, view.Width(), view.Height())
			shown := 0
			for _, comp := range comps {
				if len(comp) < minSize {
					continue
				}
				for _, c := range comp {
					class[c.Point()] = shown
				}
				first := comp[0]
				fmt.Fprintf(out, "  #%-3d %-10s at %v: %d cells\n", shown, m.Describe(first.Tile), first.Point(), len(comp))
				shown++
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, a.renderer().render(view, func(p geom.Point) (int, bool) {
				c, ok := class[p]
				return c, ok
			}))
			return nil
		},
	}
	cmd.Flags().IntVar(&minSize, "min", 1, "Only list regions with at least this many cells")
	return cmd
}
