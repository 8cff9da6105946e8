// tilegrid inspects tile maps: region flood fills, neighbor queries and
// minimal bridges between regions.
//
// Usage:
//
//	tilegrid regions <map>                      - Partition a map into regions
//	tilegrid fill <map> --at x,y                - Flood fill the region around a cell
//	tilegrid neighbors <map> --at x,y           - List neighbors of a cell
//	tilegrid bridge <map> --from x,y --to x,y   - Cheapest conversion joining two regions
//
// Global flags:
//
//	--config <path>     - Settings file (default search: ~/.tilegrid/config.yaml, ./configs/tilegrid.yaml)
//	--log-level <lvl>   - Override the configured log level
//	--no-color          - Disable coloured output
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
