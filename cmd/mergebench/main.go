// SPDX-License-Identifier: MIT

// Command mergebench times heap-based k-way merging over a sweep of input
// scales and compares the measurements with a fitted n·log₂n curve.
//
// Usage:
//
//	mergebench                           # size-only sweep, 1 000 … 50 000 lists
//	mergebench --preset sequences        # full element-level merge
//	mergebench --n 2000,4000,8000 --seed 7 --fit midpoint --csv out.csv
//	mergebench --config sweep.yaml
//	mergebench presets
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
