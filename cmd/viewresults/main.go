// Command viewresults loads the most recent archive of each known result
// kind from data/ and prints a combined report. Kinds with no archive on
// disk are skipped; partial reports are expected.
//
// Usage:
//
//	viewresults [curve-label]
//
// The curve label defaults to "37a1" and scopes the principal-part,
// gap-polynomial, and BSD-components sections; the renormalization-matrix
// section is global.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/renormlab/store"
	"github.com/katalvlaran/renormlab/view"
)

const defaultCurve = "37a1"

func main() {
	curve := defaultCurve
	if len(os.Args) > 1 {
		curve = os.Args[1]
	}

	viewer := view.New(store.New(store.DefaultDir), os.Stdout)
	if err := viewer.Render(curve); err != nil {
		fmt.Fprintf(os.Stderr, "viewresults: %v\n", err)
		os.Exit(1)
	}
}
