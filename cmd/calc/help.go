package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rogpeppe/calc/calc"
)

// printOps prints the operators from lowest
// to highest precedence.
func printOps(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "op\tname\tprec\tmeaning\n")
	for _, op := range calc.Operators() {
		fmt.Fprintf(tw, "%v\t%s\t%d\t%s\n", op, op.Name(), op.Precedence(), op.Help())
	}
	tw.Flush()
}
