package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

var limitsCommand = &cli.Command{
	Name:    "limits",
	Aliases: []string{"l"},
	Usage:   "print MIN, MAX and BITS for every width",
	Action: func(cCtx *cli.Context) error {
		w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WIDTH\tBITS\tMIN\tMAX")
		for _, wd := range widths {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", wd.name, wd.bits, wd.min, wd.max)
		}
		return w.Flush()
	},
}
