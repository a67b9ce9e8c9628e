// Command safenum inspects and exercises the checked integer widths: it
// prints per-width limits, evaluates one operation under every overflow
// policy, reports the active overflow kernel, and cross-checks the policies
// against exact arithmetic.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := &cli.App{
		Name:  "safenum",
		Usage: "inspect and exercise type-safe integer arithmetic",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"lvl"},
				Usage:   "logging `level`",
				Value:   logrus.StandardLogger().Level.String(),
				Action: func(_ *cli.Context, s string) error {
					lvl, err := logrus.ParseLevel(s)
					if err == nil {
						logrus.SetLevel(lvl)
					}
					return err
				},
			},
		},

		Commands: []*cli.Command{
			limitsCommand,
			evalCommand,
			doctorCommand,
			selftestCommand,
		},

		ExitErrHandler: func(ctx *cli.Context, err error) {
			if err != nil {
				logrus.WithError(err).Error(ctx.App.Name + " failed")
			}
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
