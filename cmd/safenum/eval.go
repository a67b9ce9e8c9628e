package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/optional"
	"github.com/hupe1980/safenum/safeint"
)

const (
	evalWidthFlag = "width"
	evalOpFlag    = "op"
)

var evalCommand = &cli.Command{
	Name:      "eval",
	Aliases:   []string{"e"},
	Usage:     "evaluate one operation under every overflow policy",
	Args:      true,
	ArgsUsage: "a b",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    evalWidthFlag,
			Aliases: []string{"w"},
			Usage:   "integer `width` (i8..i64, u8..u64, isize, usize)",
			Value:   "i64",
		},
		&cli.StringFlag{
			Name:  evalOpFlag,
			Usage: "`operation` to evaluate (add, sub, mul, div, rem)",
			Value: "add",
		},
	},
	Action: func(cCtx *cli.Context) error {
		args := cCtx.Args()
		if args.Len() != 2 {
			return fmt.Errorf("want exactly two operands, got %d", args.Len())
		}

		w, err := lookupWidth(cCtx.String(evalWidthFlag))
		if err != nil {
			return err
		}

		op := cCtx.String(evalOpFlag)
		logrus.WithFields(logrus.Fields{
			"width": w.name,
			"op":    op,
		}).Debug("evaluating")

		lines, err := w.eval(op, args.Get(0), args.Get(1))
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(cCtx.App.Writer, l)
		}
		return nil
	},
}

func policyReport[T constraints.Integer](checked optional.Option[safeint.Int[T]], sat, wrapped safeint.Int[T], overflowed bool) []string {
	lines := make([]string, 0, 4)
	if v, ok := checked.Value(); ok {
		lines = append(lines, fmt.Sprintf("checked:     %s", v))
	} else {
		lines = append(lines, "checked:     none (overflow)")
	}
	lines = append(lines,
		fmt.Sprintf("saturating:  %s", sat),
		fmt.Sprintf("wrapping:    %s", wrapped),
		fmt.Sprintf("overflowing: %s overflowed=%t", wrapped, overflowed),
	)
	return lines
}

func checkedReport[T constraints.Integer](checked optional.Option[safeint.Int[T]]) []string {
	if v, ok := checked.Value(); ok {
		return []string{fmt.Sprintf("checked:     %s", v)}
	}
	return []string{"checked:     none (undefined)"}
}
