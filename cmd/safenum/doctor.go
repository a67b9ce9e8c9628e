package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
	"golang.org/x/sys/cpu"

	"github.com/hupe1980/safenum"
	"github.com/hupe1980/safenum/overflow"
)

var doctorCommand = &cli.Command{
	Name:  "doctor",
	Usage: "report the platform and the active overflow kernel",
	Action: func(cCtx *cli.Context) error {
		out := cCtx.App.Writer

		fmt.Fprintf(out, "go:           %s\n", runtime.Version())
		fmt.Fprintf(out, "platform:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "pointer bits: %d\n", safenum.PointerBits)
		fmt.Fprintf(out, "kernel:       %s\n", overflow.ActiveKernel())
		fmt.Fprintf(out, "overridden:   %t\n", overflow.IsOverridden())

		switch runtime.GOARCH {
		case "amd64", "386":
			fmt.Fprintf(out, "cpu:          popcnt=%t bmi2=%t avx2=%t\n",
				cpu.X86.HasPOPCNT, cpu.X86.HasBMI2, cpu.X86.HasAVX2)
		case "arm64":
			fmt.Fprintf(out, "cpu:          asimd=%t atomics=%t\n",
				cpu.ARM64.HasASIMD, cpu.ARM64.HasATOMICS)
		}
		return nil
	},
}
