package main

import (
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/safenum/overflow"
	"github.com/hupe1980/safenum/safeint"
)

const selftestIterFlag = "n"

var selftestCommand = &cli.Command{
	Name:  "selftest",
	Usage: "cross-check every width's policies against exact arithmetic",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  selftestIterFlag,
			Usage: "random `iterations` per width",
			Value: 10000,
		},
	},
	Action: func(cCtx *cli.Context) error {
		n := cCtx.Int(selftestIterFlag)
		if n < 1 {
			return fmt.Errorf("iterations must be positive, got %d", n)
		}

		start := time.Now()
		g := new(errgroup.Group)
		for _, wd := range widths {
			wd := wd
			g.Go(func() error {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				if err := wd.selftest(rng, n); err != nil {
					return fmt.Errorf("%s: %w", wd.name, err)
				}
				logrus.WithField("width", wd.name).Debug("policies agree")
				return nil
			})
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			return kernelOracle(rng, n)
		})

		if err := g.Wait(); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"widths":     len(widths),
			"iterations": n,
			"kernel":     overflow.ActiveKernel(),
			"took":       time.Since(start),
		}).Info("selftest passed")
		return nil
	},
}

// selftestWidth checks that the four policies of one width tell a single
// consistent story for random operands.
func selftestWidth[T constraints.Integer](rng *rand.Rand, n int) error {
	for i := 0; i < n; i++ {
		a := safeint.New(T(rng.Uint64()))
		b := safeint.New(T(rng.Uint64()))

		if err := checkOp("add", a, b,
			a.CheckedAdd(b).Value, a.SaturatingAdd(b), a.WrappingAdd(b), a.OverflowingAdd); err != nil {
			return err
		}
		if err := checkOp("sub", a, b,
			a.CheckedSub(b).Value, a.SaturatingSub(b), a.WrappingSub(b), a.OverflowingSub); err != nil {
			return err
		}
		if err := checkOp("mul", a, b,
			a.CheckedMul(b).Value, a.SaturatingMul(b), a.WrappingMul(b), a.OverflowingMul); err != nil {
			return err
		}
	}
	return nil
}

func checkOp[T constraints.Integer](
	name string,
	a, b safeint.Int[T],
	checked func() (safeint.Int[T], bool),
	sat, wrap safeint.Int[T],
	overflowing func(safeint.Int[T]) (safeint.Int[T], bool),
) error {
	exact, ok := checked()
	over, overflowed := overflowing(b)

	if over != wrap {
		return fmt.Errorf("%s(%v, %v): overflowing result %v, wrapping result %v", name, a, b, over, wrap)
	}
	if overflowed == ok {
		return fmt.Errorf("%s(%v, %v): overflow flag %t, checked ok %t", name, a, b, overflowed, ok)
	}
	if ok && (exact != wrap || exact != sat) {
		return fmt.Errorf("%s(%v, %v): policies disagree on the exact result", name, a, b)
	}
	if !ok && sat != safeint.MinOf[T]() && sat != safeint.MaxOf[T]() {
		return fmt.Errorf("%s(%v, %v): saturating result %v is not a bound", name, a, b, sat)
	}
	return nil
}

// kernelOracle checks the active 64-bit overflow kernel against math/big.
func kernelOracle(rng *rand.Rand, n int) error {
	var (
		minI64 = new(big.Int).SetInt64(-1 << 63)
		maxI64 = new(big.Int).SetInt64(1<<63 - 1)
		maxU64 = new(big.Int).SetUint64(^uint64(0))
	)

	for i := 0; i < n; i++ {
		sa, sb := int64(rng.Uint64()), int64(rng.Uint64())
		ua, ub := rng.Uint64(), rng.Uint64()

		signedOps := []struct {
			name string
			f    func(int64, int64) (int64, bool)
			ref  func(*big.Int, *big.Int, *big.Int) *big.Int
		}{
			{"AddInt64", overflow.AddInt64, (*big.Int).Add},
			{"SubInt64", overflow.SubInt64, (*big.Int).Sub},
			{"MulInt64", overflow.MulInt64, (*big.Int).Mul},
		}
		for _, op := range signedOps {
			_, overflowed := op.f(sa, sb)
			exact := op.ref(new(big.Int), big.NewInt(sa), big.NewInt(sb))
			want := exact.Cmp(minI64) < 0 || exact.Cmp(maxI64) > 0
			if overflowed != want {
				return fmt.Errorf("kernel %s: %s(%d, %d) flag %t, oracle %t",
					overflow.ActiveKernel(), op.name, sa, sb, overflowed, want)
			}
		}

		unsignedOps := []struct {
			name string
			f    func(uint64, uint64) (uint64, bool)
			ref  func(*big.Int, *big.Int, *big.Int) *big.Int
		}{
			{"AddUint64", overflow.AddUint64, (*big.Int).Add},
			{"SubUint64", overflow.SubUint64, (*big.Int).Sub},
			{"MulUint64", overflow.MulUint64, (*big.Int).Mul},
		}
		for _, op := range unsignedOps {
			_, overflowed := op.f(ua, ub)
			exact := op.ref(new(big.Int), new(big.Int).SetUint64(ua), new(big.Int).SetUint64(ub))
			want := exact.Sign() < 0 || exact.Cmp(maxU64) > 0
			if overflowed != want {
				return fmt.Errorf("kernel %s: %s(%d, %d) flag %t, oracle %t",
					overflow.ActiveKernel(), op.name, ua, ub, overflowed, want)
			}
		}
	}
	return nil
}
