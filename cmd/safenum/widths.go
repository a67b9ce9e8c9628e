package main

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/safeint"
)

// width is the runtime view of one instantiation. The library is generic at
// compile time; the CLI selects the instantiation by name through the
// closures captured here.
type width struct {
	name     string
	bits     uint
	signed   bool
	min      string
	max      string
	eval     func(op, a, b string) ([]string, error)
	selftest func(rng *rand.Rand, n int) error
}

var widths = []width{
	forWidth[int8]("i8"),
	forWidth[int16]("i16"),
	forWidth[int32]("i32"),
	forWidth[int64]("i64"),
	forWidth[uint8]("u8"),
	forWidth[uint16]("u16"),
	forWidth[uint32]("u32"),
	forWidth[uint64]("u64"),
	forWidth[int]("isize"),
	forWidth[uint]("usize"),
}

func lookupWidth(name string) (width, error) {
	for _, w := range widths {
		if w.name == name {
			return w, nil
		}
	}
	return width{}, fmt.Errorf("unknown width %q (want one of i8..i64, u8..u64, isize, usize)", name)
}

func forWidth[T constraints.Integer](name string) width {
	return width{
		name:     name,
		bits:     safeint.BitsOf[T](),
		signed:   !safeint.MinOf[T]().IsZero(),
		min:      safeint.MinOf[T]().String(),
		max:      safeint.MaxOf[T]().String(),
		eval:     evalWidth[T],
		selftest: selftestWidth[T],
	}
}

// parseValue reuses the text codec so the CLI rejects out-of-range operands
// the same way unmarshalling does.
func parseValue[T constraints.Integer](s string) (safeint.Int[T], error) {
	var x safeint.Int[T]
	if err := x.UnmarshalText([]byte(s)); err != nil {
		return x, err
	}
	return x, nil
}

func evalWidth[T constraints.Integer](op, as, bs string) ([]string, error) {
	a, err := parseValue[T](as)
	if err != nil {
		return nil, err
	}
	b, err := parseValue[T](bs)
	if err != nil {
		return nil, err
	}

	switch op {
	case "add":
		wrapped, overflowed := a.OverflowingAdd(b)
		return policyReport(a.CheckedAdd(b), a.SaturatingAdd(b), wrapped, overflowed), nil
	case "sub":
		wrapped, overflowed := a.OverflowingSub(b)
		return policyReport(a.CheckedSub(b), a.SaturatingSub(b), wrapped, overflowed), nil
	case "mul":
		wrapped, overflowed := a.OverflowingMul(b)
		return policyReport(a.CheckedMul(b), a.SaturatingMul(b), wrapped, overflowed), nil
	case "div":
		return checkedReport(a.CheckedDiv(b)), nil
	case "rem":
		return checkedReport(a.CheckedRem(b)), nil
	default:
		return nil, fmt.Errorf("unknown op %q (want add, sub, mul, div or rem)", op)
	}
}
