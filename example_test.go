package safenum_test

import (
	"fmt"

	"github.com/hupe1980/safenum"
	"github.com/hupe1980/safenum/safeint"
)

func ExampleI8() {
	a := safenum.NewI8(100)
	b := safenum.NewI8(50)

	if sum, ok := a.CheckedAdd(b).Value(); ok {
		fmt.Println("sum:", sum)
	} else {
		fmt.Println("overflow")
	}
	// Output:
	// overflow
}

func Example_policies() {
	a := safenum.NewU8(200)
	b := safenum.NewU8(100)

	fmt.Println("checked ok:", a.CheckedAdd(b).IsSome())
	fmt.Println("saturating:", a.SaturatingAdd(b))
	fmt.Println("wrapping:", a.WrappingAdd(b))

	wrapped, overflowed := a.OverflowingAdd(b)
	fmt.Println("overflowing:", wrapped, overflowed)
	// Output:
	// checked ok: false
	// saturating: 255
	// wrapping: 44
	// overflowing: 44 true
}

func Example_conversions() {
	n := safenum.NewI32(1000)

	fmt.Println("widen:", safeint.Widen[int64](n))
	fmt.Println("narrow ok:", safeint.Narrow[int8](n).IsSome())
	fmt.Println("cast:", safeint.Cast[uint8](n))
	// Output:
	// widen: 1000
	// narrow ok: false
	// cast: 232
}

func ExampleMustU16() {
	port := safenum.MustU16(8080)
	fmt.Println(port)
	// Output:
	// 8080
}
