package safeint

import (
	"fmt"
	"strconv"
)

// All widths render as decimal integers. The 8-bit widths share the rule:
// they are numbers, never characters.

// String returns the decimal representation of x.
func (x Int[T]) String() string {
	if signed[T]() {
		return strconv.FormatInt(int64(x.v), 10)
	}
	return strconv.FormatUint(uint64(x.v), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (x Int[T]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be a
// decimal integer within [MinOf, MaxOf].
func (x *Int[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if signed[T]() {
		v, err := strconv.ParseInt(s, 10, int(bitsOf[T]()))
		if err != nil {
			return fmt.Errorf("parse %d-bit integer %q: %w", bitsOf[T](), s, err)
		}
		x.v = T(v)
		return nil
	}
	v, err := strconv.ParseUint(s, 10, int(bitsOf[T]()))
	if err != nil {
		return fmt.Errorf("parse %d-bit integer %q: %w", bitsOf[T](), s, err)
	}
	x.v = T(v)
	return nil
}

// MarshalJSON implements json.Marshaler; the value is a JSON number.
func (x Int[T]) MarshalJSON() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler with the same range checking as
// UnmarshalText.
func (x *Int[T]) UnmarshalJSON(data []byte) error {
	return x.UnmarshalText(data)
}
