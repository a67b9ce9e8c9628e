package safenum

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/safeint"
)

// Sum64 hashes a safe integer by delegating to xxhash over the 8-byte
// little-endian encoding of its underlying value, sign-extended to 64 bits.
//
// Every width hashes through the same encoding, so ISize and USize hash
// identically to their fixed-width equivalents on the host platform. Values
// are also plain comparable structs and work as map keys directly; Sum64
// exists for hand-rolled tables and partitioning schemes that want a
// well-mixed hash.
func Sum64[T constraints.Integer](x safeint.Int[T]) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(x.Get()))
	return xxhash.Sum64(buf[:])
}
