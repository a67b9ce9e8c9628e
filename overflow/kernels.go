package overflow

import (
	"os"
	"strings"
)

// Kernel identifies one of the interchangeable implementation sets.
type Kernel uint8

const (
	// KernelBits uses math/bits intrinsics (add-carry, sub-borrow,
	// multiply-high).
	KernelBits Kernel = iota
	// KernelPortable uses arithmetic-identity fallbacks only.
	KernelPortable
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case KernelBits:
		return "bits"
	case KernelPortable:
		return "portable"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bits":
		return KernelBits, true
	case "portable":
		return KernelPortable, true
	default:
		return KernelBits, false
	}
}

// Kernel function variables, set once at init. The bits implementations are
// the default; installKernel swaps in the portable set when requested.
var (
	kernelAddInt64  = addInt64Bits
	kernelSubInt64  = subInt64Bits
	kernelMulInt64  = mulInt64Bits
	kernelAddUint64 = addUint64Bits
	kernelSubUint64 = subUint64Bits
	kernelMulUint64 = mulUint64Bits
)

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	activeKernel Kernel
	hasOverride  bool
)

func init() {
	// Check for environment override
	if override := os.Getenv("SAFENUM_OVERFLOW"); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			installKernel(k)
			return
		}
		// Invalid override - fall through to the default
	}
	installKernel(KernelBits)
}

func installKernel(k Kernel) {
	activeKernel = k
	switch k {
	case KernelPortable:
		kernelAddInt64 = addInt64Portable
		kernelSubInt64 = subInt64Portable
		kernelMulInt64 = mulInt64Portable
		kernelAddUint64 = addUint64Portable
		kernelSubUint64 = subUint64Portable
		kernelMulUint64 = mulUint64Portable
	default:
		kernelAddInt64 = addInt64Bits
		kernelSubInt64 = subInt64Bits
		kernelMulInt64 = mulInt64Bits
		kernelAddUint64 = addUint64Bits
		kernelSubUint64 = subUint64Bits
		kernelMulUint64 = mulUint64Bits
	}
}

// ActiveKernel returns the kernel set selected at init.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden reports whether SAFENUM_OVERFLOW forced the selection.
func IsOverridden() bool {
	return hasOverride
}
