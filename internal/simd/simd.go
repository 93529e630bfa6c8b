// Package simd exposes a single runtime flag telling callers whether
// the host CPU has the wide compare/shuffle lanes that make a
// branchless bit-packing sequence cheaper than an if-chain. No vector
// intrinsics are invoked here — both code paths a caller selects with
// Wide are ordinary Go with identical semantics; Wide only picks
// which shape of code the branch predictor and scheduler see.
package simd

import "golang.org/x/sys/cpu"

// Wide is true on CPUs where a vectorized compare/shuffle compute
// would pay for itself: x86 with AVX2, or ARM64 with NEON (ASIMD).
var Wide = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
