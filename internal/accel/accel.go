// Package accel provides the literal-prefix acceleration the exec
// package's top-level search uses to skip over certainly-non-matching
// input instead of stepping the lazy DFA one color at a time
// (SPEC_FULL.md §4.2 expansion). Grounded on the teacher's simd.Memchr
// dispatch (simd/memchr_amd64.go's cpu.X86.HasAVX2 gate in front of
// simd/memchr_generic_impl.go's SWAR fallback): this port carries no
// assembly kernels, so there is a single pure-Go path, the 8-byte SWAR
// scan; the AVX2 capability is probed (hasAVX2) but selects nothing.
package accel

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"

	"github.com/coloregex/coloregex/colormap"
)

// hasAVX2 gates nothing functional in this port (no assembly kernel
// exists here yet) but is probed and kept exactly where the teacher's
// simd.Memchr probes it — a future AVX2 kernel would key off it the same
// way.
var hasAVX2 = cpu.X86.HasAVX2

// IndexByte returns the index of the first occurrence of needle in
// haystack, or -1. Equivalent to bytes.IndexByte; implemented directly so
// the SWAR technique (and the capability probe above it) is visible and
// owned by this package rather than borrowed from the stdlib.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// SWAR: broadcast needle to every byte of a uint64, then use the
	// zero-byte detection formula against each 8-byte chunk.
	mask := uint64(needle) * 0x0101010101010101
	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		hasZero := (xor - lo8) &^ xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}
	for i < n {
		if haystack[i] == needle {
			return i
		}
		i++
	}
	return -1
}

// IndexChr returns the position, at or after from, of the next element
// of s equal to want, or -1. While the run starting at from stays within
// the low byte (the common case for ASCII literals, per SPEC_FULL.md's
// instantiation of Chr as uint16), it is scanned with the SWAR-accelerated
// IndexByte; the moment a wide value appears, the scan falls back to a
// scalar loop for the remainder. Correctness never depends on how much of
// the run took the fast path — only the exec package's search speed does
// (spec.md §8 property 9).
func IndexChr(s []colormap.Chr, from int, want colormap.Chr) int {
	if from < 0 || from >= len(s) {
		return -1
	}
	rest := s[from:]

	if want > 0xFF {
		return indexChrScalar(rest, from, want)
	}

	buf := make([]byte, 0, len(rest))
	i := 0
	for ; i < len(rest) && rest[i] <= 0xFF; i++ {
		buf = append(buf, byte(rest[i]))
	}
	if idx := IndexByte(buf, byte(want)); idx >= 0 {
		return from + idx
	}
	if i == len(rest) {
		return -1
	}
	if p := indexChrScalar(rest[i:], from+i, want); p >= 0 {
		return p
	}
	return -1
}

func indexChrScalar(s []colormap.Chr, base int, want colormap.Chr) int {
	for i, c := range s {
		if c == want {
			return base + i
		}
	}
	return -1
}
