// Package exec ties the colormap (C1), lazy DFA (C2), and dissector (C3)
// together behind the single entry point spec.md §6 describes: compiled
// regex in, capture spans out. Grounded on the teacher's regex.go
// top-level API shape (doc-comment density, a small status enum in place
// of raw errors where the caller needs to distinguish "no match" from
// "match") and on meta/engine.go's orchestration of "locate a candidate
// window, then decide whether to extract submatches" — the same two-step
// shape spec.md §2's data-flow paragraph describes for Exec itself.
package exec

import "fmt"

// Status is the result of an Exec call (spec.md §6).
type Status uint8

const (
	// OK means a match was found (and, if requested, dissected).
	OK Status = iota
	// NoMatch means the pattern does not match the input at all.
	NoMatch
	// InvalidArg means re's magic did not identify it as a compiled
	// regex handle.
	InvalidArg
	// Mixed means re's code-point size does not match this package's
	// instantiation (colormap.CHRBITS).
	Mixed
	// OutOfMemory means an internal allocation limit (colormap node/color
	// arena, DFA state-set cache) was exhausted mid-match.
	OutOfMemory
	// Assert means an internal consistency check failed — per spec.md §7,
	// "should never surface in a released build".
	Assert
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case NoMatch:
		return "NoMatch"
	case InvalidArg:
		return "InvalidArg"
	case Mixed:
		return "Mixed"
	case OutOfMemory:
		return "OutOfMemory"
	case Assert:
		return "Assert"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}
