// Package dissect recovers per-capture-group match boundaries by walking
// a compiled subre tree, coordinating DFA sub-scans at each choice point
// (spec.md §4.3, component C3). Grounded on the teacher's nfa/backtrack.go
// (bounded, single-owner retry state) and nfa/pikevm.go (slot-threaded
// capture tracking), generalized from PikeVM thread slots to the POSIX
// dissector's own Vars/retry-memory model.
package dissect

import (
	"github.com/coloregex/coloregex/colormap"
	"github.com/coloregex/coloregex/subre"
)

// Vars is the single-owner scratch state threaded through one dissection
// (spec.md §3's "Vars"): the subject string, the overall match bounds,
// per-capture spans, and the retry memory vector cdissect uses to resume
// a node's backtracking search across sibling failures. No mutex — one
// Vars belongs to exactly one concurrent exec (spec.md §5).
type Vars struct {
	// Input is the subject string being matched, already reduced to
	// colormap.Chr values by the caller.
	Input []colormap.Chr

	// Start/Stop bound the overall match attempt (REG_STARTEND-style
	// window), the only positions BOS/EOS can hold at.
	Start, Stop int

	// BosSuppressed/EosSuppressed mirror spec.md §6 eflags
	// (REG_NOTBOL/REG_NOTEOL).
	BosSuppressed, EosSuppressed bool

	// PMatch holds capture spans, index 0 is the whole match.
	PMatch []subre.Span

	// Mem is the retry memory vector, indexed by subre.Node.Retry: each
	// concat/alternation node with a nontrivial choice gets one slot
	// recording how far cdissect has already searched, so a failure deep
	// in the tree resumes the enclosing node's search instead of
	// restarting it from scratch (spec.md §4.3.6's retry memory).
	Mem []int

	// Err is the sticky, first-wins error (spec.md §7).
	Err error
}

// NewVars allocates a Vars for a subject of the given length, with nsub
// capture slots (including slot 0) and nretry memory slots (the subre
// tree's node count, since every node may in principle hold a Retry
// index).
func NewVars(input []colormap.Chr, start, stop, nsub, nretry int) *Vars {
	pmatch := make([]subre.Span, nsub)
	for i := range pmatch {
		pmatch[i] = subre.NoMatch
	}
	return &Vars{
		Input:  input,
		Start:  start,
		Stop:   stop,
		PMatch: pmatch,
		Mem:    make([]int, nretry),
	}
}

// snapshot captures the mutable parts of v (PMatch, Mem) so a failed
// attempt's partial writes can be rolled back before the next candidate
// is tried (spec.md §4.3.6's zapsubs/zapmem exist for exactly this).
type snapshot struct {
	pmatch []subre.Span
	mem    []int
}

func (v *Vars) snapshot() snapshot {
	pm := make([]subre.Span, len(v.PMatch))
	copy(pm, v.PMatch)
	mem := make([]int, len(v.Mem))
	copy(mem, v.Mem)
	return snapshot{pmatch: pm, mem: mem}
}

func (v *Vars) restore(s snapshot) {
	copy(v.PMatch, s.pmatch)
	copy(v.Mem, s.mem)
}
