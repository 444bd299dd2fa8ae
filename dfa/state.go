package dfa

import "github.com/coloregex/coloregex/colormap"

// Flags tags a StateSet with properties the cache and the scan loop need
// to consult cheaply (spec.md §3's sset "flags" field).
type Flags uint8

const (
	// Starter marks the DFA's start state(s): never evicted.
	Starter Flags = 1 << iota
	// PostState marks a set containing the cnfa's accepting state.
	PostState
	// Locked marks a set pinned for the duration of the caller's current
	// scan (e.g. the state a cdissect retry is paused on): never evicted
	// until explicitly unlocked.
	Locked
	// NoProgress marks a set reached purely by epsilon/assertion closure
	// without consuming an input symbol — true of every start state by
	// construction (DFA.Start runs the closure against Pre without a
	// preceding color step). Carried as a cheap diagnostic distinguishing
	// "stuck at a lookaround" sets from ordinary ones; spec.md §3.
	NoProgress
)

// inArc is one link in a StateSet's "ins" chain: records that `src`,
// fanning out on `color`, reaches this set. Eviction walks the victim's
// ins chain to null out every src.outs[color] that pointed here, per
// spec.md §4.2.3 ("pickss... must walk ins chains to null out any
// outs[] pointer that referred to it").
type inArc struct {
	src   *StateSet
	color colormap.Color
	next  *inArc
}

// StateSet is one node of the lazily-constructed DFA: a subset of cnfa
// states, cached under its bitvector and hash, with memoized transitions
// (spec.md §3's sset / §4.2 "Lazy subset construction").
type StateSet struct {
	States BitSet
	Hash   uint64
	Flags  Flags

	// Ins is the head of the chain of inArcs whose destination is this
	// set (who points at me).
	Ins *inArc

	// LastSeen is the input position most recently associated with this
	// set, used by pickss as an LRU proxy (spec.md §4.2.3).
	LastSeen int

	// Outs[k] is the memoized destination of the out-transition on color
	// k: nil means "not yet computed", deadSS means "known empty/dead".
	Outs []*StateSet

	// InChain[k] is this set's own inArc record for its k-th out-arc,
	// letting that specific link be found without walking Outs[k].Ins.
	InChain []*inArc
}

// deadSS is the sentinel for "this transition leads nowhere" (spec.md
// §4.2.2: "if the resulting subset is empty, the result is a 'dead'
// transition"), distinct from nil ("not yet computed").
var deadSS = &StateSet{}

func newStateSet(bs BitSet, hash uint64, flags Flags, pos, ncolors int) *StateSet {
	return &StateSet{
		States:   bs,
		Hash:     hash,
		Flags:    flags,
		LastSeen: pos,
		Outs:     make([]*StateSet, ncolors),
		InChain:  make([]*inArc, ncolors),
	}
}
