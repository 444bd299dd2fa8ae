package exec

import (
	"github.com/coloregex/coloregex/cnfa"
	"github.com/coloregex/coloregex/colormap"
	"github.com/coloregex/coloregex/subre"
)

// Cflags mirrors the subset of the compiled form's flags that select
// Exec's dissection mode (spec.md §6's "guts.cflags, guts.usedshorter"
// dependency; usedshorter gets its own bool field below since it is
// singled out by name in spec.md, while the rest live in this bit set the
// way the source's cflags word does).
type Cflags uint32

const (
	// NoSub mirrors REG_NOSUB: when set, Exec treats nmatch as 0 — only
	// the overall match/no-match result is meaningful, no captures are
	// computed.
	NoSub Cflags = 1 << iota
	// UsedBackref mirrors REG_UBACKREF: the compiled pattern contains at
	// least one back-reference, so dissection must use the complicated
	// (CDissect) path even if no SHORTER node is present.
	UsedBackref
)

// CompareFunc is the code-point comparator a compiled regex supplies for
// case/locale-aware back-reference matching (spec.md §6's
// "guts.compare(a, b, len) -> int"), with the three-way signature a real
// compiler would hand in. Exec does not pass it on to the dissector:
// back-references are always matched by exact code-point equality
// (dissect.cdissectBackref), whether or not a CompareFunc is set.
type CompareFunc func(a, b []colormap.Chr) int

// Guts is the compiled-regex payload spec.md §6 names: everything Exec
// needs from the (external, out-of-scope) compiler. This package supplies
// NewGuts as the small test/hand-building helper spec.md §6 calls for
// ("this repo supplies a small exec.NewGuts test helper that assembles
// one from a hand-built cnfa/subre pair").
type Guts struct {
	// Cmap is the sealed colormap (Fillcm already called) every DFA in
	// this match is colored by.
	Cmap *colormap.Colormap
	// Tree is the root subre node; Tree.CNFA is the whole pattern's own
	// compact NFA, used both to confirm a window and (when the tree is
	// uncomplicated) to dissect it directly.
	Tree *subre.Node
	// Search is an optional precomputed search-helper cnfa (spec.md §6):
	// a cheaper automaton used to reject candidate start positions before
	// Tree's own (potentially more expensive) DFA is run there. Nil means
	// "no helper available" — Exec falls back to trying Tree directly at
	// every position.
	Search *cnfa.CNFA
	// Compare is the compiler-supplied back-reference comparator. Exec
	// does not consult it; back-references use exact code-point equality.
	Compare CompareFunc
	// Info carries compiler-defined metadata opaque to this package
	// (spec.md §6 lists it as part of the dependency surface without
	// defining its bits further at this layer).
	Info uint32
	// Nsub is the number of captures, including the whole match at index
	// 0 (so a pattern with two capturing groups has Nsub == 3).
	Nsub int
	// Ntree is the subre tree's node count, sizing dissect.Vars.Mem (one
	// retry slot per node, spec.md §3's "vars" description).
	Ntree int
	// Cflags carries NoSub/UsedBackref.
	Cflags Cflags
	// UsedShorter reports whether any node in Tree prefers the shortest
	// match, forcing the complicated dissector (spec.md §6).
	UsedShorter bool
	// Unmatchable short-circuits Exec to NoMatch without running the DFA
	// at all — the compiler's way of saying "this pattern is provably
	// empty" (e.g. an unsatisfiable character class), spec.md §6.
	Unmatchable bool
}

// NewGuts assembles a Guts from a hand-built cnfa/subre pair, the way
// spec.md §8 expects tests to construct regexes ("tests should be
// generated from the exact compiled subre tree, not the surface syntax").
// cm must already be sealed with Fillcm.
func NewGuts(cm *colormap.Colormap, tree *subre.Node, search *cnfa.CNFA, nsub, ntree int) *Guts {
	return &Guts{
		Cmap:   cm,
		Tree:   tree,
		Search: search,
		Nsub:   nsub,
		Ntree:  ntree,
	}
}
