package cnfa

import "github.com/coloregex/coloregex/colormap"

// ColorArc is a compacted, color-labelled out-transition.
type ColorArc struct {
	Color colormap.Color
	To    colormap.StateIdx
}

// Look identifies a zero-width assertion an AssertArc depends on. Only
// BOS/EOS are modeled (spec.md §6's eflags are explicitly "at minimum
// BOS-suppressed, EOS-suppressed"); this is an intentionally narrower
// stand-in for the general "lacon" recursive sub-cnfa mechanism spec.md
// §4.2.2 describes for look-around constraints specifically — see
// DESIGN.md's "`Look` narrowed to BOS/EOS only" entry. Unconditional epsilon
// transitions (join points, optional branches) are a separate mechanism,
// EpsArc below, not modeled by Look at all.
type Look uint8

const (
	LookBOS Look = iota
	LookEOS
)

// AssertArc is a zero-width out-transition gated on a look-around
// condition rather than consuming a color.
type AssertArc struct {
	Look Look
	To   colormap.StateIdx
}

// CNFA is the flat, read-only compact NFA spec.md §3 describes: states
// indexed 0..n-1, each with its out-arcs, plus a distinguished pre-state
// (BOS assertions) and post-state (acceptance). Eps holds unconditional
// epsilon out-transitions, expanded by the DFA's closure step alongside
// Asserts (spec.md §4.2.2 step 2: "close under epsilon/assertions" —
// two distinct things, both expanded to a fixpoint before a state set is
// frozen).
type CNFA struct {
	Out     [][]ColorArc
	Asserts [][]AssertArc
	Eps     [][]colormap.StateIdx
	Pre     colormap.StateIdx
	Post    colormap.StateIdx
	NStates int
}

// Compact freezes a build-time NFA into its compact, read-only form. This
// is the "compile finishes, everything downstream is read-only" boundary
// spec.md §5 describes ("guts... read-only after compilation").
func Compact(n *NFA) *CNFA {
	c := &CNFA{
		Out:     make([][]ColorArc, len(n.States)),
		Asserts: make([][]AssertArc, len(n.States)),
		Eps:     make([][]colormap.StateIdx, len(n.States)),
		Pre:     n.Pre,
		Post:    n.Post,
		NStates: len(n.States),
	}
	for i, st := range n.States {
		for _, a := range st.Out {
			if a.Kind() != colormap.PlainArc {
				continue
			}
			c.Out[i] = append(c.Out[i], ColorArc{Color: a.ArcColor(), To: a.To()})
		}
	}
	for _, r := range n.asserts {
		c.Asserts[r.from] = append(c.Asserts[r.from], AssertArc{Look: r.look, To: r.to})
	}
	for _, r := range n.eps {
		c.Eps[r.from] = append(c.Eps[r.from], r.to)
	}
	return c
}

// AddAssert records a zero-width assertion arc from `from` to `to`,
// gated on `look`. Unlike AddArc, this bypasses the colormap entirely —
// assertions are not colored, they are evaluated directly against
// position during DFA closure (see package dfa).
func (n *NFA) AddAssert(look Look, from, to colormap.StateIdx) {
	n.asserts = append(n.asserts, assertRecord{look: look, from: from, to: to})
}

// AddEps records an unconditional epsilon out-transition from `from` to
// `to`: the DFA's closure step always expands it, with no look condition
// to check, the way the teacher's nfa/compile.go builder.AddEpsilon
// joins alternation branches or patches an optional construct's skip
// path. Without this, the compact NFA has no way to express a union of
// branches that reconverge without consuming a symbol on every path (an
// alternation join, `a?`, a zero-width concatenation arm) other than
// constructions that alias states after the fact; AddEps is the general
// primitive those constructions were standing in for.
func (n *NFA) AddEps(from, to colormap.StateIdx) {
	n.eps = append(n.eps, epsRecord{from: from, to: to})
}

type assertRecord struct {
	look Look
	from colormap.StateIdx
	to   colormap.StateIdx
}

type epsRecord struct {
	from colormap.StateIdx
	to   colormap.StateIdx
}
