// Package cnfa holds concrete types for the compact NFA and its
// growable, build-time counterpart that spec.md §1 places outside this
// core's scope ("surface regex parsing into an NFA/subre tree... produces
// the cnfa and subre inputs to this core"). The core (colormap, dfa,
// dissect) only ever sees the read-only CNFA; NFA exists so that
// colormap's OkColors/Rainbow/ColorComplement (spec §4.1) have a real
// collaborator to call back into, and so tests can hand-build small NFAs
// instead of parsing surface syntax (spec §8's own instruction: "tests
// should be generated from the exact compiled subre tree, not the surface
// syntax").
package cnfa

import "github.com/coloregex/coloregex/colormap"

// Arc is a transition in the build-time NFA, generalized from the
// teacher's byte-range arcs (nfa/builder.go's AddByteRange/AddSparse) to
// color-labelled arcs: by the time this layer runs, every input has
// already been reduced to a color by package colormap.
type Arc struct {
	kind  colormap.ArcKind
	color colormap.Color
	from  colormap.StateIdx
	to    colormap.StateIdx
	next  colormap.Arc // per-color chain link; see colormap.ColorChain
}

func (a *Arc) Kind() colormap.ArcKind       { return a.kind }
func (a *Arc) From() colormap.StateIdx      { return a.from }
func (a *Arc) To() colormap.StateIdx        { return a.to }
func (a *Arc) ArcColor() colormap.Color     { return a.color }
func (a *Arc) SetArcColor(c colormap.Color) { a.color = c }
func (a *Arc) ChainNext() colormap.Arc      { return a.next }
func (a *Arc) SetChainNext(n colormap.Arc)  { a.next = n }

// State is a build-time NFA state: an index plus its outgoing arcs. Arcs
// additionally live on their color's colormap chain; Out is the
// "by source state" view used for closure and for compaction.
type State struct {
	Out []*Arc
}

// NFA is the growable, build-time NFA. It implements colormap.NFA so the
// colormap can create and query arcs during OkColors/Rainbow/
// ColorComplement without this package importing colormap's caller
// (there is no caller to import back — colormap depends only on the
// interfaces it declares itself).
type NFA struct {
	States  []State
	Pre     colormap.StateIdx // matches BOS assertions
	Post    colormap.StateIdx // acceptance
	asserts []assertRecord
	eps     []epsRecord
}

// New creates an NFA with its distinguished pre-state and post-state
// already allocated.
func New() *NFA {
	n := &NFA{}
	n.Pre = n.AddState()
	n.Post = n.AddState()
	return n
}

// AddState allocates a new state and returns its index.
func (n *NFA) AddState() colormap.StateIdx {
	n.States = append(n.States, State{})
	return colormap.StateIdx(len(n.States) - 1)
}

// NewArc implements colormap.NFA: creates a color-labelled arc from
// `from` to `to` and appends it to from's out-arc list, unchained. The
// caller (colormap) chains it onto the color's arc chain.
func (n *NFA) NewArc(kind colormap.ArcKind, color colormap.Color, from, to colormap.StateIdx) colormap.Arc {
	a := &Arc{kind: kind, color: color, from: from, to: to}
	n.States[from].Out = append(n.States[from].Out, a)
	return a
}

// AddArc is the direct (non-colormap-interface) constructor used while
// hand-building an NFA, identical to NewArc but returning the concrete
// *Arc so callers can chain it immediately.
func (n *NFA) AddArc(kind colormap.ArcKind, color colormap.Color, from, to colormap.StateIdx) *Arc {
	a := &Arc{kind: kind, color: color, from: from, to: to}
	n.States[from].Out = append(n.States[from].Out, a)
	return a
}

// HasArc implements colormap.NFA.
func (n *NFA) HasArc(from colormap.StateIdx, kind colormap.ArcKind, color colormap.Color) bool {
	for _, a := range n.States[from].Out {
		if a.kind == kind && a.color == color {
			return true
		}
	}
	return false
}
