package colormap

// StateIdx identifies a state in the build-time NFA. Defined here (rather
// than in package cnfa) so that colormap, the lower layer, never has to
// import cnfa to talk about arcs and states — cnfa imports colormap's
// Color/StateIdx/ArcKind and implements the Arc/NFA interfaces below.
type StateIdx int32

// ArcKind distinguishes plain transition arcs from lookaround
// constraint arcs; colorcomplement (spec §4.1) specifically asks about
// PLAIN arcs.
type ArcKind uint8

const (
	// PlainArc is an ordinary color-labelled transition.
	PlainArc ArcKind = iota
	// AssertArc is a zero-width lookaround/boundary constraint arc,
	// typically labelled with a PSEUDO color.
	AssertArc
)

// Arc is the minimal contract colormap needs from an NFA arc in order to
// maintain per-color chains (ColorChain/UncolorChain) without importing
// the package that owns arcs. Implemented by *cnfa.Arc.
type Arc interface {
	Kind() ArcKind
	From() StateIdx
	To() StateIdx
	ArcColor() Color
	SetArcColor(Color)
	ChainNext() Arc
	SetChainNext(Arc)
}

// NFA is the build-time collaborator colormap calls back into when
// splitting (OkColors), complementing (Rainbow), or negating
// (ColorComplement) colors — the "external NFA" spec §4.1 names as
// newarc's owner. Implemented by *cnfa.NFA.
type NFA interface {
	// NewArc creates a new arc of the given kind from `from` to `to`
	// labelled `color`. The arc is returned unchained; the caller chains
	// it via ColorChain.
	NewArc(kind ArcKind, color Color, from, to StateIdx) Arc
	// HasArc reports whether `from` already has a `kind`-arc labelled
	// `color` (to any target).
	HasArc(from StateIdx, kind ArcKind, color Color) bool
}
