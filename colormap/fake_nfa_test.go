package colormap

// fakeArc/fakeNFA are a minimal stand-in for package cnfa's real Arc/NFA,
// used so colormap's tests (OkColors/Rainbow/ColorComplement) can be
// exercised without importing cnfa (which itself imports colormap).

type fakeArc struct {
	kind  ArcKind
	color Color
	from  StateIdx
	to    StateIdx
	next  Arc
}

func (a *fakeArc) Kind() ArcKind        { return a.kind }
func (a *fakeArc) From() StateIdx       { return a.from }
func (a *fakeArc) To() StateIdx         { return a.to }
func (a *fakeArc) ArcColor() Color      { return a.color }
func (a *fakeArc) SetArcColor(c Color)  { a.color = c }
func (a *fakeArc) ChainNext() Arc       { return a.next }
func (a *fakeArc) SetChainNext(n Arc)   { a.next = n }

type fakeNFA struct {
	arcs []*fakeArc
}

func newFakeNFA() *fakeNFA {
	return &fakeNFA{}
}

func (n *fakeNFA) NewArc(kind ArcKind, color Color, from, to StateIdx) Arc {
	a := &fakeArc{kind: kind, color: color, from: from, to: to}
	n.arcs = append(n.arcs, a)
	return a
}

func (n *fakeNFA) HasArc(from StateIdx, kind ArcKind, color Color) bool {
	for _, a := range n.arcs {
		if a.from == from && a.kind == kind && a.color == color {
			return true
		}
	}
	return false
}
