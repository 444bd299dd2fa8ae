package colormap

// NewColor returns the first unused color slot, growing the descriptor
// table (Go's append already grows it geometrically) when every existing
// slot is taken. Fails with ErrOutOfMemory once MaxColors is reached.
//
// Contract (spec §4.1): callers must SetColor at least one code point to
// the returned color before any other color allocation — the invariant
// that colors are non-vacuous is transient but contract-bound. Colormap
// itself does not enforce this; it is upheld by SubColor/PseudoColor,
// the only callers that allocate colors in this package.
func (cm *Colormap) NewColor() Color {
	if cm.err != nil {
		return COLORLESS
	}
	for i := 1; i < len(cm.cds); i++ {
		if cm.cds[i].Unused() {
			return Color(i)
		}
	}
	if len(cm.cds) >= cm.maxColors {
		cm.err = ErrOutOfMemory
		return COLORLESS
	}
	cm.cds = append(cm.cds, ColorDesc{Sub: NOSUB})
	return Color(len(cm.cds) - 1)
}

// PseudoColor allocates a color for a zero-width assertion: marked
// PSEUDO, carrying a virtual Nchrs of 1, and excluded from Rainbow/
// ColorComplement iteration.
func (cm *Colormap) PseudoColor() Color {
	co := cm.NewColor()
	if co == COLORLESS {
		return COLORLESS
	}
	cd := &cm.cds[co]
	cd.Nchrs = 1
	cd.Flags |= PSEUDO
	return co
}

// SubColor returns the color code point c should become after this call.
//
// If c's color has more than one code point and no pending split, a fresh
// subcolor is allocated and the split is recorded (cd.Sub = sub, both
// ends) so that a later call for a *different* code point sharing the
// same original color joins the same pending subcolor instead of forking
// another one. If c's color is a singleton, no split is necessary and c's
// color is returned unchanged. Calling SubColor again for the same c is a
// no-op past the first call: by then c's color descriptor is its own
// Sub (the "I am already a subcolor" self-loop from spec §3), so the
// pending-split branch is taken with sco equal to co itself.
func (cm *Colormap) SubColor(c Chr) Color {
	if cm.err != nil {
		return COLORLESS
	}
	co := cm.GetColor(c)
	cd := &cm.cds[co]

	var sco Color
	if cd.Sub == NOSUB {
		if cd.Nchrs <= 1 {
			return co
		}
		sco = cm.NewColor()
		if cm.err != nil {
			return COLORLESS
		}
		cd = &cm.cds[co] // NewColor may have grown the slice
		cd.Sub = sco
		cm.cds[sco].Sub = sco
	} else {
		sco = cd.Sub
	}

	cd.Nchrs--
	cm.cds[sco].Nchrs++
	cm.SetColor(c, sco)
	if cm.err != nil {
		return COLORLESS
	}
	return sco
}

// OkColors resolves every pending subcolor split. For a color k whose
// split left it vacant (Nchrs==0), every arc on k's chain is relabelled
// to the subcolor (k becomes unreachable). Otherwise each of k's arcs
// gets a parallel arc on the subcolor, created via nfa.NewArc, so the
// subcolor is reachable by everything the parent was. After OkColors, no
// descriptor has Sub != NOSUB.
func (cm *Colormap) OkColors(nfa NFA) error {
	if cm.err != nil {
		return cm.err
	}
	for k := Color(0); int(k) < len(cm.cds); k++ {
		cd := &cm.cds[k]
		s := cd.Sub
		if s == NOSUB || s == k {
			continue
		}

		if cd.Nchrs == 0 {
			for cd.Arcs != nil {
				a := cd.Arcs
				cd.Arcs = a.ChainNext()
				a.SetChainNext(nil)
				a.SetArcColor(s)
				cm.ColorChain(a)
			}
		} else {
			for a := cd.Arcs; a != nil; a = a.ChainNext() {
				na := nfa.NewArc(a.Kind(), s, a.From(), a.To())
				cm.ColorChain(na)
			}
		}

		cd.Sub = NOSUB
		cm.cds[s].Sub = NOSUB
	}
	return cm.err
}

// ColorChain inserts arc a at the head of its color's chain (a.ArcColor()
// must already be set). O(1).
func (cm *Colormap) ColorChain(a Arc) {
	cd := &cm.cds[a.ArcColor()]
	a.SetChainNext(cd.Arcs)
	cd.Arcs = a
}

// UncolorChain removes arc a from its color's chain. O(chain length).
func (cm *Colormap) UncolorChain(a Arc) {
	cd := &cm.cds[a.ArcColor()]
	if cd.Arcs == a {
		cd.Arcs = a.ChainNext()
		a.SetChainNext(nil)
		return
	}
	for p := cd.Arcs; p != nil; p = p.ChainNext() {
		if p.ChainNext() == a {
			p.SetChainNext(a.ChainNext())
			a.SetChainNext(nil)
			return
		}
	}
}

// Singleton reports whether c's color contains exactly c and has no
// pending subcolor split.
func (cm *Colormap) Singleton(c Chr) bool {
	co := cm.GetColor(c)
	cd := &cm.cds[co]
	return cd.Nchrs == 1 && cd.Sub == NOSUB
}

// isSubcolorInWaiting reports whether color k is itself an unresolved
// subcolor (spec §3: "a descriptor whose sub equals its own index").
// Rainbow and ColorComplement both skip these: they have not yet been
// merged back into the arc graph by OkColors.
func (cm *Colormap) isSubcolorInWaiting(k Color) bool {
	return cm.cds[k].Sub == k
}

// Rainbow adds an arc (from) --kind/k--> (to) for every allocated color k
// except `but`, skipping PSEUDO colors and colors that are themselves
// pending subcolors. Used to implement `.` and character-class
// complement.
func (cm *Colormap) Rainbow(nfa NFA, kind ArcKind, but Color, from, to StateIdx) error {
	if cm.err != nil {
		return cm.err
	}
	for k := Color(0); int(k) < len(cm.cds); k++ {
		if k == but {
			continue
		}
		cd := &cm.cds[k]
		if cd.Flags&PSEUDO != 0 {
			continue
		}
		if cm.isSubcolorInWaiting(k) {
			continue
		}
		if cd.Unused() {
			continue
		}
		a := nfa.NewArc(kind, k, from, to)
		cm.ColorChain(a)
	}
	return cm.err
}

// ColorComplement adds an arc labelled k from `from` to `to`, for every
// allocated non-PSEUDO color k, iff state `of` has no existing PLAIN
// out-arc of color k. Used to implement negated character classes.
func (cm *Colormap) ColorComplement(nfa NFA, kind ArcKind, of StateIdx, from, to StateIdx) error {
	if cm.err != nil {
		return cm.err
	}
	for k := Color(0); int(k) < len(cm.cds); k++ {
		cd := &cm.cds[k]
		if cd.Flags&PSEUDO != 0 {
			continue
		}
		if cm.isSubcolorInWaiting(k) {
			continue
		}
		if cd.Unused() {
			continue
		}
		if nfa.HasArc(of, PlainArc, k) {
			continue
		}
		a := nfa.NewArc(kind, k, from, to)
		cm.ColorChain(a)
	}
	return cm.err
}
