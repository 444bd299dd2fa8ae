package exec

import (
	"errors"

	"github.com/coloregex/coloregex/colormap"
	"github.com/coloregex/coloregex/dfa"
	"github.com/coloregex/coloregex/dissect"
	"github.com/coloregex/coloregex/internal/accel"
	"github.com/coloregex/coloregex/subre"
)

// regexMagic identifies a value as a genuine *Regexp handle (spec.md §6:
// "re: ... contains magic ... Status: ... INVALID_ARG (magic mismatch)").
const regexMagic uint32 = 0x52454758 // "REGX"

// Eflags is the execution-flags bit set spec.md §6 describes ("at minimum
// BOS-suppressed, EOS-suppressed").
type Eflags uint32

const (
	// NotBOL suppresses BOS (^) assertions for this call (REG_NOTBOL).
	NotBOL Eflags = 1 << iota
	// NotEOL suppresses EOS ($) assertions for this call (REG_NOTEOL).
	NotEOL
)

// Regexp is the compiled-regex handle spec.md §6 describes: a magic
// number, the code-point width it was compiled for, and its Guts.
type Regexp struct {
	magic   uint32
	ChrBits int
	Guts    *Guts
}

// NewRegexp wraps guts as a Regexp handle ready for Exec.
func NewRegexp(guts *Guts) *Regexp {
	return &Regexp{magic: regexMagic, ChrBits: colormap.CHRBITS, Guts: guts}
}

// Exec is the core's single entry point (spec.md §6): locate the
// leftmost match of re in input — the longest one for a single automaton,
// or, for a top-level alternation, the first alternative in chain order
// that matches there (see matchAt) — and — if nmatch > 1 — recover
// capture boundaries into pmatch. pmatch must have length >= nmatch;
// pmatch[0] is always the whole match when the returned Status is OK.
func Exec(re *Regexp, input []colormap.Chr, eflags Eflags, nmatch int, pmatch []subre.Span) (Status, error) {
	if re == nil || re.magic != regexMagic {
		return InvalidArg, nil
	}
	if re.ChrBits != colormap.CHRBITS {
		return Mixed, nil
	}
	guts := re.Guts
	if guts.Unmatchable {
		return NoMatch, nil
	}
	if guts.Cflags&NoSub != 0 {
		nmatch = 0
	}

	vsize := nmatch
	if vsize < 1 {
		vsize = 1
	}
	v := dissect.NewVars(input, 0, len(input), vsize, guts.Ntree)
	v.BosSuppressed = eflags&NotBOL != 0
	v.EosSuppressed = eflags&NotEOL != 0

	ds := dissect.New(guts.Cmap, dfa.DefaultConfig())

	lo, hi, ok, err := findWindow(ds, guts, v, input)
	if err != nil {
		return classify(err), err
	}
	if !ok {
		return NoMatch, nil
	}
	v.PMatch[0] = subre.Span{Start: lo, Stop: hi}

	if nmatch <= 1 {
		if nmatch == 1 {
			pmatch[0] = v.PMatch[0]
		}
		return OK, nil
	}

	subre.ZapSubs(v.PMatch, guts.Nsub)

	var matched bool
	if guts.UsedShorter || guts.Cflags&UsedBackref != 0 {
		matched, err = ds.CDissect(v, guts.Tree, lo, hi)
	} else {
		matched, err = ds.Dissect(v, guts.Tree, lo, hi)
	}
	if err != nil {
		return classify(err), err
	}
	if !matched {
		// The window-finding scan claimed [lo, hi) matches the whole
		// pattern; if the dissector then fails to decompose it, the two
		// components disagree about what the pattern accepts — an
		// internal inconsistency (spec.md §7: ASSERT "should never
		// surface in a released build").
		return Assert, nil
	}

	n := nmatch
	if n > len(v.PMatch) {
		n = len(v.PMatch)
	}
	copy(pmatch[:n], v.PMatch[:n])
	for i := n; i < nmatch; i++ {
		pmatch[i] = subre.NoMatch
	}
	return OK, nil
}

// findWindow locates the leftmost position at which guts.Tree matches,
// trying successive start positions in order (spec.md §2: "uses the DFA
// to locate a candidate match window"). One accelerant, which cannot
// change the result (spec.md §8 property 9), narrows the search before
// the (relatively expensive) full scan runs at a candidate position: if
// the root subre is known to require a specific literal leading byte,
// accel.IndexChr jumps straight to the next position that byte occurs
// at, instead of probing every position in between. If guts.Search is
// present, its own (typically cheaper) DFA is consulted first via
// Shortest as a quick reject filter.
func findWindow(ds *dissect.Dissector, guts *Guts, v *dissect.Vars, input []colormap.Chr) (int, int, bool, error) {
	var searchDFA *dfa.DFA
	if guts.Search != nil {
		d, err := ds.DFAFor(guts.Search)
		if err != nil {
			return 0, 0, false, err
		}
		d.SetBounds(v.Start, v.Stop, v.BosSuppressed, v.EosSuppressed)
		searchDFA = d
	}

	firstChr, haveFirstChr := requiredLeadingChr(guts.Tree)

	for lo := v.Start; lo <= v.Stop; lo++ {
		if haveFirstChr {
			next := accel.IndexChr(input, lo, firstChr)
			if next < 0 {
				return 0, 0, false, nil
			}
			lo = next
		}

		if searchDFA != nil {
			res, err := searchDFA.Shortest(guts.Cmap, input, lo, v.Stop)
			if err != nil {
				return 0, 0, false, err
			}
			if !res.Matched {
				continue
			}
		}

		hi, ok, err := matchAt(ds, guts.Cmap, guts.Tree, v, input, lo)
		if err != nil {
			return 0, 0, false, err
		}
		if ok {
			return lo, hi, true, nil
		}
	}
	return 0, 0, false, nil
}

// matchAt reports the end of the match of t starting exactly at lo, or
// ok == false if t cannot match there at all. For everything except
// alternation this is a single Longest scan over t's own cnfa. For
// OpAlternation, it tries each alternative in chain order and accepts
// the first one that matches at lo using *that alternative's own*
// length — never the longer match a sibling alternative might offer —
// mirroring cdissectAlternation's chain-order priority (spec.md §4.3.4)
// at the top level too, since spec.md §8's E5 scenario pins this
// behavior even before any dissection is attempted ("first alternative
// wins by chain order, as §4.3.4 tail-recurses right only on NOMATCH").
// This is also why no single merged cnfa is needed for a top-level
// alternation: each alternative supplies its own.
func matchAt(ds *dissect.Dissector, cm *colormap.Colormap, t *subre.Node, v *dissect.Vars, input []colormap.Chr, lo int) (int, bool, error) {
	if t.Op == subre.OpAlternation {
		for _, alt := range t.Alternatives() {
			hi, ok, err := matchAt(ds, cm, alt, v, input, lo)
			if err != nil {
				return 0, false, err
			}
			if ok {
				return hi, true, nil
			}
		}
		return 0, false, nil
	}

	d, err := ds.DFAFor(t.CNFA)
	if err != nil {
		return 0, false, err
	}
	d.SetBounds(v.Start, v.Stop, v.BosSuppressed, v.EosSuppressed)
	res, err := d.Longest(cm, input, lo, v.Stop)
	if err != nil {
		return 0, false, err
	}
	if !res.Matched {
		return 0, false, nil
	}
	return res.End, true, nil
}

// requiredLeadingChr reports the single code point every match of t must
// begin with, when t's builder recorded one as a plain literal (subre.Node
// .Literal). Any pattern whose match can begin in more than one way (a
// character class, an alternation, an anchor, or simply no recorded
// literal) reports false — findWindow then falls back to probing every
// position, which is always correct, just slower.
func requiredLeadingChr(t *subre.Node) (colormap.Chr, bool) {
	if t == nil || t.Literal == "" {
		return 0, false
	}
	r := []rune(t.Literal)[0]
	if rune(colormap.Chr(r)) != r {
		return 0, false
	}
	return colormap.Chr(r), true
}

// classify maps an internal component error to the Status spec.md §6
// names for it.
func classify(err error) Status {
	var ce *colormap.Error
	if errors.As(err, &ce) {
		if ce.Kind == colormap.OutOfMemory {
			return OutOfMemory
		}
		return Assert
	}
	var de *dfa.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case dfa.OutOfMemory:
			return OutOfMemory
		case dfa.Assert:
			return Assert
		}
		return Assert
	}
	var se *dissect.Error
	if errors.As(err, &se) {
		return Assert
	}
	return OutOfMemory
}
