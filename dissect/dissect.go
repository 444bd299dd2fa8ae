package dissect

import (
	"github.com/coloregex/coloregex/cnfa"
	"github.com/coloregex/coloregex/colormap"
	"github.com/coloregex/coloregex/dfa"
	"github.com/coloregex/coloregex/subre"
)

// Dissector recovers capture boundaries for one compiled pattern,
// reusing one lazy DFA per distinct cnfa a subre node carries (a subre
// tree can reference the same cnfa from more than one node, e.g. a
// repeated alternative). Not safe for concurrent use: one Dissector
// belongs to one exec (spec.md §5).
type Dissector struct {
	cm     *colormap.Colormap
	dfaCfg dfa.Config
	dfas   map[*cnfa.CNFA]*dfa.DFA
	autos  *literalAutomata
}

// New creates a Dissector coloring all of its DFAs with cm.
func New(cm *colormap.Colormap, dfaCfg dfa.Config) *Dissector {
	return &Dissector{
		cm:     cm,
		dfaCfg: dfaCfg,
		dfas:   make(map[*cnfa.CNFA]*dfa.DFA),
		autos:  newLiteralAutomata(),
	}
}

// DFAFor returns (building on first use) the lazy DFA this Dissector
// maintains for c, coloring it with the Dissector's own colormap. Exported
// so the exec package (C4) can drive the same cached DFAs the dissector
// uses internally when locating the top-level match window (spec.md §2's
// "uses the DFA to locate a candidate match window" step, which runs
// before any dissection is attempted).
func (ds *Dissector) DFAFor(c *cnfa.CNFA) (*dfa.DFA, error) {
	return ds.dfaFor(c)
}

func (ds *Dissector) dfaFor(c *cnfa.CNFA) (*dfa.DFA, error) {
	if d, ok := ds.dfas[c]; ok {
		return d, nil
	}
	d, err := dfa.New(c, ds.cm, ds.dfaCfg)
	if err != nil {
		return nil, err
	}
	ds.dfas[c] = d
	return d, nil
}

// matchesExactly reports whether c's DFA matches the subject exactly
// across [begin, end) — no more, no less — given v's overall BOS/EOS
// bounds.
func (ds *Dissector) matchesExactly(c *cnfa.CNFA, v *Vars, begin, end int) (bool, error) {
	d, err := ds.dfaFor(c)
	if err != nil {
		return false, err
	}
	d.SetBounds(v.Start, v.Stop, v.BosSuppressed, v.EosSuppressed)
	res, err := d.Longest(ds.cm, v.Input, begin, end)
	if err != nil {
		return false, err
	}
	return res.Matched && res.End == end, nil
}

// Dissect is the uncomplicated dissector (spec.md §4.3.2): it assumes the
// subtree rooted at t is known, by construction, to match [begin, end)
// with no ambiguity requiring backtracking (no nested alternation or
// back-reference whose split point isn't uniquely determined). Terminal
// and capture nodes are always uncomplicated; concat is uncomplicated iff
// both children are; alternation and back-reference are never
// uncomplicated on their own (handled by CDissect).
//
// Returns (true, nil) on a confirmed match, (false, nil) if t turns out
// not to match this span after all (the caller's "uncomplicated"
// assumption was wrong — falls back to CDissect), and a non-nil error for
// a genuine internal failure (spec.md §7).
func (ds *Dissector) Dissect(v *Vars, t *subre.Node, begin, end int) (bool, error) {
	switch t.Op {
	case subre.OpTerminal:
		ok, err := ds.matchesExactly(t.CNFA, v, begin, end)
		return ok, err

	case subre.OpCapture:
		ok, err := ds.Dissect(v, t.Left, begin, end)
		if err != nil || !ok {
			return ok, err
		}
		v.PMatch[t.Subno] = subre.Span{Start: begin, Stop: end}
		return true, nil

	case subre.OpConcat:
		return ds.dissectConcat(v, t, begin, end)

	case subre.OpAlternation, subre.OpBackref:
		// Never uncomplicated on their own: defer to the backtracking
		// dissector.
		return ds.CDissect(v, t, begin, end)

	default:
		return false, &Error{Kind: Assert, Message: "dissect: unknown subre op"}
	}
}

// dissectConcat finds the unique split point between t.Left and t.Right
// when the whole subtree is known-unambiguous: run Left's own cnfa (if
// it has one, i.e. it reduces to a single DFA) as a longest match from
// begin, then confirm Right matches exactly from there to end. A subtree
// without a combined cnfa on Left (a nested capture/concat without a
// single governing automaton) has no shortcut available here and is
// treated as complicated instead — this is a deliberate narrowing of the
// historical engine's sub-DFA-driven midpoint search (see DESIGN.md).
func (ds *Dissector) dissectConcat(v *Vars, t *subre.Node, begin, end int) (bool, error) {
	if t.Left.CNFA == nil {
		return ds.CDissect(v, t, begin, end)
	}
	d, err := ds.dfaFor(t.Left.CNFA)
	if err != nil {
		return false, err
	}
	d.SetBounds(v.Start, v.Stop, v.BosSuppressed, v.EosSuppressed)
	res, err := d.Longest(ds.cm, v.Input, begin, end)
	if err != nil {
		return false, err
	}
	if !res.Matched {
		return false, nil
	}
	mid := res.End
	okL, err := ds.Dissect(v, t.Left, begin, mid)
	if err != nil || !okL {
		return false, err
	}
	okR, err := ds.Dissect(v, t.Right, mid, end)
	if err != nil {
		return false, err
	}
	if !okR {
		// The assumption that this concat was uncomplicated was wrong:
		// Left's longest match didn't leave Right a valid split. Escalate
		// to the backtracking search rather than declaring no match.
		return ds.CDissect(v, t, begin, end)
	}
	return true, nil
}
