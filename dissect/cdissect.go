package dissect

import "github.com/coloregex/coloregex/subre"

// CDissect is the complicated dissector (spec.md §4.3.3/§4.3.4): unlike
// Dissect, it does not assume a unique split/alternative exists. It
// searches, backtracking across sibling failures, using v.Mem[t.Retry] to
// resume a node's search where a previous attempt (undone by an
// ancestor's own backtrack) left off, instead of rescanning candidates
// already ruled out.
//
// This is a deliberate simplification of the historical engine's
// DFA-driven midpoint search (which narrows candidates using the
// compiled automaton itself): candidates here are enumerated by linear
// scan of the span, acceptable at the sizes a reference dissector is
// expected to run at (see DESIGN.md).
func (ds *Dissector) CDissect(v *Vars, t *subre.Node, begin, end int) (bool, error) {
	switch t.Op {
	case subre.OpTerminal:
		return ds.matchesExactly(t.CNFA, v, begin, end)

	case subre.OpCapture:
		ok, err := ds.CDissect(v, t.Left, begin, end)
		if err != nil || !ok {
			return ok, err
		}
		v.PMatch[t.Subno] = subre.Span{Start: begin, Stop: end}
		return true, nil

	case subre.OpConcat:
		return ds.cdissectConcat(v, t, begin, end)

	case subre.OpAlternation:
		return ds.cdissectAlternation(v, t, begin, end)

	case subre.OpBackref:
		return ds.cdissectBackref(v, t, begin, end)

	default:
		return false, ErrAssert
	}
}

// cdissectConcat tries candidate split points between begin and end,
// longest-first unless t prefers the shortest match, resuming from
// v.Mem[t.Retry] (the count of candidates already ruled out by an earlier
// pass through this exact node) rather than starting over.
func (ds *Dissector) cdissectConcat(v *Vars, t *subre.Node, begin, end int) (bool, error) {
	n := end - begin + 1
	resume := v.Mem[t.Retry]

	for i := resume; i < n; i++ {
		var mid int
		if t.IsShorter() {
			mid = begin + i
		} else {
			mid = end - i
		}
		v.Mem[t.Retry] = i + 1

		snap := v.snapshot()
		okL, err := ds.CDissect(v, t.Left, begin, mid)
		if err != nil {
			return false, err
		}
		if okL {
			okR, err := ds.CDissect(v, t.Right, mid, end)
			if err != nil {
				return false, err
			}
			if okR {
				return true, nil
			}
		}
		v.restore(snap)
	}
	v.Mem[t.Retry] = 0
	return false, nil
}

// cdissectAlternation tries each alternative in chain order, resuming
// from v.Mem[t.Retry] (the index of the next untried alternative) so a
// retry forced by an ancestor's backtrack doesn't re-attempt alternatives
// already ruled out at this position. A literal-only alternation is
// probed first via Aho-Corasick as a fast-path hint (SPEC_FULL.md's
// DOMAIN STACK expansion, alt_literal.go); the probe never changes the
// outcome, only the trial order.
func (ds *Dissector) cdissectAlternation(v *Vars, t *subre.Node, begin, end int) (bool, error) {
	alts := t.Alternatives()
	resume := v.Mem[t.Retry]

	if resume == 0 {
		if hint, ok := ds.probeLiteralAlternative(t, v, begin, end); ok {
			for i, a := range alts {
				if a == hint && i != 0 {
					alts[0], alts[i] = alts[i], alts[0]
					break
				}
			}
		}
	}

	for i := resume; i < len(alts); i++ {
		v.Mem[t.Retry] = i + 1
		snap := v.snapshot()
		ok, err := ds.CDissect(v, alts[i], begin, end)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		v.restore(snap)
	}
	v.Mem[t.Retry] = 0
	return false, nil
}
