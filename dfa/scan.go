package dfa

import "github.com/coloregex/coloregex/colormap"

// Result reports the outcome of a scan (spec.md §4.2.1).
type Result struct {
	// Matched reports whether a PostState was reached at all.
	Matched bool
	// End is the input position (exclusive) where the match ends, valid
	// only if Matched.
	End int
}

// A Result with Matched == false reports that the scan ran to completion
// (or hit a dead transition) without ever reaching a PostState.

// Longest runs the POSIX "leftmost-longest" scan (spec.md §4.2.1):
// consume colors from `from` to `to`, remembering the last position at
// which the current state set was a PostState, and return the furthest
// such position once the walk dies or the input is exhausted.
func (d *DFA) Longest(cm *colormap.Colormap, input []colormap.Chr, from, to int) (Result, error) {
	cur, err := d.Start(from)
	if err != nil {
		return Result{}, err
	}
	res := Result{}
	if cur.Flags&PostState != 0 {
		res.Matched = true
		res.End = from
	}
	pos := from
	for pos < to {
		k := cm.GetColor(input[pos])
		next, err := d.Step(cur, k, pos+1)
		if err != nil {
			return Result{}, err
		}
		if next == nil {
			break
		}
		pos++
		cur = next
		if cur.Flags&PostState != 0 {
			res.Matched = true
			res.End = pos
		}
	}
	return res, nil
}

// Shortest runs a "first match wins" scan: stop as soon as a PostState is
// reached, without exploring further (spec.md §4.2.1's shortest-match
// variant). Its caller in this tree is exec's search-helper probe
// (findWindow); the dissector does not use it.
func (d *DFA) Shortest(cm *colormap.Colormap, input []colormap.Chr, from, to int) (Result, error) {
	cur, err := d.Start(from)
	if err != nil {
		return Result{}, err
	}
	if cur.Flags&PostState != 0 {
		return Result{Matched: true, End: from}, nil
	}
	pos := from
	for pos < to {
		k := cm.GetColor(input[pos])
		next, err := d.Step(cur, k, pos+1)
		if err != nil {
			return Result{}, err
		}
		if next == nil {
			break
		}
		pos++
		cur = next
		if cur.Flags&PostState != 0 {
			return Result{Matched: true, End: pos}, nil
		}
	}
	return Result{}, nil
}
