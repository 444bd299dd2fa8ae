// Package dfa implements the lazy subset-construction DFA (spec.md §4.2,
// component C2): a cache of StateSets built on demand as input colors are
// consumed, with memoized transitions and LRU-style eviction once the
// cache fills. Grounded on the teacher's dfa/lazy package (state.go,
// cache.go, lazy.go, start.go, builder.go, config.go, error.go) with one
// deliberate divergence: per-state eviction (pickss) in place of the
// teacher's whole-cache-clear-then-NFA-fallback strategy, and no mutexes
// anywhere (spec.md §5: single-threaded, single-owner per exec).
package dfa

import (
	"github.com/coloregex/coloregex/cnfa"
	"github.com/coloregex/coloregex/colormap"
	"github.com/coloregex/coloregex/internal/sparse"
)

// DFA drives one compiled pattern's lazy subset construction against one
// input. It owns a cache of StateSets and is not safe for concurrent use;
// spec.md §5 scopes one DFA per concurrent exec.
type DFA struct {
	cnfa    *cnfa.CNFA
	ncolors int
	cache   *cache
	cfg     Config

	// bosPos/eosPos are the *overall* subject string's bounds — the only
	// positions BOS/EOS assertions can hold at — fixed once per exec via
	// SetBounds. They are deliberately distinct from the `pos` argument
	// Start/Step take per call: a dissector recursing into a capture
	// group that begins mid-string must evaluate BOS at that group's
	// start position against bosPos, not treat every subtree's local
	// start as if it were the beginning of the whole subject.
	bosPos, eosPos               int
	bosSuppressed, eosSuppressed bool

	err error

	// startSets memoizes the start-state set per scan position, since one
	// DFA (one cnfa) is shared across every subtree dissected against it,
	// each potentially starting its scan at a different position.
	startSets map[int]*StateSet
}

// New builds a DFA over c, colored by cm (cm.NumColors bounds the
// per-state Outs/InChain arrays).
func New(c *cnfa.CNFA, cm *colormap.Colormap, cfg Config) (*DFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DFA{
		cnfa:      c,
		ncolors:   cm.NumColors(),
		cache:     newCache(cfg),
		cfg:       cfg,
		startSets: make(map[int]*StateSet),
	}, nil
}

// SetBounds fixes the overall subject string's [bosPos, eosPos) extent —
// the positions at which BOS/EOS assertions can hold — and whether they
// are suppressed (spec.md §6 eflags, REG_NOTBOL/REG_NOTEOL equivalents).
// This is set once per exec; it does not change as the dissector recurses
// into different subtrees' local scan windows.
func (d *DFA) SetBounds(bosPos, eosPos int, bosSuppressed, eosSuppressed bool) {
	d.bosPos, d.eosPos = bosPos, eosPos
	d.bosSuppressed, d.eosSuppressed = bosSuppressed, eosSuppressed
	d.startSets = make(map[int]*StateSet)
}

// Err returns the sticky error latched by the first failing operation,
// if any (spec.md §7).
func (d *DFA) Err() error { return d.err }

// Start returns the DFA's start state set for a scan beginning at pos,
// building it on first use and memoizing it per pos (spec.md §4.2.1: a
// DFA's start state depends on whether BOS holds there, which depends on
// pos). It is always flagged Starter (never evicted) and NoProgress
// (reached by closure alone, no color consumed).
func (d *DFA) Start(pos int) (*StateSet, error) {
	if d.err != nil {
		return nil, d.err
	}
	if s, ok := d.startSets[pos]; ok {
		return s, nil
	}
	bs := NewBitSet(d.cnfa.NStates)
	bs.Set(int(d.cnfa.Pre))
	d.closure(&bs, pos)
	h := bs.Hash()
	if found := d.cache.lookup(bs, h); found != nil {
		found.Flags |= Starter | NoProgress
		d.startSets[pos] = found
		return found, nil
	}
	flags := Starter | NoProgress
	if bs.Test(int(d.cnfa.Post)) {
		flags |= PostState
	}
	s := newStateSet(bs, h, flags, pos, d.ncolors)
	if err := d.cache.insert(s, pos); err != nil {
		d.err = err
		return nil, err
	}
	d.startSets[pos] = s
	return s, nil
}

// Step returns the state set reached from src on color k at input
// position pos (the position just *after* consuming the symbol colored
// k), memoizing the transition. A nil, nil result means the transition
// is dead (no match can continue through it).
func (d *DFA) Step(src *StateSet, k colormap.Color, pos int) (*StateSet, error) {
	if d.err != nil {
		return nil, d.err
	}
	if out := src.Outs[k]; out != nil {
		if out == deadSS {
			return nil, nil
		}
		out.LastSeen = pos
		return out, nil
	}

	dest := NewBitSet(d.cnfa.NStates)
	d.move(src, k, &dest)
	if dest.IsEmpty() {
		src.Outs[k] = deadSS
		return nil, nil
	}
	d.closure(&dest, pos)

	h := dest.Hash()
	if found := d.cache.lookup(dest, h); found != nil {
		d.link(src, k, found)
		found.LastSeen = pos
		return found, nil
	}

	flags := Flags(0)
	if dest.Test(int(d.cnfa.Post)) {
		flags |= PostState
	}
	news := newStateSet(dest, h, flags, pos, d.ncolors)
	if err := d.cache.insert(news, pos); err != nil {
		d.err = err
		return nil, err
	}
	d.link(src, k, news)
	return news, nil
}

// Lock pins s against eviction for the duration of a caller's retry
// window (e.g. a cdissect backtrack paused mid-scan, spec.md §4.3.4).
func (d *DFA) Lock(s *StateSet) { s.Flags |= Locked }

// Unlock releases a previous Lock.
func (d *DFA) Unlock(s *StateSet) { s.Flags &^= Locked }

// move computes, into dest, every cnfa state directly reachable from a
// member of src on color k (the "subset construction" step proper,
// before closure). Grounded on the teacher's dfa/lazy/lazy.go
// determinization loop, generalized from byte transitions to colors.
func (d *DFA) move(src *StateSet, k colormap.Color, dest *BitSet) {
	src.States.ForEach(func(q int) {
		for _, arc := range d.cnfa.Out[q] {
			if arc.Color == k {
				dest.Set(int(arc.To))
			}
		}
	})
}

// link memoizes src--k-->dst and records the ins-chain backlink dst
// needs for eviction bookkeeping.
func (d *DFA) link(src *StateSet, k colormap.Color, dst *StateSet) {
	src.Outs[k] = dst
	ia := &inArc{src: src, color: k, next: dst.Ins}
	dst.Ins = ia
	src.InChain[k] = ia
}

// closure expands dest to a fixpoint over two distinct kinds of
// zero-width out-transition (spec.md §4.2.2 step 2: "close under
// epsilon/assertions"): unconditional epsilon arcs (cnfa.CNFA.Eps,
// always taken) and assertion arcs whose look condition holds at pos
// (cnfa.CNFA.Asserts — the engine's narrowed "lacon" hook, only BOS/EOS,
// see DESIGN.md's "`Look` narrowed to BOS/EOS only" entry).
//
// The worklist is the teacher's internal/sparse.SparseSet, the same
// dense-iterate/O(1)-membership structure the teacher uses for NFA state
// tracking (internal/sparse's own doc comment: "particularly useful for
// NFA simulation where we need to track visited states") — exactly the
// role it plays here.
func (d *DFA) closure(dest *BitSet, pos int) {
	ws := sparse.NewSparseSet(uint32(d.cnfa.NStates))
	dest.ForEach(func(i int) { ws.Insert(uint32(i)) })

	processed := 0
	for processed < ws.Size() {
		q := ws.Values()[processed]
		processed++
		for _, r := range d.cnfa.Eps[q] {
			ri := uint32(r)
			if ws.Contains(ri) {
				continue
			}
			ws.Insert(ri)
			dest.Set(int(ri))
		}
		for _, a := range d.cnfa.Asserts[q] {
			if !d.lookHolds(a.Look, pos) {
				continue
			}
			r := uint32(a.To)
			if ws.Contains(r) {
				continue
			}
			ws.Insert(r)
			dest.Set(int(r))
		}
	}
}

func (d *DFA) lookHolds(look cnfa.Look, pos int) bool {
	switch look {
	case cnfa.LookBOS:
		return pos == d.bosPos && !d.bosSuppressed
	case cnfa.LookEOS:
		return pos == d.eosPos && !d.eosSuppressed
	default:
		return false
	}
}
