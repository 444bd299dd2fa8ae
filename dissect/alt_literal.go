package dissect

import (
	"github.com/coregx/ahocorasick"

	"github.com/coloregex/coloregex/subre"
)

// literalAutomata caches the Aho-Corasick automaton built for a literal
// alternation node (SPEC_FULL.md's DOMAIN STACK wiring: the teacher's
// github.com/coregx/ahocorasick, used in meta/compile.go and meta/find.go
// for "large literal alternations"). A node with a non-literal
// alternative is remembered as ineligible so it is never retried.
type literalAutomata struct {
	automata map[*subre.Node]*ahocorasick.Automaton
	tried    map[*subre.Node]bool
}

func newLiteralAutomata() *literalAutomata {
	return &literalAutomata{
		automata: make(map[*subre.Node]*ahocorasick.Automaton),
		tried:    make(map[*subre.Node]bool),
	}
}

// probeLiteralAlternative reports which alternative of t, if any,
// literally matches the start of [begin, end). It is only ever used as a
// trial-order hint for cdissectAlternation — a miss or an ineligible node
// simply falls back to trying every alternative in order, so a wrong
// guess can never change the result, only the number of attempts.
func (ds *Dissector) probeLiteralAlternative(t *subre.Node, v *Vars, begin, end int) (*subre.Node, bool) {
	return ds.autos.probe(t, v, begin, end)
}

func (la *literalAutomata) probe(t *subre.Node, v *Vars, begin, end int) (*subre.Node, bool) {
	alts := t.Alternatives()

	if !la.tried[t] {
		la.tried[t] = true
		builder := ahocorasick.NewBuilder()
		for _, a := range alts {
			if a.Literal == "" {
				return nil, false // not every alternative is a plain literal
			}
			builder.AddPattern([]byte(a.Literal))
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, false
		}
		la.automata[t] = auto
	}

	auto := la.automata[t]
	if auto == nil {
		return nil, false
	}

	buf := make([]byte, 0, end-begin)
	for i := begin; i < end; i++ {
		c := v.Input[i]
		if c > 0xff {
			return nil, false // outside the accelerated byte range
		}
		buf = append(buf, byte(c))
	}

	m := auto.Find(buf, 0)
	if m == nil || m.Start != 0 {
		return nil, false
	}
	matched := string(buf[m.Start:m.End])
	for _, a := range alts {
		if a.Literal == matched {
			return a, true
		}
	}
	return nil, false
}
