package dfa

import (
	"testing"

	"github.com/coloregex/coloregex/cnfa"
	"github.com/coloregex/coloregex/colormap"
)

// buildLiteralAB hand-builds the compact NFA for the two-character
// literal "ab": Pre --a--> s1 --b--> Post. No back-references, no
// alternation, no assertions — the smallest useful fixture for exercising
// Start/Step/Longest/Shortest (spec.md §8: tests are built from hand-made
// trees, not parsed surface syntax).
func buildLiteralAB(t *testing.T) (*cnfa.CNFA, *colormap.Colormap, colormap.Color, colormap.Color) {
	t.Helper()
	cm := colormap.New(colormap.DefaultConfig())
	n := cnfa.New()
	// Resolve each split before the next SubColor, otherwise 'b' would
	// join 'a''s pending subcolor and the two would share one color.
	colorA := cm.SubColor('a')
	if err := cm.OkColors(n); err != nil {
		t.Fatal(err)
	}
	colorB := cm.SubColor('b')
	if err := cm.OkColors(n); err != nil {
		t.Fatal(err)
	}

	s1 := n.AddState()
	n.AddArc(colormap.PlainArc, colorA, n.Pre, s1)
	n.AddArc(colormap.PlainArc, colorB, s1, n.Post)

	return cnfa.Compact(n), cm, colorA, colorB
}

func chrs(s string) []colormap.Chr {
	out := make([]colormap.Chr, len(s))
	for i, b := range []byte(s) {
		out[i] = colormap.Chr(b)
	}
	return out
}

func TestStartIsStarterAndNoProgress(t *testing.T) {
	c, cm, _, _ := buildLiteralAB(t)
	d, err := New(c, cm, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(0, 2, false, false)
	s, err := d.Start(0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Flags&Starter == 0 {
		t.Error("start state must be flagged Starter")
	}
	if s.Flags&NoProgress == 0 {
		t.Error("start state must be flagged NoProgress (reached without consuming input)")
	}
}

func TestLongestMatchesLiteral(t *testing.T) {
	c, cm, _, _ := buildLiteralAB(t)
	d, err := New(c, cm, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	input := chrs("ab")
	d.SetBounds(0, len(input), false, false)
	res, err := d.Longest(cm, input, 0, len(input))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Matched || res.End != 2 {
		t.Fatalf("Longest = %+v, want Matched=true End=2", res)
	}
}

func TestLongestDeadOnMismatch(t *testing.T) {
	c, cm, _, _ := buildLiteralAB(t)
	d, err := New(c, cm, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	input := chrs("ac")
	d.SetBounds(0, len(input), false, false)
	res, err := d.Longest(cm, input, 0, len(input))
	if err != nil {
		t.Fatal(err)
	}
	if res.Matched {
		t.Fatalf("Longest on mismatched input must not match, got %+v", res)
	}
}

func TestShortestStopsAtFirstPost(t *testing.T) {
	c, cm, _, _ := buildLiteralAB(t)
	d, err := New(c, cm, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	input := chrs("ab")
	d.SetBounds(0, len(input), false, false)
	res, err := d.Shortest(cm, input, 0, len(input))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Matched || res.End != 2 {
		t.Fatalf("Shortest = %+v, want Matched=true End=2", res)
	}
}

func TestStepMemoizesTransition(t *testing.T) {
	c, cm, colorA, _ := buildLiteralAB(t)
	d, err := New(c, cm, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(0, 2, false, false)
	start, err := d.Start(0)
	if err != nil {
		t.Fatal(err)
	}
	first, err := d.Step(start, colorA, 1)
	if err != nil {
		t.Fatal(err)
	}
	if first == nil {
		t.Fatal("expected a live transition on 'a'")
	}
	if start.Outs[colorA] != first {
		t.Fatal("Step must memoize the transition into Outs")
	}
	second, err := d.Step(start, colorA, 1)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Fatal("repeated Step on the same (src,color) must return the cached set")
	}
}

func TestStepDeadTransitionCached(t *testing.T) {
	c, cm, _, colorB := buildLiteralAB(t)
	d, err := New(c, cm, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(0, 2, false, false)
	start, err := d.Start(0)
	if err != nil {
		t.Fatal(err)
	}
	dead, err := d.Step(start, colorB, 1)
	if err != nil {
		t.Fatal(err)
	}
	if dead != nil {
		t.Fatal("start state has no arc on 'b': transition must be dead")
	}
	if start.Outs[colorB] != deadSS {
		t.Fatal("a dead transition must be memoized as deadSS")
	}
}

func TestEvictionRespectsStarterAndLocked(t *testing.T) {
	c, cm, colorA, colorB := buildLiteralAB(t)
	cfg := DefaultConfig().WithMaxStates(2)
	d, err := New(c, cm, cfg)
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(0, 2, false, false)

	start, err := d.Start(0) // cache: [start(Starter)]
	if err != nil {
		t.Fatal(err)
	}
	mid, err := d.Step(start, colorA, 1) // cache: [start, mid] (at capacity)
	if err != nil {
		t.Fatal(err)
	}
	d.Lock(mid)

	// Forcing a third distinct state set must evict something, but not
	// start (Starter) or mid (Locked) — it must fail with ErrOutOfMemory
	// since both occupants are pinned.
	_, err = d.Step(mid, colorB, 2)
	if err == nil {
		t.Fatal("expected ErrOutOfMemory when every cached state is Starter/Locked")
	}
}

func TestEvictionClearsReferringOuts(t *testing.T) {
	c, cm, colorA, colorB := buildLiteralAB(t)
	cfg := DefaultConfig().WithMaxStates(2)
	d, err := New(c, cm, cfg)
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(0, 2, false, false)

	start, err := d.Start(0)
	if err != nil {
		t.Fatal(err)
	}
	mid, err := d.Step(start, colorA, 1)
	if err != nil {
		t.Fatal(err)
	}
	if start.Outs[colorA] != mid {
		t.Fatal("setup: start--a-->mid must be memoized")
	}

	// mid is evictable (not Starter/Locked); a further Step forces it out.
	post, err := d.Step(mid, colorB, 2)
	if err != nil {
		t.Fatal(err)
	}
	if post == nil || post.Flags&PostState == 0 {
		t.Fatal("setup: expected to reach the post state")
	}
	if start.Outs[colorA] != nil {
		t.Error("evicting mid must null out start's memoized out-arc to it")
	}
}
