package colormap

import "testing"

func TestNewColormapAllWhite(t *testing.T) {
	cm := New(DefaultConfig())
	for _, c := range []Chr{CHRMIN, 1, 100, 0x1234, CHRMAX} {
		if got := cm.GetColor(c); got != WHITE {
			t.Errorf("GetColor(%d) = %d, want WHITE", c, got)
		}
	}
}

func TestSetColorBeforeFill(t *testing.T) {
	cm := New(DefaultConfig())
	prev := cm.SetColor('a', 5)
	if prev != WHITE {
		t.Fatalf("SetColor returned prev=%d, want WHITE", prev)
	}
	if got := cm.GetColor('a'); got != 5 {
		t.Fatalf("GetColor('a') = %d, want 5", got)
	}
	// Unrelated code points are untouched.
	if got := cm.GetColor('b'); got != WHITE {
		t.Fatalf("GetColor('b') = %d, want WHITE", got)
	}
}

func TestFillcmIdempotentAndPreservesColors(t *testing.T) {
	cm := New(DefaultConfig())
	cm.SetColor('a', 5)
	cm.SetColor(0x1000, 7)

	if err := cm.Fillcm(); err != nil {
		t.Fatalf("Fillcm: %v", err)
	}
	if err := cm.Fillcm(); err != nil {
		t.Fatalf("second Fillcm: %v", err)
	}
	if !cm.Filled() {
		t.Fatal("Filled() = false after Fillcm")
	}

	if got := cm.GetColor('a'); got != 5 {
		t.Errorf("GetColor('a') = %d, want 5", got)
	}
	if got := cm.GetColor(0x1000); got != 7 {
		t.Errorf("GetColor(0x1000) = %d, want 7", got)
	}
	if got := cm.GetColor('b'); got != WHITE {
		t.Errorf("GetColor('b') = %d, want WHITE (fill spine default)", got)
	}
	if got := cm.GetColor(CHRMAX); got != WHITE {
		t.Errorf("GetColor(CHRMAX) = %d, want WHITE", got)
	}
}

func TestCountConservation(t *testing.T) {
	cm := New(DefaultConfig())
	total := func() int {
		sum := 0
		for i := 0; i < cm.NumColors(); i++ {
			cd := cm.Desc(Color(i))
			if cd.Flags&PSEUDO == 0 {
				sum += cd.Nchrs
			}
		}
		return sum
	}

	want := int(CHRMAX-CHRMIN) + 1
	if got := total(); got != want {
		t.Fatalf("initial total = %d, want %d", got, want)
	}

	// Split 'a' into its own subcolor directly (no pending split, Nchrs>1).
	sub := cm.SubColor('a')
	if sub == WHITE {
		t.Fatal("SubColor did not allocate a new color")
	}
	if got := total(); got != want {
		t.Fatalf("total after SubColor = %d, want %d", got, want)
	}

	nfa := newFakeNFA()
	if err := cm.OkColors(nfa); err != nil {
		t.Fatalf("OkColors: %v", err)
	}
	if got := total(); got != want {
		t.Fatalf("total after OkColors = %d, want %d", got, want)
	}
	if cm.Desc(sub).Sub != NOSUB {
		t.Errorf("Desc(sub).Sub = %d, want NOSUB after OkColors", cm.Desc(sub).Sub)
	}
	if cm.Desc(WHITE).Sub != NOSUB {
		t.Errorf("Desc(WHITE).Sub = %d, want NOSUB after OkColors", cm.Desc(WHITE).Sub)
	}
}

func TestOutOfMemory(t *testing.T) {
	cm := New(Config{MaxNodes: 1, MaxColors: 1 << 12})
	// The very first SetColor must allocate at least one node (NBYTS>1 so
	// at least a root interior node); cap it at 1 allocated node total so
	// the second required allocation (the leaf) fails.
	cm.SetColor('a', 5)
	if cm.Err() == nil {
		t.Fatal("expected sticky OutOfMemory error, got nil")
	}
	var cmErr *Error
	if !As(cm.Err(), &cmErr) || cmErr.Kind != OutOfMemory {
		t.Fatalf("Err() = %v, want *Error{Kind: OutOfMemory}", cm.Err())
	}
	// Sticky: subsequent operations short-circuit.
	if got := cm.SetColor('b', 6); got != COLORLESS {
		t.Errorf("SetColor after latched error = %d, want COLORLESS", got)
	}
	if got := cm.NewColor(); got != COLORLESS {
		t.Errorf("NewColor after latched error = %d, want COLORLESS", got)
	}
}

// As is a tiny local errors.As to avoid importing errors just for one
// call in this test file.
func As(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestColorConfigValidate(t *testing.T) {
	cfg := Config{MaxNodes: 0, MaxColors: 10}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxNodes=0")
	}
	cfg = Config{MaxNodes: 10, MaxColors: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxColors=0")
	}
	cfg = DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate: %v", err)
	}
}
