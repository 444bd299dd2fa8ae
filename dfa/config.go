package dfa

// Config tunes the lazy DFA's state-set cache (spec.md §4.2 "Lazy subset
// construction", §4.2.3 "Cache management").
//
// Unlike the teacher's lazy.Config, there is no cache-clear-then-NFA-
// fallback knob: this core never falls back to an NFA walk. When the
// cache fills, pickss evicts the least-recently-seen evictable set
// (spec.md §4.2.3); MaxStates just bounds how large that cache is
// allowed to grow before eviction kicks in.
type Config struct {
	// MaxStates bounds how many StateSets the cache holds at once.
	//
	// Tuning guidelines mirror the teacher's: small literal-heavy
	// patterns rarely need more than a few hundred; patterns with wide
	// alternation or bounded repetition can legitimately need thousands.
	MaxStates int

	// FewColors mirrors the teacher's FEWSTATES/FEWCOLORS sizing knobs
	// (dfa/lazy). It is only checked by Validate: every state set uses a
	// flat Outs slice whatever its value, so it has no effect on how the
	// DFA runs.
	FewColors int
}

// DefaultConfig returns generous limits suitable for any realistically
// sized pattern.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10_000,
		FewColors: 16,
	}
}

// WithMaxStates returns a copy of c with MaxStates set.
func (c Config) WithMaxStates(n int) Config {
	c.MaxStates = n
	return c
}

// WithFewColors returns a copy of c with FewColors set.
func (c Config) WithFewColors(n int) Config {
	c.FewColors = n
	return c
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxStates <= 0 {
		return &Error{Kind: InvalidConfig, Message: "dfa: MaxStates must be > 0"}
	}
	if c.FewColors < 0 {
		return &Error{Kind: InvalidConfig, Message: "dfa: FewColors must be >= 0"}
	}
	return nil
}
