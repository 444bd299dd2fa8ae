package colormap

// Config bounds the two arenas a colormap grows into (trie nodes, color
// descriptors). Real allocation failure is not something Go code hits in
// practice the way the original C engine does, so these caps are what
// make the "out of memory" path in spec §4.1/§4.2.5 an observable,
// testable condition rather than a hypothetical one — shrink them in a
// test to force ErrOutOfMemory deterministically.
type Config struct {
	// MaxNodes bounds the trie's node arena (interior + leaf nodes).
	MaxNodes int
	// MaxColors bounds the color descriptor table.
	MaxColors int
}

// DefaultConfig returns generous limits suitable for any realistically
// sized pattern.
func DefaultConfig() Config {
	return Config{
		MaxNodes:  1 << 16,
		MaxColors: 1 << 12,
	}
}

// WithMaxNodes returns a copy of c with MaxNodes set.
func (c Config) WithMaxNodes(n int) Config {
	c.MaxNodes = n
	return c
}

// WithMaxColors returns a copy of c with MaxColors set.
func (c Config) WithMaxColors(n int) Config {
	c.MaxColors = n
	return c
}

// Validate reports whether the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxNodes <= 0 {
		return &Error{Kind: InvalidConfig, Message: "colormap: MaxNodes must be > 0"}
	}
	if c.MaxColors <= 0 {
		return &Error{Kind: InvalidConfig, Message: "colormap: MaxColors must be > 0"}
	}
	return nil
}
