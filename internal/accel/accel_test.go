package accel

import (
	"testing"

	"github.com/coloregex/coloregex/colormap"
)

func TestIndexByte(t *testing.T) {
	cases := []struct {
		s    string
		b    byte
		want int
	}{
		{"", 'a', -1},
		{"abc", 'b', 1},
		{"abcdefghij", 'j', 9},
		{"abcdefghij", 'z', -1},
		{"aaaaaaaaab", 'b', 9},
	}
	for _, c := range cases {
		if got := IndexByte([]byte(c.s), c.b); got != c.want {
			t.Errorf("IndexByte(%q, %q) = %d, want %d", c.s, c.b, got, c.want)
		}
	}
}

func TestIndexChrFallsBackOutsideByteRange(t *testing.T) {
	s := []colormap.Chr{0x100, 0x101, 'x', 'y'}
	if got := IndexChr(s, 0, 'x'); got != 2 {
		t.Fatalf("IndexChr = %d, want 2", got)
	}
	if got := IndexChr(s, 0, 0x101); got != 1 {
		t.Fatalf("IndexChr = %d, want 1", got)
	}
	if got := IndexChr(s, 0, 'z'); got != -1 {
		t.Fatalf("IndexChr = %d, want -1", got)
	}
}

func TestIndexChrFromOffset(t *testing.T) {
	s := []colormap.Chr{'a', 'b', 'a', 'b'}
	if got := IndexChr(s, 1, 'a'); got != 2 {
		t.Fatalf("IndexChr = %d, want 2", got)
	}
	if got := IndexChr(s, 3, 'a'); got != -1 {
		t.Fatalf("IndexChr = %d, want -1", got)
	}
}
