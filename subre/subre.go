// Package subre defines the capture-structure tree the dissector (package
// dissect) walks to recover subexpression boundaries. Building this tree
// from regex surface syntax is out of scope (spec.md §1); this package
// only defines the tree shape and the small hand-building helpers the
// core's own tests use in place of a parser (spec.md §8: "tests should be
// generated from the exact compiled subre tree, not the surface syntax").
package subre

import "github.com/coloregex/coloregex/cnfa"

// Op tags a subre node's kind.
type Op byte

const (
	OpTerminal    Op = '=' // leaf: matched by the DFA directly, no further dissection
	OpAlternation Op = '|'
	OpConcat      Op = '.'
	OpCapture     Op = '('
	OpBackref     Op = 'b'
)

// Flags is a bit set on a subre node.
type Flags uint8

const (
	// Shorter marks a node that prefers the shortest match (non-greedy
	// quantifier), per spec.md §3/§4.3.3.
	Shorter Flags = 1 << iota
)

// Node is a subre tree node (spec.md §3's "Subre tree"). Left/Right are
// nil where the op doesn't use them (OpTerminal, OpBackref use neither;
// OpCapture uses only Left). Retry is an index into the caller-allocated
// retry memory vector (dissect.Vars.Mem), never a pointer, per spec.md
// §9's "pointer graphs -> indices" design note.
type Node struct {
	Op    Op
	Left  *Node
	Right *Node
	Flags Flags

	// Subno is the capture index: positive for OpCapture and OpBackref,
	// meaningless otherwise. Index 0 is reserved for the whole match.
	Subno int

	// Retry is this node's slot in the caller's retry memory vector.
	Retry int

	// Min/Max bound a back-reference's repeat count (OpBackref only).
	// Max may be Infinity.
	Min, Max int

	// CNFA drives the DFA for nodes the DFA can decide directly. An
	// OpTerminal always carries one. An OpCapture or OpConcat may carry
	// one for its whole subtree: exec scans the root node's CNFA to find
	// the match window, and dissectConcat scans a Left child's CNFA to
	// find the split point. An OpAlternation needs none (each
	// alternative supplies its own), and an OpBackref never has one.
	CNFA *cnfa.CNFA

	// Literal holds the plain-text form of this node when it is known to
	// match only one fixed string (no quantifiers, classes, or
	// alternation) — set by whatever builds the tree (hand-built in
	// tests, or a future parser). dissect/alt_literal.go uses this to
	// recognize alternations whose every alternative is a plain literal
	// and accelerate them with Aho-Corasick (SPEC_FULL.md §4.3
	// expansion). Empty means "not known to be a plain literal".
	Literal string
}

// Infinity marks an unbounded repeat count (OpBackref's Max).
const Infinity = -1

// IsShorter reports whether this node prefers the shortest match.
func (n *Node) IsShorter() bool {
	return n != nil && n.Flags&Shorter != 0
}

// Alternatives walks an OpAlternation's right-chain and returns every
// alternative's Left child in chain order (spec.md §4.3.2: "for each `|`
// node in the right-chain, try the left alternative"). The chain is
// t, t.Right, t.Right.Right, ... until a non-'|' node, which is itself
// the final alternative.
func (n *Node) Alternatives() []*Node {
	var alts []*Node
	t := n
	for t != nil && t.Op == OpAlternation {
		alts = append(alts, t.Left)
		t = t.Right
	}
	if t != nil {
		alts = append(alts, t)
	}
	return alts
}
