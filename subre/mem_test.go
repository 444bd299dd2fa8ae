package subre

import "testing"

func TestZapSubsLeavesWholeMatch(t *testing.T) {
	pmatch := []Span{{0, 10}, {1, 3}, {4, 6}, {7, 9}}
	ZapSubs(pmatch, len(pmatch))
	if pmatch[0] != (Span{0, 10}) {
		t.Fatal("ZapSubs must not touch pmatch[0]")
	}
	for i := 1; i < len(pmatch); i++ {
		if pmatch[i] != NoMatch {
			t.Errorf("pmatch[%d] = %v, want NoMatch", i, pmatch[i])
		}
	}
}

func TestZapSubsBoundedByN(t *testing.T) {
	pmatch := []Span{{0, 10}, {1, 3}, {4, 6}}
	ZapSubs(pmatch, 2) // only reset index 1, leave 2 alone
	if pmatch[1] != NoMatch {
		t.Fatal("pmatch[1] should have been zapped")
	}
	if pmatch[2] == NoMatch {
		t.Fatal("pmatch[2] is outside [1,n) and must be untouched")
	}
}

func TestZapMemClearsSubtreeAndCaptures(t *testing.T) {
	leaf := &Node{Op: OpCapture, Subno: 2, Retry: 1, Left: &Node{Op: OpTerminal, Retry: 0}}
	mem := []int{5, 7}
	pmatch := []Span{{0, 10}, {9, 9}, {1, 4}}

	ZapMem(mem, pmatch, leaf)

	if mem[0] != 0 || mem[1] != 0 {
		t.Fatalf("mem = %v, want all zeroed in the subtree", mem)
	}
	if pmatch[2] != NoMatch {
		t.Fatalf("pmatch[2] = %v, want NoMatch (subno 2 under the OpCapture node)", pmatch[2])
	}
	if pmatch[0] != (Span{0, 10}) {
		t.Fatal("ZapMem must not touch captures outside the visited subtree")
	}
}

func TestZapMemNilSafe(t *testing.T) {
	ZapMem(nil, nil, nil) // must not panic
}
