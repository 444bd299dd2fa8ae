package dissect

import "github.com/coloregex/coloregex/subre"

// cdissectBackref matches a back-reference node against [begin, end):
// the referenced capture's text, repeated some number of times within
// [t.Min, t.Max], must exactly tile the span (spec.md §4.3.5). Unlike
// concat/alternation there is no real choice to backtrack over once the
// referenced text's length is known — the repeat count is forced by the
// span's length — so this does not consume a Mem slot beyond leaving it
// at 0.
func (ds *Dissector) cdissectBackref(v *Vars, t *subre.Node, begin, end int) (bool, error) {
	ref := v.PMatch[t.Subno]
	total := end - begin

	if ref == subre.NoMatch {
		// "If the referenced capture did not match (rm_so == -1),
		// return NOMATCH" (spec.md §4.3.5) — unconditional, even over
		// an empty span with Min == 0.
		return false, nil
	}

	refLen := ref.Stop - ref.Start
	if refLen == 0 {
		return total == 0, nil
	}
	if total%refLen != 0 {
		return false, nil
	}
	count := total / refLen
	if count < t.Min {
		return false, nil
	}
	if t.Max != subre.Infinity && count > t.Max {
		return false, nil
	}

	for i := 0; i < count; i++ {
		blockStart := begin + i*refLen
		for j := 0; j < refLen; j++ {
			if v.Input[blockStart+j] != v.Input[ref.Start+j] {
				return false, nil
			}
		}
	}
	return true, nil
}
