package shanten

import "github.com/tsumogiri/shanten/tablefmt"

// sentinelDist is larger than any real distance (maximum 14 per suit,
// times four suits, comfortably fits under this) so it never wins a min
// comparison against a reachable candidate.
const sentinelDist = 1 << 20

// accumulator is the explicit {dist, wait} record spec.md §9 asks for,
// one pair per role slot (0..4 no-head, 5..9 head-bearing). wait widens
// by 9 bits on every combine, reserving room for the next suit's 9-bit
// field — see combine.
type accumulator struct {
	dist [tablefmt.RoleSlots]int
	wait [tablefmt.RoleSlots]uint64
}

// newAccumulator seeds an accumulator directly from a suit's table
// entries — used to initialize the convolution from the honors entry,
// the first group combined per spec.md §4.3.
func newAccumulator(entries [tablefmt.RoleSlots]tablefmt.Entry) accumulator {
	var a accumulator
	for r, e := range entries {
		a.dist[r] = int(e.Dist)
		a.wait[r] = uint64(e.Wait)
	}
	return a
}

// validPair reports whether (a, b) is a legal partition of target role r
// under spec.md §4.3's "exactly one group supplies the head" rule: for
// r in the head-bearing range [5,9], exactly one of a, b must itself be
// head-bearing; for r in the no-head range [0,4], neither may be.
func validPair(r, a, b int) bool {
	if b < 0 || b > 9 {
		return false
	}
	if r >= 5 {
		return (a >= 5) != (b >= 5)
	}
	return a < 5 && b < 5
}

// combine folds suit entry b into accumulator a, producing the
// convolution for role range [0, m] ∪ [5, m+5] — spec.md §4.3's
// "r = m+5 .. 5, then r = m .. 0" iteration order. Every other role slot
// is left at the sentinel distance, since the final extraction only ever
// reads index 5+m.
//
// For each target r, a candidate partition r = x + y takes distance
// a.dist[x] + b[y].Dist and wait (a.wait[x] shifted left 9) | b[y].Wait —
// the shift makes room for the incoming suit's own 9-bit field in the
// low bits, matching spec.md §4.3's shift policy. Ties OR the wait
// bitmaps; strict improvements replace them.
func combine(a accumulator, b [tablefmt.RoleSlots]tablefmt.Entry, m int) accumulator {
	var out accumulator
	for r := range out.dist {
		out.dist[r] = sentinelDist
	}

	fill := func(r int) {
		bestDist := sentinelDist
		var bestWait uint64
		for x := 0; x <= r && x <= 9; x++ {
			y := r - x
			if !validPair(r, x, y) {
				continue
			}
			d := a.dist[x] + int(b[y].Dist)
			w := (a.wait[x] << 9) | uint64(b[y].Wait)
			switch {
			case d < bestDist:
				bestDist = d
				bestWait = w
			case d == bestDist:
				bestWait |= w
			}
		}
		out.dist[r] = bestDist
		out.wait[r] = bestWait
	}

	for r := m + 5; r >= 5; r-- {
		fill(r)
	}
	for r := m; r >= 0; r-- {
		fill(r)
	}
	return out
}
