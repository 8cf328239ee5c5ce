package tablegen

import "github.com/tsumogiri/shanten/tablefmt"

// distance computes spec.md §4.2's distance(p, w) = Σ max(w_i - p_i, 0)
// between a current count vector p and a target sub-shape w.
func distance(p, w []uint8) int {
	d := 0
	for i := range w {
		if diff := int(w[i]) - int(p[i]); diff > 0 {
			d += diff
		}
	}
	return d
}

// waitBitmap returns the 9-bit (or 7-bit) field of slots where w_i > p_i
// — slots that would realize w if a tile were drawn there.
func waitBitmap(p, w []uint8) uint16 {
	var bm uint16
	for i := range w {
		if w[i] > p[i] {
			bm |= 1 << uint(i)
		}
	}
	return bm
}

// discardBitmap returns the field of slots where w_i < p_i — slots whose
// current count strictly exceeds w's target, witnesses of overflow.
func discardBitmap(p, w []uint8) uint16 {
	var bm uint16
	for i := range w {
		if w[i] < p[i] {
			bm |= 1 << uint(i)
		}
	}
	return bm
}

// CellFor computes the packed [10]Entry table cell for a single count
// vector against patterns, without paying for a full table enumeration.
// BuildNumberedTable/BuildHonorTable use the unexported cellFor the same
// way internally; this export lets callers (tests, small tools) that
// only need a handful of specific vectors skip the ~400k-vector sweep.
func CellFor(p []uint8, patterns []Pattern) [tablefmt.RoleSlots]tablefmt.Entry {
	return cellFor(p, patterns)
}

// cellFor computes the packed [10]Entry table cell for one count vector
// p against a fixed pattern list: for every role 0..9, the minimum
// distance over patterns with that role, with wait/discard bitmaps OR'd
// across every pattern attaining the minimum (spec.md §4.2, "Table
// cell").
func cellFor(p []uint8, patterns []Pattern) [tablefmt.RoleSlots]tablefmt.Entry {
	var cell [tablefmt.RoleSlots]tablefmt.Entry
	for r := range cell {
		cell[r] = tablefmt.Entry{Dist: 255}
	}

	for _, pat := range patterns {
		r := pat.Role()
		d := distance(p, pat.Counts)
		cur := &cell[r]
		switch {
		case uint8(d) < cur.Dist:
			cur.Dist = uint8(d)
			cur.Wait = waitBitmap(p, pat.Counts)
			cur.Discard = discardBitmap(p, pat.Counts)
		case uint8(d) == cur.Dist:
			cur.Wait |= waitBitmap(p, pat.Counts)
			cur.Discard |= discardBitmap(p, pat.Counts)
		}
	}

	// A role with no attaining pattern (unreachable within 4 sets) keeps
	// the sentinel Dist 255, clamped to 14, the largest distance Pack
	// accepts, so Pack never fails; the shanten core treats such a large
	// distance as "not competitive" during the convolution.
	for r := range cell {
		if cell[r].Dist == 255 {
			cell[r].Dist = 14
		}
	}
	return cell
}
