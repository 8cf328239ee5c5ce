// Package tablegen is the offline table generator: it enumerates winning
// sub-shapes and reachable count vectors for both numbered and honor
// suits, computes per-vector minimum distance and witness bitmaps against
// every sub-shape, and writes the resulting binary tables. It is the
// direct Go translation of create_distance_table.cpp's enumeration and
// distance routines, parallelized with an errgroup worker pool in place
// of std::execution::par.
package tablegen

// Pattern is one canonical winning sub-shape of a single suit: a count
// vector contributed by some number of shuntsu, koutsu, and an optional
// head, plus the role it occupies in the convolution (how many sets it
// completes, and whether it supplies the head).
type Pattern struct {
	// Counts is the per-slot tile count this sub-shape contributes (width
	// 9 for a numbered suit, 7 for the honor suit).
	Counts []uint8
	// Sets is the number of completed sets (shuntsu + koutsu) this
	// sub-shape represents, 0..4.
	Sets int
	// HasHead reports whether this sub-shape includes the pair.
	HasHead bool
}

// Role returns the table's role-slot index for this pattern: 0..4 for
// sets-only, 5..9 for sets-plus-head (spec.md §3, "Table entry").
func (p Pattern) Role() int {
	if p.HasHead {
		return 5 + p.Sets
	}
	return p.Sets
}

const (
	maxPerSlot  = 4
	maxSets     = 4
	headTiles   = 2
	koutsuTiles = 3
	shuntsuLen  = 3
)

// chooseWithReplacement calls emit with every non-decreasing sequence of
// length k drawn from {0, ..., n-1}, i.e. combinations with replacement.
// An empty sequence (k == 0) still invokes emit once with nil.
func chooseWithReplacement(n, k int, emit func(combo []int)) {
	if k == 0 {
		emit(nil)
		return
	}
	combo := make([]int, k)
	var rec func(start, idx int)
	rec = func(start, idx int) {
		if idx == k {
			out := make([]int, k)
			copy(out, combo)
			emit(out)
			return
		}
		for v := start; v < n; v++ {
			combo[idx] = v
			rec(v, idx+1)
		}
	}
	rec(0, 0)
}

// ListNumberedPatterns enumerates every winning sub-shape of a single
// numbered suit: s shuntsu (starting slot 0..6) plus k koutsu (slot
// 0..8) plus an optional head (slot 0..8), s+k ≤ 4, discarding any
// combination whose resulting per-slot count exceeds 4.
func ListNumberedPatterns() []Pattern {
	const slots = 9
	const shuntsuStarts = slots - shuntsuLen + 1 // 7

	var patterns []Pattern

	tryAdd := func(s, k int, shuntsuCombo, koutsuCombo []int, headSlot int, hasHead bool) {
		counts := make([]uint8, slots)
		for _, start := range shuntsuCombo {
			counts[start]++
			counts[start+1]++
			counts[start+2]++
		}
		for _, slot := range koutsuCombo {
			counts[slot] += koutsuTiles
		}
		if hasHead {
			counts[headSlot] += headTiles
		}
		for _, c := range counts {
			if c > maxPerSlot {
				return
			}
		}
		patterns = append(patterns, Pattern{Counts: counts, Sets: s + k, HasHead: hasHead})
	}

	for s := 0; s <= maxSets; s++ {
		for k := 0; s+k <= maxSets; k++ {
			chooseWithReplacement(shuntsuStarts, s, func(shuntsuCombo []int) {
				chooseWithReplacement(slots, k, func(koutsuCombo []int) {
					tryAdd(s, k, shuntsuCombo, koutsuCombo, 0, false)
					for headSlot := 0; headSlot < slots; headSlot++ {
						tryAdd(s, k, shuntsuCombo, koutsuCombo, headSlot, true)
					}
				})
			})
		}
	}
	return patterns
}

// ListHonorPatterns enumerates every winning sub-shape of the honor
// suit: honors admit no shuntsu, so only k koutsu (slot 0..6) plus an
// optional head (slot 0..6), k ≤ 4.
func ListHonorPatterns() []Pattern {
	const slots = 7

	var patterns []Pattern

	tryAdd := func(k int, koutsuCombo []int, headSlot int, hasHead bool) {
		counts := make([]uint8, slots)
		for _, slot := range koutsuCombo {
			counts[slot] += koutsuTiles
		}
		if hasHead {
			counts[headSlot] += headTiles
		}
		for _, c := range counts {
			if c > maxPerSlot {
				return
			}
		}
		patterns = append(patterns, Pattern{Counts: counts, Sets: k, HasHead: hasHead})
	}

	for k := 0; k <= maxSets; k++ {
		chooseWithReplacement(slots, k, func(koutsuCombo []int) {
			tryAdd(k, koutsuCombo, 0, false)
			for headSlot := 0; headSlot < slots; headSlot++ {
				tryAdd(k, koutsuCombo, headSlot, true)
			}
		})
	}
	return patterns
}
