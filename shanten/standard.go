// Package shanten is the runtime convolution engine: it loads the
// offline-generated tables once, then answers shanten/wait queries for
// the three canonical forms (standard, seven pairs, thirteen orphans)
// and merges them through the form dispatcher. It is the direct Go
// translation of required_tile_calculator.cpp's select/calc_regular/
// calc_chiitoitsu/calc_kokushimusou/add1/shift routines.
package shanten

import (
	"fmt"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/internal/tablegen"
	"github.com/tsumogiri/shanten/meld"
	"github.com/tsumogiri/shanten/suitcode"
	"github.com/tsumogiri/shanten/tile"
)

// Result is a single form's outcome: shanten number (−1 means already
// winning) and the 34-bit wait set, tile-kind indexed.
type Result struct {
	Shanten int
	Wait    uint64
}

// Standard computes the standard-form (four sets + one pair) shanten and
// wait set for h under the default (riichi) distance convention, honoring
// h's called-meld count per spec.md §4.3's meld-adjusted set target
// m = 4 - len(melds). Equivalent to
// StandardWithConvention(h, tablegen.ConventionStandard).
func Standard(h *hand.Hand) (Result, error) {
	return StandardWithConvention(h, tablegen.ConventionStandard)
}

// StandardWithConvention is Standard, parameterized over spec.md §9's two
// distance conventions. Both conventions combine the exact same
// per-suit table data — the tables themselves are convention-invariant,
// matching create_distance_table.cpp's own `#ifdef NYANTEN` branch, which
// calls the identical table-building routine either way and differs only
// in the output file name (see internal/tablegen.BuildAll). The
// conventions diverge only in how the combined "tiles still missing"
// total is read back: ConventionStandard subtracts one so a winning hand
// reads -1 (spec.md §4.3's "Result extraction"); ConventionNyanten
// reports the raw total unshifted, so a winning hand reads 0 and tenpai
// reads 1 — the "n-shanten" counting convention some external tools use.
func StandardWithConvention(h *hand.Hand, convention tablegen.Convention) (Result, error) {
	if !TablesLoaded() {
		return Result{}, ErrTablesNotLoaded
	}
	if err := h.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidHand, err)
	}

	m := meld.EffectiveSetTarget(h.Melds)
	if m < 0 {
		return Result{}, fmt.Errorf("%w: meld count exceeds 4", ErrInvalidHand)
	}

	honorsHash, ok := suitcode.HonorHash(h.HonorCounts())
	if !ok {
		return Result{}, ErrHashMiss
	}
	honorsEntry, ok := honorLookup[honorsHash]
	if !ok {
		return Result{}, ErrHashMiss
	}

	acc := newAccumulator(honorsEntry)

	// Combine order honors -> souzu -> pinzu -> manzu produces final bit
	// offsets 27, 18, 9, 0 respectively (spec.md §4.3, "Shift policy").
	for _, suit := range []tile.Suit{tile.SuitSouzu, tile.SuitPinzu, tile.SuitManzu} {
		counts := h.SuitCounts(suit)
		suitHash, ok := suitcode.NumberedHash(counts)
		if !ok {
			return Result{}, ErrHashMiss
		}
		entry, ok := numberedLookup[suitHash]
		if !ok {
			return Result{}, ErrHashMiss
		}
		acc = combine(acc, entry, m)
	}

	idx := 5 + m
	if acc.dist[idx] >= sentinelDist {
		return Result{}, ErrHashMiss
	}

	shanten := acc.dist[idx] - 1
	if convention == tablegen.ConventionNyanten {
		shanten = acc.dist[idx]
	}

	const waitMask = (uint64(1) << tile.Length) - 1
	return Result{
		Shanten: shanten,
		Wait:    acc.wait[idx] & waitMask,
	}, nil
}
