// Package tablecheck walks a generated table and a curated sample of
// concrete hands, checking the invariants spec.md §8 asks a correct
// implementation to satisfy. It is internal, as it is only used by
// cmd/tablegen's verify subcommand.
package tablecheck

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/shanten"
	"github.com/tsumogiri/shanten/tablefmt"
	"github.com/tsumogiri/shanten/tile"
)

// Report tallies how many of each check ran and lists the first failures
// encountered, capped so a systematically broken table doesn't flood the
// caller with thousands of identical complaints.
type Report struct {
	RoundTripChecked int
	EntriesChecked   int
	HandsChecked     int
	Failures         []string
}

// Ok reports whether every check passed.
func (r Report) Ok() bool {
	return len(r.Failures) == 0
}

const maxFailures = 20

func (r *Report) fail(format string, args ...any) {
	if len(r.Failures) >= maxFailures {
		return
	}
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Verify runs every table- and hand-level check against numbered and
// honors, logging progress through logger if non-nil.
func Verify(numbered, honors []tablefmt.Record, logger *log.Logger) Report {
	var r Report

	checkRoundTrip(numbered, honors, &r, logger)
	checkEntryRanges(numbered, 9, &r, logger)
	checkEntryRanges(honors, 7, &r, logger)
	checkUkeire(&r, logger)
	checkSuitSymmetry(&r, logger)

	return r
}

// checkRoundTrip verifies WriteTable followed by ReadTable reproduces the
// exact records passed in (spec.md §8, "table round trip").
func checkRoundTrip(numbered, honors []tablefmt.Record, r *Report, logger *log.Logger) {
	for name, records := range map[string][]tablefmt.Record{"numbered": numbered, "honors": honors} {
		var buf bytes.Buffer
		if err := tablefmt.WriteTable(&buf, records); err != nil {
			r.fail("%s table: WriteTable: %v", name, err)
			continue
		}
		got, err := tablefmt.ReadTable(&buf)
		if err != nil {
			r.fail("%s table: ReadTable: %v", name, err)
			continue
		}
		if len(got) != len(records) {
			r.fail("%s table: round trip: expected %d records got %d", name, len(records), len(got))
			continue
		}
		for i := range records {
			if got[i] != records[i] {
				r.fail("%s table: round trip mismatch at record %d", name, i)
				break
			}
		}
		r.RoundTripChecked += len(records)
	}
	if logger != nil {
		logger.Info("round trip checked", "records", r.RoundTripChecked)
	}
}

// checkEntryRanges verifies every packed entry's wait/discard bitmaps only
// ever set bits within the suit's slot width (spec.md §8, "wait set is a
// subset of the suit's tile kinds").
func checkEntryRanges(records []tablefmt.Record, slots int, r *Report, logger *log.Logger) {
	limit := uint16(1<<uint(slots)) - 1
	for _, rec := range records {
		for slot, e := range rec.Entries {
			if e.Wait&^limit != 0 {
				r.fail("hash %d slot %d: wait bitmap %#x sets bits beyond %d slots", rec.Hash, slot, e.Wait, slots)
			}
			if e.Discard&^limit != 0 {
				r.fail("hash %d slot %d: discard bitmap %#x sets bits beyond %d slots", rec.Hash, slot, e.Discard, slots)
			}
			r.EntriesChecked++
		}
	}
	if logger != nil {
		logger.Info("entry ranges checked", "entries", r.EntriesChecked)
	}
}

// sampleHands lists a small, varied set of concealed hands — two 13-tile
// tenpai hands and one 9-tile hand several tiles from complete — used by
// checkUkeire and checkSuitSymmetry.
var sampleHands = [][]tile.Kind{
	{
		tile.Manzu1, tile.Manzu2, tile.Manzu3,
		tile.Manzu4, tile.Manzu5, tile.Manzu6,
		tile.Manzu7, tile.Manzu8, tile.Manzu9,
		tile.Pinzu1, tile.Pinzu2, tile.Pinzu3,
		tile.Souzu5,
	},
	{
		tile.Manzu1, tile.Manzu2,
		tile.Pinzu4, tile.Pinzu5, tile.Pinzu6,
		tile.Souzu7, tile.Souzu8, tile.Souzu9,
		tile.East, tile.East, tile.East,
		tile.South, tile.South,
	},
	{
		tile.Manzu1, tile.Manzu4, tile.Manzu7,
		tile.Pinzu2, tile.Pinzu5,
		tile.Souzu3, tile.Souzu8,
		tile.East, tile.White,
	},
}

// checkUkeire verifies the defining property of a wait set (spec.md §8):
// adding any tile in W(h) reduces shanten by exactly one, and adding any
// tile outside W(h) never reduces it at all.
func checkUkeire(r *Report, logger *log.Logger) {
	for _, kinds := range sampleHands {
		h, err := hand.FromKinds(kinds)
		if err != nil {
			r.fail("ukeire sample: FromKinds: %v", err)
			continue
		}
		before, err := shanten.Standard(&h)
		if err != nil {
			r.fail("ukeire sample: Standard: %v", err)
			continue
		}
		if before.Shanten < -1 {
			r.fail("shanten %d for a concealed hand falls below the -1 floor", before.Shanten)
		}

		for k := 0; k < tile.Length; k++ {
			if h.Count(k) >= 4 {
				continue
			}
			probe := h
			if err := probe.Add(k); err != nil {
				r.fail("ukeire sample: Add(%d): %v", k, err)
				continue
			}
			after, err := shanten.Standard(&probe)
			if err != nil {
				r.fail("ukeire sample: Standard after Add(%d): %v", k, err)
				continue
			}

			inWait := before.Wait&(1<<uint(k)) != 0
			delta := before.Shanten - after.Shanten
			switch {
			case inWait && delta != 1:
				r.fail("kind %d in wait set but shanten changed by %d, not 1", k, delta)
			case !inWait && delta > 0:
				r.fail("kind %d outside wait set but shanten improved by %d", k, delta)
			}
			r.HandsChecked++
		}
	}
	if logger != nil {
		logger.Info("ukeire checked", "hands", r.HandsChecked)
	}
}

// checkSuitSymmetry verifies that permuting which of the three numbered
// suits holds a given count vector never changes the resulting shanten,
// since the standard-form core treats all three identically (spec.md §8,
// "symmetry: suit permutation preserves shanten").
func checkSuitSymmetry(r *Report, logger *log.Logger) {
	for _, kinds := range sampleHands {
		h, err := hand.FromKinds(kinds)
		if err != nil {
			continue
		}
		base, err := shanten.Standard(&h)
		if err != nil {
			continue
		}

		reordered, err := hand.FromKinds(rotateSuits(kinds))
		if err != nil {
			r.fail("suit symmetry: rotateSuits: %v", err)
			continue
		}
		rotatedRes, err := shanten.Standard(&reordered)
		if err != nil {
			r.fail("suit symmetry: Standard: %v", err)
			continue
		}
		if rotatedRes.Shanten != base.Shanten {
			r.fail("suit symmetry: base shanten %d, rotated shanten %d", base.Shanten, rotatedRes.Shanten)
		}
	}
}

// rotateSuits maps manzu -> pinzu -> souzu -> manzu, leaving honors in
// place, producing the same hand shape read through a cyclic suit
// relabeling.
func rotateSuits(kinds []tile.Kind) []tile.Kind {
	out := make([]tile.Kind, len(kinds))
	for i, k := range kinds {
		if tile.SuitOf(k) == tile.SuitHonor {
			out[i] = k
			continue
		}
		slot := tile.SlotOf(k)
		next := (tile.SuitOf(k) + 1) % tile.NumSuits
		out[i] = int(next)*tile.SlotsPerNumberedSuit + slot
	}
	return out
}
