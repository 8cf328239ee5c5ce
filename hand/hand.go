// Package hand represents a player's tiles: a 34-slot count vector, an
// ordered list of called melds, and a bit-packed dual view (three 9-slot
// numbered suits plus one 7-slot honor field, three bits per slot) kept in
// lock-step with the counts on every mutation. The bit-packed view is what
// suitcode hashes and what the shanten core consumes.
package hand

import (
	"fmt"

	"github.com/tsumogiri/shanten/meld"
	"github.com/tsumogiri/shanten/tile"
)

// bitsPerSlot is the width reserved for one count (0..4 fits in 3 bits;
// the top bit of the 3 acts as an overflow sentinel that never legally
// sets for a valid hand).
const bitsPerSlot = 3

// Hand is a 34-kind tile multiset plus any called melds.
type Hand struct {
	counts [tile.Length]uint8
	// suits holds the three numbered suits' bit-packed count vectors,
	// indexed by tile.Suit (SuitManzu, SuitPinzu, SuitSouzu).
	suits [tile.NumSuits]uint32
	// honors is the bit-packed honor-suit count vector.
	honors uint32
	Melds  []meld.Meld
}

// New returns an empty hand.
func New() Hand {
	return Hand{}
}

// Count returns the current count of a canonical or red-five-aliased
// kind. Red fives report the count of their black sibling.
func (h *Hand) Count(k tile.Kind) uint8 {
	return h.counts[tile.Canonicalize(k)]
}

// Total returns the sum of all 34 slot counts (melded tiles not included
// unless the caller has also added them via Add).
func (h *Hand) Total() int {
	total := 0
	for _, c := range h.counts {
		total += int(c)
	}
	return total
}

// Add increments the count of k (canonicalizing red fives) and updates
// the packed bit view in lock-step. Returns an error if the slot would
// exceed 4.
func (h *Hand) Add(k tile.Kind) error {
	ck := tile.Canonicalize(k)
	if h.counts[ck] >= 4 {
		return fmt.Errorf("hand: slot %d already at maximum count 4", ck)
	}
	h.counts[ck]++
	h.setPacked(ck, h.counts[ck])
	return nil
}

// Remove decrements the count of k (canonicalizing red fives) and updates
// the packed bit view in lock-step. Returns an error if the slot is
// already zero.
func (h *Hand) Remove(k tile.Kind) error {
	ck := tile.Canonicalize(k)
	if h.counts[ck] == 0 {
		return fmt.Errorf("hand: slot %d already at zero count", ck)
	}
	h.counts[ck]--
	h.setPacked(ck, h.counts[ck])
	return nil
}

// setPacked writes count into the 3-bit field of ck's slot in the packed
// suit/honor view, replacing whatever was there.
func (h *Hand) setPacked(ck tile.Kind, count uint8) {
	slot := tile.SlotOf(ck)
	shift := uint(slot * bitsPerSlot)
	mask := uint32(0x7) << shift
	field := uint32(count) << shift

	if tile.SuitOf(ck) == tile.SuitHonor {
		h.honors = (h.honors &^ mask) | field
		return
	}
	s := tile.SuitOf(ck)
	h.suits[s] = (h.suits[s] &^ mask) | field
}

// SuitCounts returns the 9-slot count vector for one of the three
// numbered suits, derived from the canonical counts array (not the
// packed view — callers needing the packed view use PackedSuit).
func (h *Hand) SuitCounts(s tile.Suit) [tile.SlotsPerNumberedSuit]uint8 {
	var out [tile.SlotsPerNumberedSuit]uint8
	base := 0
	switch s {
	case tile.SuitManzu:
		base = 0
	case tile.SuitPinzu:
		base = 9
	case tile.SuitSouzu:
		base = 18
	default:
		return out
	}
	for i := 0; i < tile.SlotsPerNumberedSuit; i++ {
		out[i] = h.counts[base+i]
	}
	return out
}

// HonorCounts returns the 7-slot count vector for the honor suit.
func (h *Hand) HonorCounts() [tile.SlotsPerHonorSuit]uint8 {
	var out [tile.SlotsPerHonorSuit]uint8
	for i := 0; i < tile.SlotsPerHonorSuit; i++ {
		out[i] = h.counts[27+i]
	}
	return out
}

// PackedSuit returns the bit-packed count vector for one of the three
// numbered suits.
func (h *Hand) PackedSuit(s tile.Suit) uint32 {
	if s == tile.SuitHonor {
		return h.honors
	}
	return h.suits[s]
}

// PackedHonors returns the bit-packed honor-suit count vector.
func (h *Hand) PackedHonors() uint32 {
	return h.honors
}

// Validate checks the invariants spec.md §3 places on a hand: every slot
// in [0, 4], and the total concealed count plus melded tiles in [1, 14].
func (h *Hand) Validate() error {
	for k, c := range h.counts {
		if c > 4 {
			return fmt.Errorf("hand: slot %d count %d exceeds maximum 4", k, c)
		}
	}
	total := h.Total() + len(h.Melds)*3
	// Kan melds hold 4 physical tiles but still only occupy one set's
	// worth of "slots" in the 14-tile budget; approximate with 3 per meld
	// as spec.md's effective-tile formula (13 - 3*meldCount) does.
	if total > 14 {
		return fmt.Errorf("hand: total tile count %d exceeds maximum 14", total)
	}
	if total < 1 {
		return fmt.Errorf("hand: empty hand")
	}
	if len(h.Melds) > 4 {
		return fmt.Errorf("hand: meld count %d exceeds maximum 4", len(h.Melds))
	}
	return nil
}

// FromCounts builds a Hand directly from a 34-slot count array, useful for
// test fixtures and table generation. It does not validate; call Validate
// separately.
func FromCounts(counts [tile.Length]uint8) Hand {
	h := New()
	for k, c := range counts {
		for i := uint8(0); i < c && i < 4; i++ {
			_ = h.Add(k)
		}
	}
	return h
}

// FromKinds builds a Hand by adding one tile per element of kinds, which
// may include red-five alias kinds.
func FromKinds(kinds []tile.Kind) (Hand, error) {
	h := New()
	for _, k := range kinds {
		if err := h.Add(k); err != nil {
			return h, err
		}
	}
	return h, nil
}
