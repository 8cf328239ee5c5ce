package shanten

import (
	"fmt"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/tile"
)

// ThirteenOrphans computes the thirteen-orphans form's shanten and wait
// set over the thirteen terminal/honor kinds (spec.md §4.5). Called
// melds disqualify this form.
func ThirteenOrphans(h *hand.Hand) (Result, error) {
	if err := h.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidHand, err)
	}
	if len(h.Melds) > 0 {
		return Result{}, fmt.Errorf("%w: thirteen orphans is not eligible with called melds", ErrInvalidHand)
	}

	types := 0
	hasPair := false
	for _, k := range tile.TerminalsAndHonors {
		c := h.Count(k)
		if c >= 1 {
			types++
		}
		if c >= 2 {
			hasPair = true
		}
	}

	pairBit := 0
	if hasPair {
		pairBit = 1
	}
	shanten := 13 - types - pairBit

	var wait uint64
	for _, k := range tile.TerminalsAndHonors {
		c := h.Count(k)
		if hasPair {
			if c == 0 {
				wait |= 1 << uint(k)
			}
		} else {
			if c == 0 || c == 1 {
				wait |= 1 << uint(k)
			}
		}
	}

	return Result{Shanten: shanten, Wait: wait}, nil
}
