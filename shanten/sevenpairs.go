package shanten

import (
	"fmt"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/tile"
)

// SevenPairs computes the seven-pairs form's shanten and wait set
// (spec.md §4.4). Called melds make the hand ineligible; the dispatcher
// skips this form when any meld is present, but SevenPairs itself still
// reports an error so it's never silently miscounted if called directly.
func SevenPairs(h *hand.Hand) (Result, error) {
	if err := h.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidHand, err)
	}
	if len(h.Melds) > 0 {
		return Result{}, fmt.Errorf("%w: seven pairs is not eligible with called melds", ErrInvalidHand)
	}

	var types, pairs int
	var wait uint64
	for k := 0; k < tile.Length; k++ {
		c := h.Count(k)
		if c >= 1 {
			types++
		}
		if c >= 2 {
			pairs++
		}
	}

	shortOfTypes := 7 - types
	if shortOfTypes < 0 {
		shortOfTypes = 0
	}
	shanten := 6 - pairs + shortOfTypes

	switch {
	case types < 7:
		for k := 0; k < tile.Length; k++ {
			c := h.Count(k)
			if c == 0 || c == 1 {
				wait |= 1 << uint(k)
			}
		}
	case pairs == 7:
		// Already winning; wait stays empty.
	default:
		for k := 0; k < tile.Length; k++ {
			if h.Count(k) == 1 {
				wait |= 1 << uint(k)
			}
		}
	}

	return Result{Shanten: shanten, Wait: wait}, nil
}
