package shanten

import "github.com/tsumogiri/shanten/hand"

// Form is a bitmask tag identifying one of the three canonical winning
// shapes, adopted from required_tile_calculator.hpp's ShantenType enum
// (Regular=1, Chiitoitsu=2, Kokushimusou=4).
type Form int

const (
	FormStandard Form = 1 << iota
	FormSevenPairs
	FormThirteenOrphans
)

// FormAll requests every form; the dispatcher computes all three unless
// the caller masks some out (spec.md §9, "Three forms in one pass").
const FormAll = FormStandard | FormSevenPairs | FormThirteenOrphans

// Dispatch runs every form named in forms, keeps the strict minimum
// shanten, and on ties ORs both the wait bitmaps and the form tags
// (spec.md §4.6). Seven pairs and thirteen orphans are silently skipped
// (not errored) when the hand has called melds, since they are simply
// ineligible rather than invalid in that case.
func Dispatch(h *hand.Hand, forms Form) (Form, Result, error) {
	type attempt struct {
		tag    Form
		result Result
	}

	var attempts []attempt
	melded := len(h.Melds) > 0

	if forms&FormStandard != 0 {
		res, err := Standard(h)
		if err != nil {
			return 0, Result{}, err
		}
		attempts = append(attempts, attempt{FormStandard, res})
	}
	if forms&FormSevenPairs != 0 && !melded {
		res, err := SevenPairs(h)
		if err != nil {
			return 0, Result{}, err
		}
		attempts = append(attempts, attempt{FormSevenPairs, res})
	}
	if forms&FormThirteenOrphans != 0 && !melded {
		res, err := ThirteenOrphans(h)
		if err != nil {
			return 0, Result{}, err
		}
		attempts = append(attempts, attempt{FormThirteenOrphans, res})
	}

	if len(attempts) == 0 {
		return 0, Result{}, ErrInvalidHand
	}

	best := attempts[0]
	for _, a := range attempts[1:] {
		switch {
		case a.result.Shanten < best.result.Shanten:
			best = a
		case a.result.Shanten == best.result.Shanten:
			best.tag |= a.tag
			best.result.Wait |= a.result.Wait
		}
	}
	return best.tag, best.result, nil
}
