// Package cli provides functions to print a hand and its wait set to a
// terminal. It is used mainly to visualize test and demo output.
package cli

import (
	"strings"

	"github.com/tsumogiri/shanten/bitutil"
	"github.com/tsumogiri/shanten/format"
	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/tile"
)

var suitLabels = [tile.NumSuits]string{"m", "p", "s"}

// FormatHand renders h as one row per suit (manzu, pinzu, souzu, honors),
// each slot showing its tile count, followed by the same hand in MPS
// notation.
func FormatHand(h hand.Hand) string {
	var out strings.Builder

	for s := tile.SuitManzu; s <= tile.SuitSouzu; s++ {
		counts := h.SuitCounts(s)
		out.WriteString(suitLabels[s])
		out.WriteString("  ")
		for slot, c := range counts {
			out.WriteByte(byte('1' + slot))
			out.WriteByte(':')
			out.WriteByte('0' + c)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}

	honors := h.HonorCounts()
	out.WriteString("z  ")
	for slot, c := range honors {
		out.WriteByte('1' + byte(slot))
		out.WriteByte(':')
		out.WriteByte('0' + c)
		out.WriteString("  ")
	}
	out.WriteByte('\n')

	out.WriteString(format.MPS(h))
	out.WriteByte('\n')

	return out.String()
}

// FormatWaitSet renders a 34-bit wait bitmap as a row per suit, marking
// each accepted kind with its tile count digit and leaving the rest as
// dots — the same board-grid shape FormatHand uses, applied to a bitmap
// instead of a count vector.
func FormatWaitSet(wait uint64) string {
	var out strings.Builder

	accepted := make(map[tile.Kind]bool, bitutil.CountBits(wait))
	for _, k := range bitutil.KindsOf(wait) {
		accepted[k] = true
	}

	for s := tile.SuitManzu; s <= tile.SuitSouzu; s++ {
		base := int(s) * tile.SlotsPerNumberedSuit
		out.WriteString(suitLabels[s])
		out.WriteString("  ")
		for slot := 0; slot < tile.SlotsPerNumberedSuit; slot++ {
			out.WriteByte(byte('1' + slot))
			out.WriteByte(':')
			if accepted[base+slot] {
				out.WriteByte('1')
			} else {
				out.WriteByte('.')
			}
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}

	out.WriteString("z  ")
	for slot := 0; slot < tile.SlotsPerHonorSuit; slot++ {
		out.WriteByte('1' + byte(slot))
		out.WriteByte(':')
		if accepted[27+slot] {
			out.WriteByte('1')
		} else {
			out.WriteByte('.')
		}
		out.WriteString("  ")
	}
	out.WriteByte('\n')

	return out.String()
}
