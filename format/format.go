// Package format renders hands into human-readable strings. It is used
// mainly to produce readable test failures and CLI output, not by the
// shanten core itself.
package format

import (
	"strings"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/tile"
)

// kanjiNames holds one kanji string per canonical tile kind, in kind-index
// order: 萬子 (0-8), 筒子 (9-17), 索子 (18-26), then the seven honors.
var kanjiNames = [tile.Length]string{
	"一萬", "二萬", "三萬", "四萬", "五萬", "六萬", "七萬", "八萬", "九萬",
	"一筒", "二筒", "三筒", "四筒", "五筒", "六筒", "七筒", "八筒", "九筒",
	"一索", "二索", "三索", "四索", "五索", "六索", "七索", "八索", "九索",
	"東", "南", "西", "北", "白", "發", "中",
}

// suitLetters is the trailing letter MPS appends once per numbered suit
// group, in suit order.
var suitLetters = [tile.NumSuits]byte{'m', 'p', 's'}

// MPS renders h in the digits-then-suit-letter notation ("123m456p789s"),
// honor tiles spelled out in kanji with no trailing letter, and a single
// space between nonempty suit groups — the same grouping tehai.cpp's
// to_mps_string uses.
func MPS(h hand.Hand) string {
	var b strings.Builder

	for s := tile.SuitManzu; s <= tile.SuitSouzu; s++ {
		counts := h.SuitCounts(s)
		var group strings.Builder
		for slot, c := range counts {
			for i := uint8(0); i < c; i++ {
				group.WriteByte(byte('1' + slot))
			}
		}
		if group.Len() > 0 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(group.String())
			b.WriteByte(suitLetters[s])
		}
	}

	honors := h.HonorCounts()
	var group strings.Builder
	for slot, c := range honors {
		for i := uint8(0); i < c; i++ {
			group.WriteString(kanjiNames[27+slot])
		}
	}
	if group.Len() > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(group.String())
	}

	return b.String()
}

// Kanji renders h as a sequence of full kanji tile names, grouped by suit
// with a single space between nonempty groups — the same grouping
// tehai.cpp's to_kanji_string uses.
func Kanji(h hand.Hand) string {
	var b strings.Builder

	for s := tile.SuitManzu; s <= tile.SuitSouzu; s++ {
		counts := h.SuitCounts(s)
		base := int(s) * tile.SlotsPerNumberedSuit
		var group strings.Builder
		for slot, c := range counts {
			for i := uint8(0); i < c; i++ {
				group.WriteString(kanjiNames[base+slot])
			}
		}
		if group.Len() > 0 {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(group.String())
		}
	}

	honors := h.HonorCounts()
	var group strings.Builder
	for slot, c := range honors {
		for i := uint8(0); i < c; i++ {
			group.WriteString(kanjiNames[27+slot])
		}
	}
	if group.Len() > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(group.String())
	}

	return b.String()
}
