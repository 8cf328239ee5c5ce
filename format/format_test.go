package format_test

import (
	"testing"

	"github.com/tsumogiri/shanten/format"
	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/tile"
)

func TestMPS(t *testing.T) {
	testcases := []struct {
		name     string
		kinds    []tile.Kind
		expected string
	}{
		{
			"single manzu run",
			[]tile.Kind{tile.Manzu1, tile.Manzu2, tile.Manzu3},
			"123m",
		},
		{
			"mixed suits",
			[]tile.Kind{
				tile.Manzu1, tile.Manzu2, tile.Manzu3,
				tile.Pinzu4, tile.Pinzu5, tile.Pinzu6,
				tile.Souzu7, tile.Souzu8, tile.Souzu9,
			},
			"123m 456p 789s",
		},
		{
			"honors spelled out, no trailing letter",
			[]tile.Kind{tile.East, tile.East, tile.South},
			"東東南",
		},
		{
			"numbered suits and honors together",
			[]tile.Kind{tile.Manzu1, tile.Manzu1, tile.White, tile.White},
			"11m 白白",
		},
		{
			"empty hand",
			nil,
			"",
		},
	}

	for _, tc := range testcases {
		h, err := hand.FromKinds(tc.kinds)
		if err != nil {
			t.Fatalf("%s: FromKinds: unexpected error %v", tc.name, err)
		}
		if got := format.MPS(h); got != tc.expected {
			t.Fatalf("%s\nexpected:%q\ngot:%q", tc.name, tc.expected, got)
		}
	}
}

func TestKanji(t *testing.T) {
	testcases := []struct {
		name     string
		kinds    []tile.Kind
		expected string
	}{
		{
			"single manzu run",
			[]tile.Kind{tile.Manzu1, tile.Manzu2, tile.Manzu3},
			"一萬二萬三萬",
		},
		{
			"mixed suits",
			[]tile.Kind{
				tile.Manzu1, tile.Manzu2, tile.Manzu3,
				tile.Pinzu4, tile.Pinzu5, tile.Pinzu6,
				tile.Souzu7, tile.Souzu8, tile.Souzu9,
			},
			"一萬二萬三萬 四筒五筒六筒 七索八索九索",
		},
		{
			"honors",
			[]tile.Kind{tile.East, tile.East, tile.South},
			"東東南",
		},
		{
			"empty hand",
			nil,
			"",
		},
	}

	for _, tc := range testcases {
		h, err := hand.FromKinds(tc.kinds)
		if err != nil {
			t.Fatalf("%s: FromKinds: unexpected error %v", tc.name, err)
		}
		if got := format.Kanji(h); got != tc.expected {
			t.Fatalf("%s\nexpected:%q\ngot:%q", tc.name, tc.expected, got)
		}
	}
}
