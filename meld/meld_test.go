package meld_test

import (
	"testing"

	"github.com/tsumogiri/shanten/meld"
	"github.com/tsumogiri/shanten/tile"
)

func TestTileCount(t *testing.T) {
	testcases := []struct {
		kind     meld.Kind
		expected int
	}{
		{meld.Pon, 3},
		{meld.Chi, 3},
		{meld.Ankan, 4},
		{meld.Minkan, 4},
		{meld.Kakan, 4},
	}

	for _, tc := range testcases {
		if got := tc.kind.TileCount(); got != tc.expected {
			t.Fatalf("TileCount(%d): expected %d got %d", tc.kind, tc.expected, got)
		}
	}
}

func TestIsConcealed(t *testing.T) {
	if !meld.Ankan.IsConcealed() {
		t.Fatal("ankan should be concealed")
	}
	for _, k := range []meld.Kind{meld.Pon, meld.Chi, meld.Minkan, meld.Kakan} {
		if k.IsConcealed() {
			t.Fatalf("%d should not be concealed", k)
		}
	}
}

func TestEffectiveSetTarget(t *testing.T) {
	testcases := []struct {
		name     string
		melds    []meld.Meld
		expected int
	}{
		{"no melds", nil, 4},
		{"one pon", []meld.Meld{{Kind: meld.Pon, Tiles: []tile.Kind{tile.East, tile.East, tile.East}}}, 3},
		{
			"two pons",
			[]meld.Meld{
				{Kind: meld.Pon, Tiles: []tile.Kind{tile.Manzu1, tile.Manzu1, tile.Manzu1}},
				{Kind: meld.Pon, Tiles: []tile.Kind{tile.Pinzu5, tile.Pinzu5, tile.Pinzu5}},
			},
			2,
		},
	}

	for _, tc := range testcases {
		if got := meld.EffectiveSetTarget(tc.melds); got != tc.expected {
			t.Fatalf("test %q failed: expected %d got %d", tc.name, tc.expected, got)
		}
	}
}
