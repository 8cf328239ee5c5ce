// Package meld models called blocks: pon, chi, ankan, minkan, kakan. A
// placed meld removes its tiles from the concealed count and reduces the
// number of sets the shanten core must still find among the remaining
// concealed tiles.
package meld

import "github.com/tsumogiri/shanten/tile"

// Kind identifies which of the five ways a block can be called.
type Kind int

const (
	Pon Kind = iota
	Chi
	Ankan
	Minkan
	Kakan
)

// TileCount reports how many physical tiles a meld of this kind occupies.
func (k Kind) TileCount() int {
	switch k {
	case Pon, Chi:
		return 3
	case Ankan, Minkan, Kakan:
		return 4
	default:
		return 0
	}
}

// IsConcealed reports whether a meld of this kind counts as closed for
// yaku purposes. Ankan is the only concealed call.
func (k Kind) IsConcealed() bool {
	return k == Ankan
}

// Meld is a single called block.
type Meld struct {
	Kind Kind
	// Tiles holds the called-block's constituent tile kinds, in the order
	// they form the block (ascending for chi, identical for pon/kan).
	Tiles []tile.Kind
	// CalledIndex is the position within Tiles of the tile taken from
	// another player; unused (and zero) for ankan.
	CalledIndex int
	// Source is the seat offset the tile was called from (1 = left/kamicha,
	// 2 = across/toimen, 3 = right/shimocha); unused for ankan.
	Source int
}

// SetCount reports how many of the four required standard-form sets this
// meld contributes (always exactly one — a meld is always a completed
// set, never a partial shape or the pair).
func (m Meld) SetCount() int {
	return 1
}

// EffectiveSetTarget returns the meld-adjusted number of sets the
// concealed hand must still supply: m = 4 - len(melds).
func EffectiveSetTarget(melds []Meld) int {
	return 4 - len(melds)
}
