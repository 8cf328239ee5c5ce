package separator

import (
	"fmt"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/meld"
	"github.com/tsumogiri/shanten/suitcode"
	"github.com/tsumogiri/shanten/tile"
)

// suitBases lists the four groups Separate walks, in handseparator.cpp's
// create_block_patterns depth order: manzu, pinzu, souzu, honors.
var suitBases = [...]tile.Suit{tile.SuitManzu, tile.SuitPinzu, tile.SuitSouzu, tile.SuitHonor}

func baseOf(s tile.Suit) int {
	switch s {
	case tile.SuitManzu:
		return 0
	case tile.SuitPinzu:
		return 9
	case tile.SuitSouzu:
		return 18
	default:
		return 27
	}
}

// Separate enumerates every way to read h's called melds plus concealed
// tiles as four blocks and a pair, and classifies the wait shape each
// reading assigns to winTile: ryanmen, kanchan, penchan, shanpon, or
// tanki (spec.md §4.7, ported from handseparator.cpp's
// create_block_patterns). tumo marks a self-draw; a ron completion
// additionally flags the completed block Open, mirroring the original's
// distinction (used elsewhere for concealed-only yaku).
func Separate(h *hand.Hand, winTile tile.Kind, tumo bool) ([]Decomposition, error) {
	var base []Block
	for _, m := range h.Melds {
		b, err := meldBlock(m)
		if err != nil {
			return nil, err
		}
		base = append(base, b)
	}

	var results []Decomposition
	walkSuit(h, 0, base, winTile, tumo, &results)
	return results, nil
}

func meldBlock(m meld.Meld) (Block, error) {
	if len(m.Tiles) == 0 {
		return Block{}, fmt.Errorf("separator: meld has no tiles")
	}
	min := m.Tiles[0]
	for _, t := range m.Tiles {
		if t < min {
			min = t
		}
	}
	switch m.Kind {
	case meld.Chi:
		return Block{Kind: Shuntsu, MinTile: min, Open: true, Called: true}, nil
	case meld.Ankan:
		return Block{Kind: Koutsu, MinTile: min, Open: false, Called: true}, nil
	default: // Pon, Minkan, Kakan
		return Block{Kind: Koutsu, MinTile: min, Open: true, Called: true}, nil
	}
}

// walkSuit recurses over the four suit groups, appending every exact
// block tiling of each group's count vector onto blocks before
// classifying the completed combination once all four have been chosen.
// A combination is classified only if it holds at least four sets and
// exactly one pair.
func walkSuit(h *hand.Hand, depth int, blocks []Block, winTile tile.Kind, tumo bool, results *[]Decomposition) {
	if depth == len(suitBases) {
		sets, pairs := 0, 0
		for _, b := range blocks {
			if b.Kind == Toitsu {
				pairs++
			} else {
				sets++
			}
		}
		if sets < 4 || pairs != 1 {
			return
		}
		classify(blocks, winTile, tumo, results)
		return
	}

	suit := suitBases[depth]
	base := baseOf(suit)

	var decomps [][]localBlock
	var ok bool
	if suit == tile.SuitHonor {
		hash, found := suitcode.HonorHash(h.HonorCounts())
		if found {
			decomps, ok = honorTable[hash]
		}
	} else {
		hash, found := suitcode.NumberedHash(h.SuitCounts(suit))
		if found {
			decomps, ok = numberedTable[hash]
		}
	}
	if !ok {
		return // no exact tiling for this suit's current tiles
	}

	for _, decomp := range decomps {
		start := len(blocks)
		for _, lb := range decomp {
			blocks = append(blocks, Block{Kind: lb.kind, MinTile: base + lb.slot})
		}
		walkSuit(h, depth+1, blocks, winTile, tumo, results)
		blocks = blocks[:start]
	}
}

// classify inspects every block in blocks not built from a called meld
// (Block.Called false) for one
// that winTile would have completed, appending a Decomposition per
// qualifying block — a hand can read the same winning tile more than one
// way when the tiling is ambiguous.
func classify(blocks []Block, winTile tile.Kind, tumo bool, results *[]Decomposition) {
	for i, b := range blocks {
		if b.Called {
			continue
		}

		var wait WaitKind
		var matched bool
		switch {
		case b.Kind == Koutsu && b.MinTile == winTile:
			wait, matched = Shanpon, true
		case b.Kind == Shuntsu && b.MinTile+1 == winTile:
			wait, matched = Kanchan, true
		case b.Kind == Shuntsu && b.MinTile+2 == winTile && isSuitTerminalLow(b.MinTile):
			wait, matched = Penchan, true
		case b.Kind == Shuntsu && b.MinTile == winTile && isSuitTerminalHigh(b.MinTile):
			wait, matched = Penchan, true
		case b.Kind == Shuntsu && (b.MinTile == winTile || b.MinTile+2 == winTile):
			wait, matched = Ryanmen, true
		case b.Kind == Toitsu && b.MinTile == winTile:
			wait, matched = Tanki, true
		}
		if !matched {
			continue
		}

		snapshot := make([]Block, len(blocks))
		copy(snapshot, blocks)
		if !tumo {
			snapshot[i].Open = true
		}
		*results = append(*results, Decomposition{Blocks: snapshot, Wait: wait})
	}
}

func isSuitTerminalLow(k tile.Kind) bool {
	return k == tile.Manzu1 || k == tile.Pinzu1 || k == tile.Souzu1
}

func isSuitTerminalHigh(k tile.Kind) bool {
	return k == tile.Manzu7 || k == tile.Pinzu7 || k == tile.Souzu7
}
