// Package separator decomposes a complete (or near-complete) hand into
// its constituent blocks — shuntsu, koutsu, toitsu — and classifies the
// wait shape (ryanmen, kanchan, penchan, shanpon, tanki) that the winning
// or waited-on tile completes. It is the Go translation of
// handseparator.cpp's create_block_patterns/make_table/get_blocks: a
// precomputed per-suit table of every exact block tiling of a count
// vector, combined across manzu/pinzu/souzu/honors and melds via a
// depth-4 recursive walk.
package separator

import "github.com/tsumogiri/shanten/tile"

// BlockKind identifies the shape of one completed block.
type BlockKind int

const (
	Shuntsu BlockKind = iota
	Koutsu
	Toitsu
)

// Block is one completed group: a run, triplet, or pair, anchored at its
// lowest tile kind (for Shuntsu, the run's first tile).
type Block struct {
	Kind BlockKind
	// MinTile is the block's anchor tile in absolute kind space (0..33).
	MinTile tile.Kind
	// Open marks a block drawn from a called meld (pon/chi/minkan/kakan),
	// or — once Separate has picked the block the winning tile completed —
	// a ron rather than tsumo win.
	Open bool
	// Called marks any block built from a meld, concealed or not (so an
	// ankan is Called but not Open). A called block is always already
	// fixed and can never be the one the winning tile completes.
	Called bool
}

// WaitKind classifies the shape of the block the winning or waited-on
// tile completes.
type WaitKind int

const (
	Ryanmen WaitKind = iota
	Kanchan
	Penchan
	Shanpon
	Tanki
)

// Decomposition is one full way to read the hand's fourteen tiles as four
// blocks plus a pair, together with the wait kind the winning tile
// resolved.
type Decomposition struct {
	Blocks []Block
	Wait   WaitKind
}
