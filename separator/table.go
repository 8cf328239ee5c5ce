package separator

import "github.com/tsumogiri/shanten/suitcode"

// localBlock is a Block before its suit's base offset has been added to
// MinTile — table entries are suit-agnostic, shared by manzu/pinzu/souzu.
type localBlock struct {
	kind BlockKind
	slot int
}

// numberedTable maps a numbered-suit dense hash (spec.md §4.1's
// suitcode.NumberedHash) to every exact block tiling of that count
// vector: zero or more shuntsu/koutsu plus at most one toitsu, covering
// every tile with none left over. Entries with no exact tiling are
// simply absent, mirroring handseparator.cpp's s_tbl_[key].empty() check.
var numberedTable = buildNumberedTable()

// honorTable is numberedTable's honor-suit counterpart: koutsu and toitsu
// only, since honor tiles never form a run.
var honorTable = buildHonorTable()

func buildNumberedTable() map[uint32][][]localBlock {
	out := make(map[uint32][][]localBlock)
	for idx := 0; idx < suitcode.NumberedSpaceSize(); idx++ {
		vec := suitcode.DecodeNumbered(uint32(idx))
		counts := vec[:]
		decomps := decompose(counts, true)
		if len(decomps) > 0 {
			out[uint32(idx)] = decomps
		}
	}
	return out
}

func buildHonorTable() map[uint32][][]localBlock {
	out := make(map[uint32][][]localBlock)
	for idx := 0; idx < suitcode.HonorSpaceSize(); idx++ {
		vec := suitcode.DecodeHonor(uint32(idx))
		counts := vec[:]
		decomps := decompose(counts, false)
		if len(decomps) > 0 {
			out[uint32(idx)] = decomps
		}
	}
	return out
}

// decompose enumerates every way to exactly tile counts with shuntsu
// (numbered suits only), koutsu, and at most one toitsu, leaving no tile
// unaccounted for. It returns every distinct tiling, since a vector like
// 2-2-2-3-3-3-4-4-4 (three koutsu, or three identical runs) can have
// more than one valid reading.
func decompose(counts []uint8, allowRun bool) [][]localBlock {
	work := make([]uint8, len(counts))
	copy(work, counts)

	var results [][]localBlock
	var current []localBlock
	decomposeRec(work, allowRun, false, &current, &results)
	return results
}

func decomposeRec(counts []uint8, allowRun, headUsed bool, current *[]localBlock, results *[][]localBlock) {
	slot := -1
	for i, c := range counts {
		if c > 0 {
			slot = i
			break
		}
	}
	if slot == -1 {
		blocks := make([]localBlock, len(*current))
		copy(blocks, *current)
		*results = append(*results, blocks)
		return
	}

	if counts[slot] >= 3 {
		counts[slot] -= 3
		*current = append(*current, localBlock{Koutsu, slot})
		decomposeRec(counts, allowRun, headUsed, current, results)
		*current = (*current)[:len(*current)-1]
		counts[slot] += 3
	}

	if allowRun && slot+2 < len(counts) && counts[slot+1] > 0 && counts[slot+2] > 0 {
		counts[slot]--
		counts[slot+1]--
		counts[slot+2]--
		*current = append(*current, localBlock{Shuntsu, slot})
		decomposeRec(counts, allowRun, headUsed, current, results)
		*current = (*current)[:len(*current)-1]
		counts[slot]++
		counts[slot+1]++
		counts[slot+2]++
	}

	if !headUsed && counts[slot] >= 2 {
		counts[slot] -= 2
		*current = append(*current, localBlock{Toitsu, slot})
		decomposeRec(counts, allowRun, true, current, results)
		*current = (*current)[:len(*current)-1]
		counts[slot] += 2
	}
}
