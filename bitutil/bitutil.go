// Package bitutil implements bit utilities for working with 34-bit
// wait-set bitmaps (and the 9-bit/7-bit per-suit bitmaps the table
// entries pack). The cli renderer is its consumer.
package bitutil

import "github.com/tsumogiri/shanten/tile"

// bitscanMagic is the precalculated multiplier used to form indices for
// the bitScanLookup array.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup is a precalculated lookup table of LSB indices for 64
// uints. See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the least significant set bit within
// bitmap. bitmap&-bitmap isolates the LSB, which is then run through the
// hashing scheme to index the lookup table.
func BitScan(bitmap uint64) int { return bitScanLookup[bitmap&-bitmap*bitscanMagic>>58] }

// PopLSB removes (pops) the least significant set bit from bitmap and
// returns its index. If bitmap is empty, it returns -1.
func PopLSB(bitmap *uint64) int {
	if *bitmap == 0 {
		return -1
	}

	lsb := BitScan(*bitmap)
	*bitmap &= *bitmap - 1
	return lsb
}

// CountBits returns the number of set bits within bitmap.
func CountBits(bitmap uint64) int {
	var cnt int
	for bitmap > 0 {
		cnt++
		bitmap &= bitmap - 1
	}
	return cnt
}

// KindsOf decodes a 34-bit wait-set bitmap into the sorted list of tile
// kinds it contains. The shanten core never needs this (it returns the
// bitmap to callers), but the CLI renderer does.
func KindsOf(waitSet uint64) []tile.Kind {
	kinds := make([]tile.Kind, 0, CountBits(waitSet))
	for waitSet != 0 {
		kinds = append(kinds, PopLSB(&waitSet))
	}
	return kinds
}
