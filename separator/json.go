package separator

import (
	"fmt"

	"github.com/goccy/go-json"
)

// tokenLetter returns handseparator.cpp get_blocks's single-letter block
// code: 'k' koutsu, 's' shuntsu, 't' toitsu.
func tokenLetter(k BlockKind) byte {
	switch k {
	case Koutsu:
		return 'k'
	case Shuntsu:
		return 's'
	default:
		return 't'
	}
}

// encodeBlocks renders a block list as the "digit+letter" token string
// handseparator.cpp's pattern files use, e.g. "0s3k6t" for a shuntsu at
// slot 0, a koutsu at slot 3, and a toitsu at slot 6.
func encodeBlocks(blocks []localBlock) string {
	buf := make([]byte, 0, len(blocks)*2)
	for _, b := range blocks {
		buf = append(buf, byte('0'+b.slot), tokenLetter(b.kind))
	}
	return string(buf)
}

// decodeBlocks is get_blocks's inverse.
func decodeBlocks(s string) ([]localBlock, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("separator: malformed block token %q", s)
	}
	blocks := make([]localBlock, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		slot := int(s[i] - '0')
		if slot < 0 || slot > 8 {
			return nil, fmt.Errorf("separator: block token %q has out-of-range slot", s)
		}
		var kind BlockKind
		switch s[i+1] {
		case 'k':
			kind = Koutsu
		case 's':
			kind = Shuntsu
		case 't':
			kind = Toitsu
		default:
			return nil, fmt.Errorf("separator: block token %q has unknown kind letter %q", s, s[i+1])
		}
		blocks = append(blocks, localBlock{kind, slot})
	}
	return blocks, nil
}

// patternEntry mirrors one element of handseparator.cpp's pattern-file
// JSON array: a dense suitcode hash and the list of token strings for
// every exact tiling of that vector.
type patternEntry struct {
	Key     uint32   `json:"key"`
	Pattern []string `json:"pattern"`
}

// marshalPatternTable renders a table in the same JSON shape
// make_table/HandSeparator reads (syuupai_pattern.json, zihai_pattern.json).
func marshalPatternTable(table map[uint32][][]localBlock) ([]byte, error) {
	entries := make([]patternEntry, 0, len(table))
	for key, decomps := range table {
		tokens := make([]string, 0, len(decomps))
		for _, blocks := range decomps {
			tokens = append(tokens, encodeBlocks(blocks))
		}
		entries = append(entries, patternEntry{Key: key, Pattern: tokens})
	}
	return json.Marshal(entries)
}

// unmarshalPatternTable parses the JSON shape marshalPatternTable writes.
func unmarshalPatternTable(data []byte) (map[uint32][][]localBlock, error) {
	var entries []patternEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("separator: decode pattern table: %w", err)
	}

	table := make(map[uint32][][]localBlock, len(entries))
	for _, e := range entries {
		decomps := make([][]localBlock, 0, len(e.Pattern))
		for _, tok := range e.Pattern {
			blocks, err := decodeBlocks(tok)
			if err != nil {
				return nil, err
			}
			decomps = append(decomps, blocks)
		}
		table[e.Key] = decomps
	}
	return table, nil
}
