package hand_test

import (
	"testing"

	"github.com/tsumogiri/shanten/hand"
	"github.com/tsumogiri/shanten/meld"
	"github.com/tsumogiri/shanten/tile"
)

func TestAddRemoveLockstep(t *testing.T) {
	h := hand.New()

	if err := h.Add(tile.Manzu5); err != nil {
		t.Fatalf("Add: unexpected error %v", err)
	}
	if got := h.Count(tile.Manzu5); got != 1 {
		t.Fatalf("Count: expected 1 got %d", got)
	}
	if got := (h.PackedSuit(tile.SuitManzu) >> (4 * 3)) & 0x7; got != 1 {
		t.Fatalf("packed view: expected slot 4 = 1, got %d", got)
	}

	// Red five aliases the same slot.
	if err := h.Add(tile.AkaManzu5); err != nil {
		t.Fatalf("Add aka: unexpected error %v", err)
	}
	if got := h.Count(tile.Manzu5); got != 2 {
		t.Fatalf("Count after aka add: expected 2 got %d", got)
	}

	if err := h.Remove(tile.Manzu5); err != nil {
		t.Fatalf("Remove: unexpected error %v", err)
	}
	if got := h.Count(tile.Manzu5); got != 1 {
		t.Fatalf("Count after remove: expected 1 got %d", got)
	}
}

func TestAddRejectsOverflow(t *testing.T) {
	h := hand.New()
	for i := 0; i < 4; i++ {
		if err := h.Add(tile.East); err != nil {
			t.Fatalf("Add #%d: unexpected error %v", i, err)
		}
	}
	if err := h.Add(tile.East); err == nil {
		t.Fatal("Add: expected error on 5th copy")
	}
}

func TestRemoveRejectsUnderflow(t *testing.T) {
	h := hand.New()
	if err := h.Remove(tile.West); err == nil {
		t.Fatal("Remove: expected error on empty slot")
	}
}

func TestSuitAndHonorCounts(t *testing.T) {
	h := hand.New()
	for _, k := range []tile.Kind{tile.Manzu1, tile.Manzu1, tile.Manzu1, tile.Pinzu9, tile.East} {
		if err := h.Add(k); err != nil {
			t.Fatalf("Add(%d): unexpected error %v", k, err)
		}
	}

	manzu := h.SuitCounts(tile.SuitManzu)
	if manzu[0] != 3 {
		t.Fatalf("manzu[0]: expected 3 got %d", manzu[0])
	}
	pinzu := h.SuitCounts(tile.SuitPinzu)
	if pinzu[8] != 1 {
		t.Fatalf("pinzu[8]: expected 1 got %d", pinzu[8])
	}
	honors := h.HonorCounts()
	if honors[0] != 1 {
		t.Fatalf("honors[0]: expected 1 got %d", honors[0])
	}
}

func TestValidate(t *testing.T) {
	testcases := []struct {
		name    string
		build   func() hand.Hand
		wantErr bool
	}{
		{
			"valid 13-tile hand",
			func() hand.Hand {
				h, _ := hand.FromKinds([]tile.Kind{
					tile.Manzu1, tile.Manzu1, tile.Manzu1, tile.Manzu2, tile.Manzu5,
					tile.Manzu6, tile.Manzu7, tile.Manzu8, tile.Manzu9,
					tile.Pinzu9, tile.Pinzu9, tile.Pinzu1, tile.Pinzu1,
				})
				return h
			},
			false,
		},
		{
			"too many melds",
			func() hand.Hand {
				h := hand.New()
				h.Melds = make([]meld.Meld, 5)
				return h
			},
			true,
		},
	}

	for _, tc := range testcases {
		h := tc.build()
		err := h.Validate()
		if (err != nil) != tc.wantErr {
			t.Fatalf("test %q: wantErr=%v got err=%v", tc.name, tc.wantErr, err)
		}
	}
}
