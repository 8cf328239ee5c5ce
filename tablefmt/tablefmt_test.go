package tablefmt_test

import (
	"bytes"
	"testing"

	"github.com/tsumogiri/shanten/tablefmt"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	testcases := []tablefmt.Entry{
		{Dist: 0, Wait: 0, Discard: 0},
		{Dist: 14, Wait: 0x1FF, Discard: 0x1FF},
		{Dist: 3, Wait: 0b101010101, Discard: 0b010101010},
	}

	for _, tc := range testcases {
		packed, err := tc.Pack()
		if err != nil {
			t.Fatalf("Pack(%+v): unexpected error %v", tc, err)
		}
		got := tablefmt.Unpack(packed)
		if got != tc {
			t.Fatalf("round trip mismatch: sent %+v got %+v", tc, got)
		}
	}
}

func TestPackRejectsOverflow(t *testing.T) {
	testcases := []tablefmt.Entry{
		{Dist: 15, Wait: 0, Discard: 0},
		{Dist: 0, Wait: 0x200, Discard: 0},
		{Dist: 0, Wait: 0, Discard: 0x200},
	}

	for _, tc := range testcases {
		if _, err := tc.Pack(); err == nil {
			t.Fatalf("Pack(%+v): expected error", tc)
		}
	}
}

func TestWriteReadTableRoundTrip(t *testing.T) {
	records := []tablefmt.Record{
		{
			Hash: 7,
			Entries: [tablefmt.RoleSlots]tablefmt.Entry{
				{Dist: 1, Wait: 0b1, Discard: 0},
			},
		},
		{
			Hash: 42,
			Entries: [tablefmt.RoleSlots]tablefmt.Entry{
				{Dist: 2, Wait: 0b11, Discard: 0b10},
			},
		},
	}

	var buf bytes.Buffer
	if err := tablefmt.WriteTable(&buf, records); err != nil {
		t.Fatalf("WriteTable: unexpected error %v", err)
	}

	got, err := tablefmt.ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable: unexpected error %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("ReadTable: expected %d records got %d", len(records), len(got))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Fatalf("record %d mismatch: sent %+v got %+v", i, records[i], got[i])
		}
	}
}

func TestReadTableRejectsTruncation(t *testing.T) {
	buf := bytes.NewReader([]byte{1, 2, 3})
	if _, err := tablefmt.ReadTable(buf); err == nil {
		t.Fatal("ReadTable: expected error on truncated record")
	}
}

func TestToMap(t *testing.T) {
	records := []tablefmt.Record{
		{Hash: 1, Entries: [tablefmt.RoleSlots]tablefmt.Entry{{Dist: 5}}},
	}
	m := tablefmt.ToMap(records)
	if len(m) != 1 {
		t.Fatalf("ToMap: expected 1 entry got %d", len(m))
	}
	if m[1][0].Dist != 5 {
		t.Fatalf("ToMap: expected Dist 5 got %d", m[1][0].Dist)
	}
}
