package bitutil

import "testing"

func TestBitScan(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bitboard uint64 = 1 << i

		got := BitScan(bitboard)
		if got != i {
			t.Fatalf("Expected: %d got %d", i, got)
		}
	}
}

func TestPopLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		var bitboard uint64 = 1 << i

		got := PopLSB(&bitboard)
		if got != i {
			t.Fatalf("Expected %d got %d", i, got)
		}
	}

	var bitboard uint64 = 0
	got := PopLSB(&bitboard)
	if got != -1 {
		t.Fatalf("Expected -1 got %d", got)
	}
}

func TestCountBits(t *testing.T) {
	var got int

	got = CountBits(0x8000000000000000)
	if got != 1 {
		t.Fatalf("Expected 1 got %d", got)
	}

	got = CountBits(0x0)
	if got != 0 {
		t.Fatalf("Expected 0 got %d", got)
	}

	got = CountBits(0xFFFFFFFFFFFFFFFF)
	if got != 64 {
		t.Fatalf("Expected 64 got %d", got)
	}
}

func TestKindsOf(t *testing.T) {
	testcases := []struct {
		name     string
		waitSet  uint64
		expected []int
	}{
		{"empty", 0, []int{}},
		{"single kind", 1 << 5, []int{5}},
		{"several kinds", 1<<0 | 1<<9 | 1<<33, []int{0, 9, 33}},
	}

	for _, tc := range testcases {
		got := KindsOf(tc.waitSet)
		if len(got) != len(tc.expected) {
			t.Fatalf("test %q: expected %v got %v", tc.name, tc.expected, got)
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Fatalf("test %q: expected %v got %v", tc.name, tc.expected, got)
			}
		}
	}
}

func BenchmarkBitScan(b *testing.B) {
	for b.Loop() {
		BitScan(0x8000000000000000)
	}
}

func BenchmarkPopLSB(b *testing.B) {
	var bitboard uint64 = 0xFFFFFFFFFFFFFFFF

	for b.Loop() {
		PopLSB(&bitboard)
	}
}

func BenchmarkCountBits(b *testing.B) {
	for b.Loop() {
		CountBits(0xFFFFFFFFFFFFFFFF)
	}
}
