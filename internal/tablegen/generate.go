package tablegen

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tsumogiri/shanten/suitcode"
	"github.com/tsumogiri/shanten/tablefmt"
)

// Manifest is the side-car record written next to each run's generated
// table files: a run identifier plus the convention and vector counts,
// so a corrupt-table report can be correlated back to the run that
// produced it.
type Manifest struct {
	RunID          uuid.UUID
	Convention     Convention
	NumberedVectors int
	HonorVectors    int
}

// Convention selects between the two distance conventions
// create_distance_table.cpp exposes at build time (spec.md §9, "Open
// question"). In the original, the NYANTEN macro changes only the output
// file names (suits_table5.bin vs suits_table5_nyanten.bin) — the
// enumeration and distance arithmetic in create_table() run identically
// either way. This package follows that: BuildAll produces byte-identical
// numbered/honor tables under both conventions, since per-suit distances
// feed a cross-suit convolution that a convention-driven shift would
// corrupt. The conventions genuinely diverge at the one place a global
// shift is sound — the final combined-total readback in
// shanten.StandardWithConvention — and in the output file name (see
// Convention.FileSuffix, used by cmd/tablegen).
type Convention int

const (
	ConventionStandard Convention = iota
	ConventionNyanten
)

// String renders the convention name used in logs and manifests.
func (c Convention) String() string {
	if c == ConventionNyanten {
		return "nyanten"
	}
	return "standard"
}

// FileSuffix returns the suffix create_distance_table.cpp's NYANTEN macro
// appends to its output paths. ConventionStandard returns "".
func (c Convention) FileSuffix() string {
	if c == ConventionNyanten {
		return "_nyanten"
	}
	return ""
}

// BuildNumberedTable computes the full numbered-suit table: one record
// per reachable 9-slot count vector, parallelized across workers with
// disjoint write targets (spec.md §4.2, "Parallelism"), joined by a
// single barrier before the caller serializes them (spec.md §5, "shared
// writer barrier").
func BuildNumberedTable(ctx context.Context, logger *log.Logger) ([]tablefmt.Record, error) {
	patterns := ListNumberedPatterns()
	n := suitcode.NumberedSpaceSize()
	records := make([]tablefmt.Record, n)

	if logger != nil {
		logger.Info("building numbered-suit table", "vectors", n, "patterns", len(patterns))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit())

	for idx := 0; idx < n; idx++ {
		idx := idx
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			counts := suitcode.DecodeNumbered(uint32(idx))
			records[idx] = tablefmt.Record{
				Hash:    uint32(idx),
				Entries: cellFor(counts[:], patterns),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tablegen: build numbered table: %w", err)
	}
	return records, nil
}

// BuildHonorTable computes the full honor-suit table, mirroring
// BuildNumberedTable over the 7-slot honor domain.
func BuildHonorTable(ctx context.Context, logger *log.Logger) ([]tablefmt.Record, error) {
	patterns := ListHonorPatterns()
	n := suitcode.HonorSpaceSize()
	records := make([]tablefmt.Record, n)

	if logger != nil {
		logger.Info("building honor-suit table", "vectors", n, "patterns", len(patterns))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit())

	for idx := 0; idx < n; idx++ {
		idx := idx
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			counts := suitcode.DecodeHonor(uint32(idx))
			records[idx] = tablefmt.Record{
				Hash:    uint32(idx),
				Entries: cellFor(counts[:], patterns),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("tablegen: build honor table: %w", err)
	}
	return records, nil
}

// BuildAll runs both table builds and returns a manifest describing the
// run, stamped with a fresh UUID. convention does not alter the returned
// tables (see the Convention doc comment); callers use it to pick an
// output file name (Convention.FileSuffix) and to pick a matching
// shanten.StandardWithConvention reader.
func BuildAll(ctx context.Context, convention Convention, logger *log.Logger) (numbered, honors []tablefmt.Record, manifest Manifest, err error) {
	runID := uuid.New()
	if logger != nil {
		logger.Info("starting table generation run", "run_id", runID, "convention", convention)
	}

	numbered, err = BuildNumberedTable(ctx, logger)
	if err != nil {
		return nil, nil, Manifest{}, err
	}
	honors, err = BuildHonorTable(ctx, logger)
	if err != nil {
		return nil, nil, Manifest{}, err
	}

	manifest = Manifest{
		RunID:           runID,
		Convention:      convention,
		NumberedVectors: len(numbered),
		HonorVectors:    len(honors),
	}
	return numbered, honors, manifest, nil
}

// workerLimit caps errgroup concurrency at the host's CPU count, the
// same bound chego's codegen worker pool uses.
func workerLimit() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
