package shanten

import (
	"context"
	"sync"

	"github.com/tsumogiri/shanten/internal/tablegen"
	"github.com/tsumogiri/shanten/tablefmt"
)

// Tables are process-wide, read-only after LoadTables installs them —
// the "one-shot init barrier" spec.md §5 and §9 call for. Queries never
// take a lock; they only ever read these maps.
var (
	tablesOnce     sync.Once
	tablesLoaded   bool
	numberedLookup map[uint32][tablefmt.RoleSlots]tablefmt.Entry
	honorLookup    map[uint32][tablefmt.RoleSlots]tablefmt.Entry
)

// LoadTables installs the numbered-suit and honor-suit tables the
// runtime core queries, decoded from records read from the generator's
// binary files (or built directly in-memory by internal/tablegen). It is
// idempotent: once the first call installs tables, later calls are
// no-ops, matching spec.md §5's "idempotent guard".
func LoadTables(numberedRecords, honorRecords []tablefmt.Record) {
	tablesOnce.Do(func() {
		numberedLookup = tablefmt.ToMap(numberedRecords)
		honorLookup = tablefmt.ToMap(honorRecords)
		tablesLoaded = true
	})
}

// EnsureTables installs tables built in-memory via internal/tablegen if
// LoadTables has not already been called. It exists so callers (and this
// module's own tests) can query the core without first managing table
// files on disk; production use is expected to call LoadTables with
// tables read from the generator's output instead.
//
// A failed build still consumes the one-shot init guard: per spec.md §7,
// a missing or corrupt table is unrecoverable, so there is deliberately
// no retry path — the core refuses to serve queries for the rest of the
// process's life once init has failed once.
func EnsureTables(ctx context.Context) error {
	var err error
	tablesOnce.Do(func() {
		var numbered, honors []tablefmt.Record
		numbered, honors, _, err = tablegen.BuildAll(ctx, tablegen.ConventionStandard, nil)
		if err != nil {
			return
		}
		numberedLookup = tablefmt.ToMap(numbered)
		honorLookup = tablefmt.ToMap(honors)
		tablesLoaded = true
	})
	return err
}

// TablesLoaded reports whether a prior LoadTables/EnsureTables call has
// installed the tables this package's queries read.
func TablesLoaded() bool {
	return tablesLoaded
}
