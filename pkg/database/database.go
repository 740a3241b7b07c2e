package database

import (
	"fmt"

	"github.com/conradsun/staffd/pkg/store"
	"github.com/conradsun/staffd/pkg/types"
)

// DefaultMaxSize is the initial entry-count threshold before the backing
// table grows itself.
const DefaultMaxSize = 64

// Database is a thin, error-translating wrapper around a generic hash table
// keyed by employee id. It holds no locks of its own: like the table it
// wraps, it is meant to be driven from a single goroutine.
type Database struct {
	table *store.Table[*types.Record]
}

// Open creates an empty database sized for maxSize records.
func Open(maxSize uint64) (*Database, error) {
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	tbl, err := store.Create[*types.Record](store.Config{MaxSize: maxSize})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}
	return &Database{table: tbl}, nil
}

// Add inserts rec under rec.ID. rec.ID must be non-zero and not already
// present.
func (d *Database) Add(rec *types.Record) error {
	if rec == nil || rec.ID == 0 {
		return fmt.Errorf("database: add: %w", store.ErrInvalidArgument)
	}
	if err := d.table.Add(rec.ID, rec, true); err != nil {
		return fmt.Errorf("database: add: %w", err)
	}
	return nil
}

// Remove deletes the record with the given id.
func (d *Database) Remove(id uint64) error {
	if err := d.table.Remove(id); err != nil {
		return fmt.Errorf("database: remove: %w", err)
	}
	return nil
}

// RemoveAll clears every record, recreating the table at its current
// capacity.
func (d *Database) RemoveAll() error {
	if err := d.table.Reset(store.Config{MaxSize: d.table.MaxSize()}); err != nil {
		return fmt.Errorf("database: remove all: %w", err)
	}
	return nil
}

// Modify merges the set fields of patch into the stored record for id.
func (d *Database) Modify(id uint64, patch *types.Record) error {
	if err := d.table.Modify(id, patch); err != nil {
		return fmt.Errorf("database: modify: %w", err)
	}
	return nil
}

// GetByID returns the stored record for id.
func (d *Database) GetByID(id uint64) (*types.Record, error) {
	rec, err := d.table.GetByKey(id)
	if err != nil {
		return nil, fmt.Errorf("database: get: %w", err)
	}
	return rec, nil
}

// Find returns every stored record matching predicate. A nil predicate (or
// one with every field unset) matches every record.
func (d *Database) Find(predicate *types.Record) []*types.Record {
	return d.table.Scan(func(rec *types.Record) bool {
		return rec.Matches(predicate)
	})
}

// Count returns the number of records currently stored.
func (d *Database) Count() uint64 {
	return d.table.Count()
}
