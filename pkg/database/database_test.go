package database

import (
	"errors"
	"testing"

	"github.com/conradsun/staffd/pkg/store"
	"github.com/conradsun/staffd/pkg/types"
)

func newRecord(id uint64, name string) *types.Record {
	return &types.Record{ID: id, Name: name, Department: "eng", Position: "swe"}
}

func TestAddThenGetByID(t *testing.T) {
	db, err := Open(8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Add(newRecord(1, "ada")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := db.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "ada" {
		t.Fatalf("Name = %q, want ada", got.Name)
	}
}

func TestAddZeroIDRejected(t *testing.T) {
	db, _ := Open(8)
	if err := db.Add(&types.Record{Name: "nope"}); !errors.Is(err, store.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestAddDuplicateRejected(t *testing.T) {
	db, _ := Open(8)
	if err := db.Add(newRecord(1, "ada")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := db.Add(newRecord(1, "bea")); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
}

func TestRemoveThenGetNotFound(t *testing.T) {
	db, _ := Open(8)
	_ = db.Add(newRecord(1, "ada"))
	if err := db.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := db.GetByID(1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRemoveAllClearsEverything(t *testing.T) {
	db, _ := Open(8)
	_ = db.Add(newRecord(1, "ada"))
	_ = db.Add(newRecord(2, "bea"))
	if err := db.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if db.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", db.Count())
	}
	if len(db.Find(nil)) != 0 {
		t.Fatalf("Find(nil) after RemoveAll not empty")
	}
}

func TestModifyMergesSetFieldsOnly(t *testing.T) {
	db, _ := Open(8)
	_ = db.Add(newRecord(1, "ada"))
	if err := db.Modify(1, &types.Record{Position: "staff-eng"}); err != nil {
		t.Fatalf("Modify: %v", err)
	}
	got, _ := db.GetByID(1)
	if got.Name != "ada" {
		t.Fatalf("Name changed unexpectedly: %q", got.Name)
	}
	if got.Position != "staff-eng" {
		t.Fatalf("Position = %q, want staff-eng", got.Position)
	}
}

func TestFindByPredicate(t *testing.T) {
	db, _ := Open(8)
	_ = db.Add(newRecord(1, "ada"))
	_ = db.Add(&types.Record{ID: 2, Name: "bea", Department: "sales", Position: "rep"})

	eng := db.Find(&types.Record{Department: "eng"})
	if len(eng) != 1 || eng[0].ID != 1 {
		t.Fatalf("Find(eng) = %v, want exactly record 1", eng)
	}

	all := db.Find(nil)
	if len(all) != 2 {
		t.Fatalf("Find(nil) = %d records, want 2", len(all))
	}
}
