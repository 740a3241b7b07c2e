package types

import "fmt"

// Date is a calendar day with no time-of-day component. The zero value
// wildcards in a predicate and renders as "(null)" in a reply.
type Date struct {
	Year, Month, Day int
}

// IsZero reports whether d is the wildcard/unset date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Key returns an ascending-comparable integer encoding of the date, used by
// the GET --sort:date comparator.
func (d Date) Key() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// String renders the date as YYYY-MM-DD, zero-padded.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Record is the employee record stored by the database, and — in the same
// shape, with zero-value fields acting as wildcards — the predicate used to
// scan it. The ID plays no part in predicate matching: ADD/MOD/DEL/GET-by-id
// operate on a non-zero ID, and a zero ID on a GET turns it into a predicate
// scan over the other fields (see query.Engine.Execute).
type Record struct {
	ID         uint64
	Name       string
	Date       Date
	Department string
	Position   string
}

// Clone returns a deep copy. The store calls this when it takes ownership of
// a transient record built by the parser.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// Clear releases whatever the record owns. Go's garbage collector does the
// actual reclamation; Clear exists so the store can honor the "clear runs
// exactly once per removed entry" contract, and so tests can verify it.
func (r *Record) Clear() {
	*r = Record{}
}

// MergeFrom applies field-level merge semantics: a field on src overwrites
// the same field on r only when it is set (non-zero/non-empty). This is the
// "update only the fields you mention" behavior MOD relies on.
func (r *Record) MergeFrom(src *Record) {
	if src == nil {
		return
	}
	if src.ID != 0 {
		r.ID = src.ID
	}
	if !src.Date.IsZero() {
		r.Date = src.Date
	}
	if src.Name != "" {
		r.Name = src.Name
	}
	if src.Department != "" {
		r.Department = src.Department
	}
	if src.Position != "" {
		r.Position = src.Position
	}
}

// Matches reports whether r satisfies predicate: every set field of
// predicate other than ID must compare equal to the corresponding field of
// r; unset (zero-value) fields wildcard-match, and ID is never compared. A
// nil predicate matches everything.
func (r *Record) Matches(predicate *Record) bool {
	if predicate == nil {
		return true
	}
	if predicate.Name != "" && predicate.Name != r.Name {
		return false
	}
	if predicate.Department != "" && predicate.Department != r.Department {
		return false
	}
	if predicate.Position != "" && predicate.Position != r.Position {
		return false
	}
	if !predicate.Date.IsZero() && predicate.Date != r.Date {
		return false
	}
	return true
}

// FieldOrNull renders s, or the literal "(null)" sentinel the wire protocol
// uses for an unset string field.
func FieldOrNull(s string) string {
	if s == "" {
		return "(null)"
	}
	return s
}

// DateOrNull renders d, or "(null)" if it is unset.
func DateOrNull(d Date) string {
	if d.IsZero() {
		return "(null)"
	}
	return d.String()
}
