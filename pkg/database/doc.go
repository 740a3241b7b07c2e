// Package database is the narrow facade the query engine drives: it owns a
// store.Table[*types.Record] keyed by employee id and translates the generic
// container's errors into the same sentinel set callers already understand.
package database
