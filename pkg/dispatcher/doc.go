/*
Package dispatcher owns the listening socket, the bounded connection table,
and the single goroutine that is the only thing ever allowed to touch the
database.

The original design multiplexed readiness over a raw fd_set and a single
thread of control: one select(2) call per iteration over standard input,
the listening socket, and every active peer descriptor. Go's net package
does not expose raw fd readiness that way, so this package reaches the same
observable contract — requests from one connection are processed in
arrival order, and the store is touched by exactly one goroutine — with a
channel instead of a readiness set:

	┌──────────── per-connection reader goroutines ─────────────┐
	│  conn A ──┐                                                │
	│  conn B ──┼──▶ requests chan ──▶ run loop (single goroutine)│
	│  stdin  ──┘                         │                      │
	│                                     ▼                      │
	│                              query.Engine + Database       │
	└─────────────────────────────────────────────────────────────┘

Each connection gets its own goroutine that only reads lines and forwards
them; the run loop goroutine is the sole writer of the connection table and
the sole caller into the query engine, which is what keeps the database
free of any internal locking.
*/
package dispatcher
