/*
Package store implements the generic, open-chaining hash map that backs the
employee database: a keyed associative container that owns its values and
grows itself automatically.

Values are constrained by Entry[V] rather than by a trio of callback
functions: any type usable with Table[V] implements Clone, Clear, MergeFrom
and Matches, and the container calls those methods directly.

	┌─────────────────────── Table[V] ───────────────────────────┐
	│                                                              │
	│  buckets: []*node[V]      (always an even count)            │
	│                                                              │
	│   bucket 0 ─▶ node(k1,v1) ─▶ node(k9,v9) ─▶ nil             │
	│   bucket 1 ─▶ nil                                            │
	│   bucket 2 ─▶ node(k2,v2) ─▶ nil                             │
	│     ...                                                      │
	│                                                              │
	│  count > maxSize on Add  ⇒  grow(): new Table at 1.5×        │
	│  maxSize, every node rehashed and relinked (no value copy)   │
	└──────────────────────────────────────────────────────────────┘

Hash: h(k) = (k * 0x9E3779B97F4A7C15) mod bucketCount, a golden-ratio
multiplicative hash chosen for a good spread over small bucket counts.

The container itself takes no lock: it is designed to be driven by exactly
one goroutine (the dispatcher's run loop), which is what makes every
operation here trivially safe without synchronization.
*/
package store
