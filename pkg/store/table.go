package store

// bucketCap is the target chain length per bucket used to size the bucket
// array from maxSize.
const bucketCap = 4

// growthNumerator/growthDenominator express the 1.5x enlargement factor as
// integer math, so growth is deterministic instead of float-dependent.
const (
	growthNumerator   = 3
	growthDenominator = 2
)

// Entry is the contract a value type must satisfy to be stored in a
// Table[V]. It replaces the original hash table's clear/copy/equal function
// pointers with methods on the value itself.
type Entry[V any] interface {
	// Clone returns a deep copy of the receiver, used when Add takes
	// ownership of a caller-transient value.
	Clone() V
	// Clear releases anything the value owns. Called exactly once, when
	// the entry is removed from the table (by Remove or by Reset).
	Clear()
	// MergeFrom applies field-level merge semantics from src into the
	// receiver: only src's "set" fields should overwrite the receiver's.
	MergeFrom(src V)
	// Matches reports whether the receiver satisfies predicate.
	Matches(predicate V) bool
}

type node[V any] struct {
	key   uint64
	value V
	next  *node[V]
}

// Table is a generic, open-chaining hash map keyed by a non-zero uint64,
// storing values of type V. It is not safe for concurrent use; callers are
// expected to drive it from a single goroutine (see package doc).
type Table[V Entry[V]] struct {
	count       uint64
	maxSize     uint64
	bucketCount uint64
	buckets     []*node[V]
}

// Config carries the parameters Create needs to size a fresh Table.
type Config struct {
	// MaxSize is the entry-count threshold that triggers growth on the
	// next insertion once exceeded.
	MaxSize uint64
}

// computeBucketCount derives an always-even bucket count from maxSize,
// targeting bucketCap entries per bucket.
func computeBucketCount(maxSize uint64) uint64 {
	n := (maxSize + bucketCap) / bucketCap
	n = (n >> 1) << 1 // round down to even
	if n < 2 {
		n = 2
	}
	return n
}

// hashCode computes the bucket index for key under bucketCount buckets.
func hashCode(key, bucketCount uint64) uint64 {
	const multiplier = 0x9E3779B97F4A7C15
	return (key * multiplier) % bucketCount
}

// Create builds an empty Table. MaxSize must be non-zero.
func Create[V Entry[V]](cfg Config) (*Table[V], error) {
	if cfg.MaxSize == 0 {
		return nil, ErrInvalidArgument
	}
	bc := computeBucketCount(cfg.MaxSize)
	return &Table[V]{
		maxSize:     cfg.MaxSize,
		bucketCount: bc,
		buckets:     make([]*node[V], bc),
	}, nil
}

// Count returns the number of entries currently stored.
func (t *Table[V]) Count() uint64 { return t.count }

// BucketCount returns the current number of buckets.
func (t *Table[V]) BucketCount() uint64 { return t.bucketCount }

// MaxSize returns the growth threshold.
func (t *Table[V]) MaxSize() uint64 { return t.maxSize }

func (t *Table[V]) find(key uint64) (prev, cur *node[V]) {
	idx := hashCode(key, t.bucketCount)
	cur = t.buckets[idx]
	for cur != nil {
		if cur.key == key {
			return prev, cur
		}
		prev = cur
		cur = cur.next
	}
	return nil, nil
}

// Add inserts value under key. If copyIn is true, a deep clone of value is
// stored (the table takes ownership of the clone, not the caller's value);
// otherwise the table takes ownership of value itself. Growing the table
// happens first, if the count threshold has already been exceeded — the
// same ordering the original hash table used.
func (t *Table[V]) Add(key uint64, value V, copyIn bool) error {
	var zero uint64
	if key == zero {
		return ErrInvalidArgument
	}
	if _, cur := t.find(key); cur != nil {
		return ErrDuplicate
	}
	if t.count > t.maxSize {
		t.grow()
	}

	stored := value
	if copyIn {
		stored = value.Clone()
	}
	n := &node[V]{key: key, value: stored}

	idx := hashCode(key, t.bucketCount)
	head := t.buckets[idx]
	if head == nil {
		t.buckets[idx] = n
	} else {
		tail := head
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = n
	}
	t.count++
	return nil
}

// grow rebuilds the table at 1.5x maxSize, rehashing every existing node in
// place (ownership of values transfers, nothing is cloned) and swinging the
// receiver itself to the new table's state.
func (t *Table[V]) grow() {
	newMax := (t.maxSize * growthNumerator) / growthDenominator
	if newMax <= t.maxSize {
		newMax = t.maxSize + 1
	}
	bc := computeBucketCount(newMax)
	newBuckets := make([]*node[V], bc)

	for _, head := range t.buckets {
		n := head
		for n != nil {
			next := n.next
			n.next = nil
			idx := hashCode(n.key, bc)
			if newBuckets[idx] == nil {
				newBuckets[idx] = n
			} else {
				tail := newBuckets[idx]
				for tail.next != nil {
					tail = tail.next
				}
				tail.next = n
			}
			n = next
		}
	}

	t.maxSize = newMax
	t.bucketCount = bc
	t.buckets = newBuckets
}

// Remove deletes the entry for key, calling its Clear method exactly once.
func (t *Table[V]) Remove(key uint64) error {
	idx := hashCode(key, t.bucketCount)
	var prev *node[V]
	cur := t.buckets[idx]
	for cur != nil && cur.key != key {
		prev = cur
		cur = cur.next
	}
	if cur == nil {
		return ErrNotFound
	}
	if prev == nil {
		t.buckets[idx] = cur.next
	} else {
		prev.next = cur.next
	}
	cur.value.Clear()
	t.count--
	return nil
}

// Modify merges value into the stored entry for key via MergeFrom.
func (t *Table[V]) Modify(key uint64, value V) error {
	_, cur := t.find(key)
	if cur == nil {
		return ErrNotFound
	}
	cur.value.MergeFrom(value)
	return nil
}

// GetByKey returns the stored value for key. The returned value is the
// table's own, not a copy; callers must not mutate it outside of Modify.
func (t *Table[V]) GetByKey(key uint64) (V, error) {
	var zero V
	_, cur := t.find(key)
	if cur == nil {
		return zero, ErrNotFound
	}
	return cur.value, nil
}

// Scan returns every stored value for which match reports true, visited in
// bucket order and, within a bucket, insertion order. A nil match matches
// everything. The returned slice is a fresh copy of pointers; the caller
// owns it, but not the values it points to.
func (t *Table[V]) Scan(match func(V) bool) []V {
	var out []V
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			if match == nil || match(n.value) {
				out = append(out, n.value)
			}
		}
	}
	return out
}

// Reset clears every entry (calling Clear on each value exactly once) and
// restores the table to an empty state sized by cfg.MaxSize. It is the
// in-memory equivalent of "delete the database, then recreate it" (DEL *).
func (t *Table[V]) Reset(cfg Config) error {
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			n.value.Clear()
		}
	}
	fresh, err := Create[V](cfg)
	if err != nil {
		return err
	}
	*t = *fresh
	return nil
}
