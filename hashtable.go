package chainx

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// DefaultRows is the bucket count of NewHashTable.
const DefaultRows = 10

var (
	// ErrInvalidRows is returned when a table is asked for zero or fewer buckets.
	ErrInvalidRows = errors.New("bucket count must be positive")
	// ErrSnapshotMismatch is returned when a Dump is inconsistent with the
	// table it claims to describe.
	ErrSnapshotMismatch = errors.New("snapshot does not match table layout")
)

// HashTable is a fixed-bucket multiset of strings. Each bucket is a
// LinkedList chained in insertion order. The bucket count never changes.
//
// The zero value is an empty table with DefaultRows buckets.
type HashTable struct {
	rows []LinkedList[string]
	size int
}

// NewHashTable returns a table with DefaultRows buckets.
func NewHashTable() *HashTable {
	return &HashTable{rows: make([]LinkedList[string], DefaultRows)}
}

// NewHashTableWithSize returns a table with rows buckets.
func NewHashTableWithSize(rows int) (*HashTable, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("new hash table with %d rows: %w", rows, ErrInvalidRows)
	}
	return &HashTable{rows: make([]LinkedList[string], rows)}, nil
}

// buckets allocates the DefaultRows buckets of a zero-value table.
func (h *HashTable) buckets() []LinkedList[string] {
	if h.rows == nil {
		h.rows = make([]LinkedList[string], DefaultRows)
	}
	return h.rows
}

// Rows returns the bucket count.
func (h *HashTable) Rows() int {
	return len(h.buckets())
}

// Size returns the number of keys inserted so far, duplicates included.
func (h *HashTable) Size() int {
	return h.size
}

// Strategy returns the routing function selected by the bucket count.
func (h *HashTable) Strategy() Strategy {
	return StrategyFor(h.Rows())
}

// IndexOf returns the bucket key would be filed under. It does not report
// whether key is present.
func (h *HashTable) IndexOf(key string) int {
	rows := h.Rows()
	return StrategyFor(rows).Index(key, rows)
}

// Insert appends key to its home bucket. Duplicates are kept.
func (h *HashTable) Insert(key string) {
	h.buckets()[h.IndexOf(key)].Append(key)
	h.size++
}

// InsertAll inserts keys in order.
func (h *HashTable) InsertAll(keys ...string) {
	for _, k := range keys {
		h.Insert(k)
	}
}

// Dump returns every bucket in index order with its keys in insertion order.
func (h *HashTable) Dump() Dump {
	rows := h.buckets()
	d := Dump{
		Rows:     len(rows),
		Size:     h.size,
		Strategy: h.Strategy().String(),
		Buckets:  make([]Bucket, len(rows)),
	}
	for i := range rows {
		d.Buckets[i] = Bucket{Index: i, Keys: rows[i].Values()}
	}
	return d
}

// FromDump rebuilds a table from a snapshot. Every key must hash to the
// bucket it is filed under; all violations are reported together.
func FromDump(d Dump) (*HashTable, error) {
	if d.Rows > 0 && len(d.Buckets) != d.Rows {
		return nil, fmt.Errorf("%d buckets for %d rows: %w", len(d.Buckets), d.Rows, ErrSnapshotMismatch)
	}
	h, err := NewHashTableWithSize(d.Rows)
	if err != nil {
		return nil, err
	}

	var errs error
	for pos, b := range d.Buckets {
		if b.Index != pos {
			errs = multierr.Append(errs, fmt.Errorf("bucket at position %d has index %d: %w", pos, b.Index, ErrSnapshotMismatch))
			continue
		}
		for _, k := range b.Keys {
			if home := h.IndexOf(k); home != b.Index {
				errs = multierr.Append(errs, fmt.Errorf("key %q filed in bucket %d hashes to %d: %w", k, b.Index, home, ErrSnapshotMismatch))
				continue
			}
			h.Insert(k)
		}
	}
	if errs != nil {
		return nil, errs
	}
	if h.size != d.Size {
		return nil, fmt.Errorf("snapshot size %d, counted %d keys: %w", d.Size, h.size, ErrSnapshotMismatch)
	}
	return h, nil
}
