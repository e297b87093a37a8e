package testutil

import (
	"testing"

	"github.com/comalice/chainx"
)

// CapabilityAdapter provides a common interface for the queue and stack views
// of a LinkedList. This allows running the same law suite on both.
type CapabilityAdapter[T any] interface {
	Put(v T)
	Take() (T, bool)
	Len() int
	// Order returns the sequence Take yields after putting values in order.
	Order(values []T) []T
}

// QueueAdapter wraps the FIFO view.
type QueueAdapter[T any] struct {
	q chainx.Queue[T]
}

// NewQueueAdapter creates an adapter over a fresh queue.
func NewQueueAdapter[T any]() *QueueAdapter[T] {
	return &QueueAdapter[T]{q: chainx.NewQueue[T]()}
}

func (a *QueueAdapter[T]) Put(v T)         { a.q.Append(v) }
func (a *QueueAdapter[T]) Take() (T, bool) { return a.q.Pop() }
func (a *QueueAdapter[T]) Len() int        { return a.q.Size() }

func (a *QueueAdapter[T]) Order(values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	return out
}

// StackAdapter wraps the LIFO view.
type StackAdapter[T any] struct {
	s chainx.Stack[T]
}

// NewStackAdapter creates an adapter over a fresh stack.
func NewStackAdapter[T any]() *StackAdapter[T] {
	return &StackAdapter[T]{s: chainx.NewStack[T]()}
}

func (a *StackAdapter[T]) Put(v T)         { a.s.Prepend(v) }
func (a *StackAdapter[T]) Take() (T, bool) { return a.s.Pop() }
func (a *StackAdapter[T]) Len() int        { return a.s.Size() }

func (a *StackAdapter[T]) Order(values []T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

// Drain takes from a until it reports empty and returns what it yielded.
func Drain[T any](a CapabilityAdapter[T]) []T {
	var out []T
	for {
		v, ok := a.Take()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// CheckTableInvariants fails t when the chain lengths of h disagree with its
// counter or a key sits outside its home bucket.
func CheckTableInvariants(t testing.TB, h *chainx.HashTable) {
	t.Helper()
	d := h.Dump()
	if len(d.Buckets) != h.Rows() {
		t.Fatalf("dump has %d buckets, table has %d rows", len(d.Buckets), h.Rows())
	}
	total := 0
	for i, b := range d.Buckets {
		total += len(b.Keys)
		for _, k := range b.Keys {
			idx := h.IndexOf(k)
			if idx < 0 || idx >= h.Rows() {
				t.Errorf("key %q routes to %d, outside [0, %d)", k, idx, h.Rows())
			}
			if idx != i {
				t.Errorf("key %q stored in bucket %d, home bucket %d", k, i, idx)
			}
		}
	}
	if total != h.Size() {
		t.Errorf("chain lengths sum to %d, counter is %d", total, h.Size())
	}
}
