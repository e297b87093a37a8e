package chainx

import (
	"fmt"
	"iter"
	"strings"
)

// node is one link of a chain. It owns its value and is the only holder of
// a pointer to next.
type node[T any] struct {
	value T
	next  *node[T]
}

// Predicate reports whether a value is the one being searched for.
type Predicate[T any] func(v T) bool

// LinkedList is a singly linked list. Every node is referenced by exactly one
// predecessor (or by head), so the chain is acyclic.
//
// The zero value is an empty list ready to use. A LinkedList is not safe for
// concurrent use.
type LinkedList[T any] struct {
	head *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Size returns the number of values in the list.
func (l *LinkedList[T]) Size() int {
	return l.size
}

// IsEmpty reports whether the list has no nodes.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Append attaches v after the last node. It walks the whole chain.
func (l *LinkedList[T]) Append(v T) {
	link := &l.head
	for *link != nil {
		link = &(*link).next
	}
	*link = &node[T]{value: v}
	l.size++
}

// Prepend makes v the new head.
func (l *LinkedList[T]) Prepend(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.size++
}

// Pop detaches the head and returns its value. ok is false on an empty list.
func (l *LinkedList[T]) Pop() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	top := l.head
	l.head = top.next
	top.next = nil
	l.size--
	return top.value, true
}

// PopBack detaches the last node and returns its value. ok is false on an
// empty list.
func (l *LinkedList[T]) PopBack() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	link := &l.head
	for (*link).next != nil {
		link = &(*link).next
	}
	last := *link
	*link = nil
	l.size--
	return last.value, true
}

// PeekHead returns the head value without detaching it.
func (l *LinkedList[T]) PeekHead() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Find detaches the first node whose value satisfies match and returns that
// value. The predecessor is relinked to the successor. On a miss the list is
// left untouched and ok is false. At most one node is removed per call.
func (l *LinkedList[T]) Find(match Predicate[T]) (v T, ok bool) {
	link := l.search(match)
	if *link == nil {
		return v, false
	}
	hit := *link
	*link = hit.next
	hit.next = nil
	l.size--
	return hit.value, true
}

// FindValue returns the first value satisfying match without removing it.
func (l *LinkedList[T]) FindValue(match Predicate[T]) (v T, ok bool) {
	n := *l.search(match)
	if n == nil {
		return v, false
	}
	return n.value, true
}

// FindPtr returns a pointer to the first value satisfying match, or nil. The
// pointer stays valid until the node is detached. Writing through it never
// changes the chain topology.
func (l *LinkedList[T]) FindPtr(match Predicate[T]) *T {
	n := *l.search(match)
	if n == nil {
		return nil
	}
	return &n.value
}

// search returns the link that points at the first matching node, or the
// terminal nil link when nothing matches.
func (l *LinkedList[T]) search(match Predicate[T]) **node[T] {
	link := &l.head
	for *link != nil && !match((*link).value) {
		link = &(*link).next
	}
	return link
}

// ForEach calls visit with every value and its zero-based position, head
// first. The tail is visited too.
func (l *LinkedList[T]) ForEach(visit func(v T, i int)) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		visit(n.value, i)
		i++
	}
}

// ForEachMut is ForEach with a pointer to each stored value.
func (l *LinkedList[T]) ForEachMut(visit func(v *T, i int)) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		visit(&n.value, i)
		i++
	}
}

// All returns an iterator over (position, value) pairs, head first.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values returns the values in chain order. The slice is a copy.
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Clone returns a list holding the same values in the same order. Values are
// copied with Go assignment semantics.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	c := &LinkedList[T]{size: l.size}
	link := &c.head
	for n := l.head; n != nil; n = n.next {
		*link = &node[T]{value: n.value}
		link = &(*link).next
	}
	return c
}

// Clear releases the chain one node at a time.
func (l *LinkedList[T]) Clear() {
	n := l.head
	l.head = nil
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.size = 0
}

// String renders the chain as " -> a -> b".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, " -> %v", n.value)
	}
	return sb.String()
}
