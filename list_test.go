package chainx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// chainLen counts reachable nodes independently of the cached size.
func chainLen[T any](l *LinkedList[T]) int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

func checkSize[T any](t *testing.T, l *LinkedList[T], want int) {
	t.Helper()
	if l.Size() != want {
		t.Errorf("Size() = %d, want %d", l.Size(), want)
	}
	if n := chainLen(l); n != l.Size() {
		t.Errorf("chain has %d nodes, Size() = %d", n, l.Size())
	}
}

func TestLinkedList_ZeroValue(t *testing.T) {
	var l LinkedList[int]
	if !l.IsEmpty() {
		t.Error("zero value should be empty")
	}
	checkSize(t, &l, 0)
	l.Append(1)
	checkSize(t, &l, 1)
}

func TestLinkedList_AppendPrepend(t *testing.T) {
	l := New[int]()
	l.Append(2)
	l.Append(3)
	l.Prepend(1)
	l.Prepend(0)

	if diff := cmp.Diff([]int{0, 1, 2, 3}, l.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	checkSize(t, l, 4)
}

func TestLinkedList_PopAndPopBack(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"a", "b", "c"} {
		l.Append(s)
	}

	if v, ok := l.Pop(); !ok || v != "a" {
		t.Errorf("Pop() = %q, %v; want a, true", v, ok)
	}
	if v, ok := l.PopBack(); !ok || v != "c" {
		t.Errorf("PopBack() = %q, %v; want c, true", v, ok)
	}
	checkSize(t, l, 1)
	if v, ok := l.PopBack(); !ok || v != "b" {
		t.Errorf("PopBack() = %q, %v; want b, true", v, ok)
	}
	checkSize(t, l, 0)

	if _, ok := l.Pop(); ok {
		t.Error("Pop() on empty list reported a value")
	}
	if _, ok := l.PopBack(); ok {
		t.Error("PopBack() on empty list reported a value")
	}
	checkSize(t, l, 0)
}

func TestLinkedList_PeekHead(t *testing.T) {
	l := New[int]()
	if _, ok := l.PeekHead(); ok {
		t.Error("PeekHead() on empty list reported a value")
	}
	l.Append(7)
	l.Append(8)
	for i := 0; i < 3; i++ {
		if v, ok := l.PeekHead(); !ok || v != 7 {
			t.Errorf("PeekHead() = %d, %v; want 7, true", v, ok)
		}
	}
	checkSize(t, l, 2)
	if diff := cmp.Diff([]int{7, 8}, l.Values()); diff != "" {
		t.Errorf("PeekHead changed the chain (-want +got):\n%s", diff)
	}
}

func TestLinkedList_Find(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		target  int
		wantHit bool
		wantOut []int
	}{
		{"empty", nil, 1, false, []int{}},
		{"head", []int{1, 2, 3}, 1, true, []int{2, 3}},
		{"middle", []int{1, 2, 3}, 2, true, []int{1, 3}},
		{"tail", []int{1, 2, 3}, 3, true, []int{1, 2}},
		{"miss", []int{1, 2, 3}, 9, false, []int{1, 2, 3}},
		{"first of duplicates", []int{5, 4, 5, 4}, 4, true, []int{5, 5, 4}},
		{"single", []int{6}, 6, true, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for _, v := range tt.in {
				l.Append(v)
			}
			before := l.Size()
			v, ok := l.Find(func(v int) bool { return v == tt.target })
			if ok != tt.wantHit {
				t.Fatalf("Find() ok = %v, want %v", ok, tt.wantHit)
			}
			if ok && v != tt.target {
				t.Errorf("Find() = %d, want %d", v, tt.target)
			}
			want := before
			if tt.wantHit {
				want--
			}
			checkSize(t, l, want)
			if diff := cmp.Diff(tt.wantOut, l.Values()); diff != "" {
				t.Errorf("chain after Find (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinkedList_FindValueAndPtr(t *testing.T) {
	l := New[string]()
	l.Append("hola")
	l.Append("mundo")
	l.Append(":D")

	if v, ok := l.FindValue(func(s string) bool { return s == "hola" }); !ok || v != "hola" {
		t.Errorf("FindValue() = %q, %v; want hola, true", v, ok)
	}
	checkSize(t, l, 3)

	p := l.FindPtr(func(s string) bool { return s == "mundo" })
	if p == nil {
		t.Fatal("FindPtr() = nil, want pointer to mundo")
	}
	*p = ""
	checkSize(t, l, 3)

	if v, ok := l.Find(func(s string) bool { return s == "" }); !ok || v != "" {
		t.Errorf("Find() = %q, %v; want empty string, true", v, ok)
	}
	checkSize(t, l, 2)
	if diff := cmp.Diff([]string{"hola", ":D"}, l.Values()); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}

	if l.FindPtr(func(s string) bool { return s == "nope" }) != nil {
		t.Error("FindPtr() on miss should be nil")
	}
	if _, ok := l.FindValue(func(s string) bool { return s == "nope" }); ok {
		t.Error("FindValue() on miss reported a value")
	}
}

// ForEach visits the tail as well; the loop must not stop at the last
// node's missing successor.
func TestLinkedList_ForEachVisitsEveryNode(t *testing.T) {
	l := New[int]()
	for _, v := range []int{10, 20, 30} {
		l.Append(v)
	}

	var vals, idx []int
	l.ForEach(func(v, i int) {
		vals = append(vals, v)
		idx = append(idx, i)
	})
	if diff := cmp.Diff([]int{10, 20, 30}, vals); diff != "" {
		t.Errorf("ForEach values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, idx); diff != "" {
		t.Errorf("ForEach indexes (-want +got):\n%s", diff)
	}

	single := New[int]()
	single.Append(1)
	calls := 0
	single.ForEach(func(int, int) { calls++ })
	if calls != 1 {
		t.Errorf("ForEach on one-node list made %d calls, want 1", calls)
	}

	calls = 0
	New[int]().ForEach(func(int, int) { calls++ })
	if calls != 0 {
		t.Errorf("ForEach on empty list made %d calls, want 0", calls)
	}
}

func TestLinkedList_ForEachMut(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 3} {
		l.Append(v)
	}
	l.ForEachMut(func(v *int, i int) { *v *= 10 + i })
	if diff := cmp.Diff([]int{10, 22, 36}, l.Values()); diff != "" {
		t.Errorf("ForEachMut result (-want +got):\n%s", diff)
	}
	checkSize(t, l, 3)
}

func TestLinkedList_All(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"x", "y", "z"} {
		l.Append(s)
	}
	var got []string
	for i, v := range l.All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]string{"x", "y"}, got); diff != "" {
		t.Errorf("All() with break (-want +got):\n%s", diff)
	}
}

func TestLinkedList_CloneIsIndependent(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 3} {
		l.Append(v)
	}
	c := l.Clone()
	c.Append(4)
	*c.FindPtr(func(v int) bool { return v == 1 }) = 100

	if diff := cmp.Diff([]int{1, 2, 3}, l.Values()); diff != "" {
		t.Errorf("original changed by clone (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{100, 2, 3, 4}, c.Values()); diff != "" {
		t.Errorf("clone contents (-want +got):\n%s", diff)
	}
	checkSize(t, c, 4)
}

func TestLinkedList_ClearLongChain(t *testing.T) {
	l := New[int]()
	for i := 0; i < 200000; i++ {
		l.Prepend(i)
	}
	checkSize(t, l, 200000)
	l.Clear()
	checkSize(t, l, 0)
	if !l.IsEmpty() {
		t.Error("list not empty after Clear")
	}
	l.Append(1)
	checkSize(t, l, 1)
}

func TestLinkedList_String(t *testing.T) {
	l := New[int]()
	if l.String() != "" {
		t.Errorf("String() on empty = %q, want empty", l.String())
	}
	l.Append(1)
	l.Append(2)
	if got := l.String(); got != " -> 1 -> 2" {
		t.Errorf("String() = %q", got)
	}
	if !strings.HasPrefix(l.String(), " -> ") {
		t.Error("String() should start with the arrow separator")
	}
}
