package chainx

// Queue is the FIFO view of a LinkedList: Append enqueues at the tail and Pop
// dequeues from the head.
type Queue[T any] interface {
	Append(v T)
	Pop() (T, bool)
	Size() int
}

// Stack is the LIFO view of a LinkedList: Prepend pushes at the head and Pop
// removes from the head.
type Stack[T any] interface {
	Prepend(v T)
	Pop() (T, bool)
	Size() int
}

var (
	_ Queue[int] = (*LinkedList[int])(nil)
	_ Stack[int] = (*LinkedList[int])(nil)
)

// NewQueue returns an empty list behind its Queue view.
func NewQueue[T any]() Queue[T] {
	return New[T]()
}

// NewStack returns an empty list behind its Stack view.
func NewStack[T any]() Stack[T] {
	return New[T]()
}
