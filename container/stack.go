package container

// Stack is a LIFO view over a Sequence. Popped slots are released
// logically, no storage compaction takes place. The zero value is an
// empty stack ready for use.
type Stack[T any] struct {
	seq Sequence[T]
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] { return new(Stack[T]) }

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.seq.Len() }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.seq.Len() == 0 }

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.seq.Append(v) }

// Pop removes and returns the top element. It returns
// ErrEmptyContainer when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if s.seq.Len() == 0 {
		var none T
		return none, ErrEmptyContainer
	}
	top := s.seq.data[s.seq.size-1]
	s.seq.shrink()
	return top, nil
}

// Peek returns the top element without removing it. The second return
// value is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.seq.Len() == 0 {
		var none T
		return none, false
	}
	return s.seq.data[s.seq.size-1], true
}
