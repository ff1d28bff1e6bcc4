package container

// node is a single element of a List, referenced by exactly one
// predecessor (or the list head for the first).
type node[T any] struct {
	value T
	next  *node[T]
}

// List is an append-only singly linked list. It keeps no tail pointer:
// PushFront is O(1) while PushBack walks the chain and is O(n).
// The zero value is an empty list ready for use.
type List[T any] struct {
	head *node[T]
	size int
}

// NewList returns an empty list.
func NewList[T any]() *List[T] { return new(List[T]) }

// Len returns the number of stored values.
func (l *List[T]) Len() int { return l.size }

// PushFront inserts v before the current head.
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.size++
}

// PushBack appends v behind the last node.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.size++
}

// Slice returns a copy of the stored values in head-to-tail order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for c := l.Scan(); c.Next(); {
		out = append(out, c.Value())
	}
	return out
}

// Scan returns a cursor positioned before the first value. Cursors
// are independent of each other; calling Scan again restarts from the
// head.
func (l *List[T]) Scan() *Cursor[T] {
	return &Cursor[T]{next: l.head}
}

// Cursor is a forward cursor over a List.
type Cursor[T any] struct {
	cur  *node[T]
	next *node[T]
}

// Next advances the cursor to the next value and returns true if
// successful.
func (c *Cursor[T]) Next() bool {
	if c.next == nil {
		return false
	}
	c.cur, c.next = c.next, c.next.next
	return true
}

// Value returns the value of the current entry. It must only be
// called after a successful Next.
func (c *Cursor[T]) Value() T { return c.cur.value }
