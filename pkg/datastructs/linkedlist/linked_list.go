package linkedlist

import (
	"iter"

	"github.com/huynhanx03/go-collections/pkg/datastructs/sequence"
)

var _ sequence.Sequence[int] = (*LinkedList[int])(nil)

// node represents a single node in the list.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list.
// Front operations are O(1); back and indexed operations walk the chain.
// The zero value is an empty list. It is NOT thread-safe.
type LinkedList[T comparable] struct {
	front *node[T]
	size  int
}

// New creates an empty LinkedList.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Empty reports whether the list holds no elements.
func (l *LinkedList[T]) Empty() bool {
	return l.size == 0
}

// Len returns the number of elements.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// PushFront inserts v before the current front.
func (l *LinkedList[T]) PushFront(v T) {
	l.front = &node[T]{value: v, next: l.front}
	l.size++
}

// PushBack walks to the last node and links v after it.
func (l *LinkedList[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.front == nil {
		l.front = n
		l.size++
		return
	}

	l.last().next = n
	l.size++
}

// PopFront unlinks the front node and returns its value.
func (l *LinkedList[T]) PopFront() (T, error) {
	n := l.popFront()
	if n == nil {
		var zero T
		return zero, sequence.ErrEmpty
	}
	return n.value, nil
}

// PopBack unlinks the last node and returns its value.
func (l *LinkedList[T]) PopBack() (T, error) {
	if l.front == nil {
		var zero T
		return zero, sequence.ErrEmpty
	}

	// Single node: the list becomes empty.
	if l.front.next == nil {
		return l.PopFront()
	}

	prev := l.front
	for prev.next.next != nil {
		prev = prev.next
	}

	tail := prev.next
	prev.next = nil
	l.size--
	return tail.value, nil
}

// Front returns the first value without removing it.
func (l *LinkedList[T]) Front() (T, error) {
	if l.front == nil {
		var zero T
		return zero, sequence.ErrEmpty
	}
	return l.front.value, nil
}

// Back returns the last value without removing it.
func (l *LinkedList[T]) Back() (T, error) {
	if l.front == nil {
		var zero T
		return zero, sequence.ErrEmpty
	}
	return l.last().value, nil
}

// Clear pops every node from the front.
func (l *LinkedList[T]) Clear() {
	for n := l.popFront(); n != nil; n = l.popFront() {
	}
}

// At returns the value at index i.
func (l *LinkedList[T]) At(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Set replaces the value at index i.
func (l *LinkedList[T]) Set(i int, v T) error {
	n, err := l.nodeAt(i)
	if err != nil {
		return err
	}
	n.value = v
	return nil
}

// Find returns the index of the first value equal to v, or sequence.NotFound.
func (l *LinkedList[T]) Find(v T) int {
	idx := 0
	for current := l.front; current != nil; current = current.next {
		if current.value == v {
			return idx
		}
		idx++
	}
	return sequence.NotFound
}

// RemoveAt unlinks the node at index i.
func (l *LinkedList[T]) RemoveAt(i int) error {
	if i < 0 || i >= l.size {
		return sequence.IndexError(i, l.size)
	}

	if i == 0 {
		l.popFront()
		return nil
	}

	prev, _ := l.nodeAt(i - 1)
	target := prev.next
	prev.next = target.next
	target.next = nil
	l.size--
	return nil
}

// InsertAfter links v right after the node at index i.
// Returns ErrEmpty on an empty list and ErrOutOfRange if i is not in [0, Len()).
func (l *LinkedList[T]) InsertAfter(i int, v T) error {
	if l.size == 0 {
		return sequence.ErrEmpty
	}

	current, err := l.nodeAt(i)
	if err != nil {
		return err
	}

	current.next = &node[T]{value: v, next: current.next}
	l.size++
	return nil
}

// RemoveEveryOther unlinks every second node, starting with the one after the front.
func (l *LinkedList[T]) RemoveEveryOther() {
	if l.size < 2 {
		return
	}

	for prev := l.front; prev != nil && prev.next != nil; prev = prev.next {
		removed := prev.next
		prev.next = removed.next
		removed.next = nil
		l.size--
	}
}

// Clone returns a deep copy of the list, preserving order.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	out := &LinkedList[T]{}
	out.copyChain(l)
	return out
}

// CopyFrom replaces the contents of l with a deep copy of other.
// Copying a list onto itself is a no-op.
func (l *LinkedList[T]) CopyFrom(other *LinkedList[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.copyChain(other)
}

// All yields index/value pairs from front to back.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for current := l.front; current != nil; current = current.next {
			if !yield(idx, current.value) {
				return
			}
			idx++
		}
	}
}

// Values yields the values from front to back.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.front; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// String renders the list as "[e0, e1, ...]".
func (l *LinkedList[T]) String() string {
	return sequence.Format(l.Values())
}

// copyChain appends a node-by-node copy of other's chain to an empty l.
func (l *LinkedList[T]) copyChain(other *LinkedList[T]) {
	var sentinel node[T]
	tail := &sentinel
	for current := other.front; current != nil; current = current.next {
		tail.next = &node[T]{value: current.value}
		tail = tail.next
	}
	l.front = sentinel.next
	l.size = other.size
}

// nodeAt walks i links from the front.
func (l *LinkedList[T]) nodeAt(i int) (*node[T], error) {
	if i < 0 || i >= l.size {
		return nil, sequence.IndexError(i, l.size)
	}

	current := l.front
	for ; i > 0; i-- {
		current = current.next
	}
	return current, nil
}

// last returns the tail node. The list must be non-empty.
func (l *LinkedList[T]) last() *node[T] {
	current := l.front
	for current.next != nil {
		current = current.next
	}
	return current
}

// popFront removes and returns the front node, or nil if the list is empty.
func (l *LinkedList[T]) popFront() *node[T] {
	if l.front == nil {
		return nil
	}

	n := l.front
	l.front = n.next
	n.next = nil
	l.size--
	return n
}
