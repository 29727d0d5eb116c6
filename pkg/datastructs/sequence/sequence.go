package sequence

import "iter"

// NotFound is returned by Find when no element matches.
const NotFound = -1

// Sequence is an index-addressable container that can grow and shrink at both ends.
// Implementations are NOT thread-safe.
type Sequence[T comparable] interface {
	// Empty reports whether the sequence holds no elements.
	Empty() bool

	// Len returns the number of elements.
	Len() int

	// PushFront inserts v before the first element.
	PushFront(v T)

	// PushBack inserts v after the last element.
	PushBack(v T)

	// PopFront removes and returns the first element.
	// Returns ErrEmpty if the sequence is empty.
	PopFront() (T, error)

	// PopBack removes and returns the last element.
	// Returns ErrEmpty if the sequence is empty.
	PopBack() (T, error)

	// At returns the element at index i.
	// Returns ErrOutOfRange if i is not in [0, Len()).
	At(i int) (T, error)

	// Set replaces the element at index i.
	// Returns ErrOutOfRange if i is not in [0, Len()).
	Set(i int, v T) error

	// Find returns the index of the first element equal to v, or NotFound.
	Find(v T) int

	// RemoveAt removes the element at index i, shifting later elements down.
	RemoveAt(i int) error

	// InsertAfter inserts v right after the element at index i.
	InsertAfter(i int, v T) error

	// RemoveEveryOther removes every element at an odd index.
	RemoveEveryOther()

	// Clear removes all elements.
	Clear()

	// String renders the sequence as "[e0, e1, ...]".
	String() string

	// All yields index/value pairs from front to back.
	All() iter.Seq2[int, T]

	// Values yields the elements from front to back.
	Values() iter.Seq[T]
}
