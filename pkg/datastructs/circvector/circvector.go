package circvector

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-collections/pkg/datastructs/sequence"
)

var _ sequence.Sequence[int] = (*CircVector[int])(nil)

// CircVector is a growable double-ended queue backed by a ring buffer.
// Logical index i lives in slot (front + i) mod Cap().
// The zero value is an empty vector that allocates defaultCapacity on first push.
// It is NOT thread-safe.
type CircVector[T comparable] struct {
	buf    []T
	size   int // number of live elements
	front  int // slot holding logical element 0
	minCap int // capacity requested at construction; shrinking stops here
}

// New creates an empty CircVector with the default capacity.
func New[T comparable]() *CircVector[T] {
	return &CircVector[T]{
		buf:    make([]T, defaultCapacity),
		minCap: defaultCapacity,
	}
}

// NewWithCapacity creates an empty CircVector with the given capacity.
// Returns ErrInvalidCapacity if capacity <= 0.
func NewWithCapacity[T comparable](capacity int) (*CircVector[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(sequence.ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &CircVector[T]{
		buf:    make([]T, capacity),
		minCap: capacity,
	}, nil
}

// Empty reports whether the vector holds no elements.
func (c *CircVector[T]) Empty() bool {
	return c.size == 0
}

// Len returns the number of elements.
func (c *CircVector[T]) Len() int {
	return c.size
}

// Cap returns the length of the underlying buffer.
func (c *CircVector[T]) Cap() int {
	return len(c.buf)
}

// PushFront inserts v before the first element, growing if full.
func (c *CircVector[T]) PushFront(v T) {
	if c.size == len(c.buf) {
		c.grow()
	}
	c.front = c.wrapIndex(c.front - 1)
	c.buf[c.front] = v
	c.size++
}

// PushBack inserts v after the last element, growing if full.
func (c *CircVector[T]) PushBack(v T) {
	if c.size == len(c.buf) {
		c.grow()
	}
	c.buf[c.slot(c.size)] = v
	c.size++
}

// PopFront removes and returns the first element.
func (c *CircVector[T]) PopFront() (T, error) {
	var zero T
	if c.size == 0 {
		return zero, sequence.ErrEmpty
	}

	v := c.buf[c.front]
	c.buf[c.front] = zero
	c.front = c.wrapIndex(c.front + 1)
	c.size--
	return v, nil
}

// PopBack removes and returns the last element.
func (c *CircVector[T]) PopBack() (T, error) {
	var zero T
	if c.size == 0 {
		return zero, sequence.ErrEmpty
	}

	idx := c.slot(c.size - 1)
	v := c.buf[idx]
	c.buf[idx] = zero
	c.size--
	return v, nil
}

// Front returns the first element without removing it.
func (c *CircVector[T]) Front() (T, error) {
	if c.size == 0 {
		var zero T
		return zero, sequence.ErrEmpty
	}
	return c.buf[c.front], nil
}

// Back returns the last element without removing it.
func (c *CircVector[T]) Back() (T, error) {
	if c.size == 0 {
		var zero T
		return zero, sequence.ErrEmpty
	}
	return c.buf[c.slot(c.size-1)], nil
}

// At returns the element at logical index i.
func (c *CircVector[T]) At(i int) (T, error) {
	if i < 0 || i >= c.size {
		var zero T
		return zero, sequence.IndexError(i, c.size)
	}
	return c.buf[c.slot(i)], nil
}

// Set replaces the element at logical index i.
func (c *CircVector[T]) Set(i int, v T) error {
	if i < 0 || i >= c.size {
		return sequence.IndexError(i, c.size)
	}
	c.buf[c.slot(i)] = v
	return nil
}

// Clear drops all elements. The buffer is kept for reuse.
func (c *CircVector[T]) Clear() {
	c.size = 0
	c.front = 0
}

// Find returns the logical index of the first element equal to v, or sequence.NotFound.
func (c *CircVector[T]) Find(v T) int {
	for i := 0; i < c.size; i++ {
		if c.buf[c.slot(i)] == v {
			return i
		}
	}
	return sequence.NotFound
}

// RemoveAt removes the element at logical index i.
// Elements are shifted in place from whichever end is nearer; the buffer is
// halved once it is at most a quarter full.
func (c *CircVector[T]) RemoveAt(i int) error {
	if i < 0 || i >= c.size {
		return sequence.IndexError(i, c.size)
	}

	var zero T
	if i < c.size/2 {
		// Close the gap by moving the head segment one slot back.
		for j := i; j > 0; j-- {
			c.buf[c.slot(j)] = c.buf[c.slot(j-1)]
		}
		c.buf[c.front] = zero
		c.front = c.wrapIndex(c.front + 1)
	} else {
		for j := i; j < c.size-1; j++ {
			c.buf[c.slot(j)] = c.buf[c.slot(j+1)]
		}
		c.buf[c.slot(c.size-1)] = zero
	}
	c.size--

	c.maybeShrink()
	return nil
}

// InsertAfter inserts v right after logical index i.
// Returns ErrEmpty on an empty vector and ErrOutOfRange if i is not in [0, Len()).
func (c *CircVector[T]) InsertAfter(i int, v T) error {
	if c.size == 0 {
		return sequence.ErrEmpty
	}
	if i < 0 || i >= c.size {
		return sequence.IndexError(i, c.size)
	}

	if c.size == len(c.buf) {
		c.grow()
	}

	pos := i + 1
	if pos < c.size/2 {
		// Open the gap by moving the head segment one slot forward.
		c.front = c.wrapIndex(c.front - 1)
		for j := 0; j < pos; j++ {
			c.buf[c.slot(j)] = c.buf[c.slot(j+1)]
		}
	} else {
		for j := c.size; j > pos; j-- {
			c.buf[c.slot(j)] = c.buf[c.slot(j-1)]
		}
	}
	c.buf[c.slot(pos)] = v
	c.size++
	return nil
}

// RemoveEveryOther removes every element at an odd logical index.
// Survivors are compacted in place; the buffer is not reallocated.
func (c *CircVector[T]) RemoveEveryOther() {
	if c.size < 2 {
		return
	}

	kept := 0
	for j := 0; j < c.size; j += 2 {
		c.buf[c.slot(kept)] = c.buf[c.slot(j)]
		kept++
	}

	var zero T
	for j := kept; j < c.size; j++ {
		c.buf[c.slot(j)] = zero
	}
	c.size = kept
}

// Clone returns a deep copy with the same capacity, linearized from slot 0.
func (c *CircVector[T]) Clone() *CircVector[T] {
	out := &CircVector[T]{
		buf:    make([]T, len(c.buf)),
		size:   c.size,
		minCap: c.minCap,
	}
	c.copyTo(out.buf)
	return out
}

// CopyFrom replaces the contents of c with a deep copy of other.
// Copying a vector onto itself is a no-op.
func (c *CircVector[T]) CopyFrom(other *CircVector[T]) {
	if c == other {
		return
	}

	buf := make([]T, len(other.buf))
	other.copyTo(buf)
	c.buf = buf
	c.size = other.size
	c.front = 0
	c.minCap = other.minCap
}

// All yields index/value pairs in logical order.
func (c *CircVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.size; i++ {
			if !yield(i, c.buf[c.slot(i)]) {
				return
			}
		}
	}
}

// Values yields the elements in logical order.
func (c *CircVector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < c.size; i++ {
			if !yield(c.buf[c.slot(i)]) {
				return
			}
		}
	}
}

// String renders the vector as "[e0, e1, ...]".
func (c *CircVector[T]) String() string {
	return sequence.Format(c.Values())
}

// slot maps logical index i to its position in buf.
func (c *CircVector[T]) slot(i int) int {
	return c.wrapIndex(c.front + i)
}

// wrapIndex returns idx wrapped within the buffer length.
func (c *CircVector[T]) wrapIndex(idx int) int {
	n := len(c.buf)
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

// copyTo writes the live elements into dst in logical order.
// dst must have room for Len() elements.
func (c *CircVector[T]) copyTo(dst []T) {
	if c.size == 0 {
		return
	}
	end := c.front + c.size
	if end <= len(c.buf) {
		copy(dst, c.buf[c.front:end])
		return
	}
	n := copy(dst, c.buf[c.front:])
	copy(dst[n:], c.buf[:c.size-n])
}

// grow doubles the buffer. A zero-value vector gets defaultCapacity.
func (c *CircVector[T]) grow() {
	newCap := len(c.buf) * growthFactor
	if newCap == 0 {
		newCap = defaultCapacity
	}
	c.resize(newCap)
}

// maybeShrink halves the buffer when it is at most a quarter full,
// never going below the construction capacity.
func (c *CircVector[T]) maybeShrink() {
	floor := c.minCap
	if floor == 0 {
		floor = defaultCapacity
	}

	oldCap := len(c.buf)
	if oldCap <= floor || c.size > oldCap/shrinkDivisor {
		return
	}
	c.resize(max(oldCap/growthFactor, floor))
}

// resize moves the live elements into a new buffer of newCap slots, starting at slot 0.
func (c *CircVector[T]) resize(newCap int) {
	newBuf := make([]T, newCap)
	c.copyTo(newBuf)
	c.buf = newBuf
	c.front = 0
}
