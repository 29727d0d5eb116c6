package sequence

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned when an operation needs at least one element.
	ErrEmpty = errors.New("sequence is empty")

	// ErrOutOfRange is returned when an index falls outside the valid range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidCapacity is returned when a container is created with capacity <= 0.
	ErrInvalidCapacity = errors.New("invalid capacity, must exceed zero")
)

// IndexError wraps ErrOutOfRange with the offending index and the current length.
func IndexError(i, n int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, n)
}
