package circvector

import (
	"testing"
)

// sizes defines the benchmark size matrix.
var sizes = []struct {
	name string
	n    int
}{
	{"16", 16},
	{"1K", 1024},
	{"64K", 64 * 1024},
}

// =============================================================================
// BenchmarkPush - amortized cost of growth at both ends
// =============================================================================

func BenchmarkPush(b *testing.B) {
	for _, size := range sizes {
		b.Run("Back/"+size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c := New[int]()
				for j := 0; j < size.n; j++ {
					c.PushBack(j)
				}
			}
		})

		b.Run("Front/"+size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c := New[int]()
				for j := 0; j < size.n; j++ {
					c.PushFront(j)
				}
			}
		})
	}
}

// =============================================================================
// BenchmarkQueue - steady-state FIFO through a wrapped buffer
// =============================================================================

func BenchmarkQueue(b *testing.B) {
	c := New[int]()
	for j := 0; j < 8; j++ {
		c.PushBack(j)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.PushBack(i)
		_, _ = c.PopFront()
	}
}

// =============================================================================
// BenchmarkAt - random access
// =============================================================================

func BenchmarkAt(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			c := New[int]()
			for j := 0; j < size.n; j++ {
				c.PushFront(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = c.At(i % size.n)
			}
		})
	}
}

// =============================================================================
// BenchmarkRemoveAt - in-place shifting from the nearer end
// =============================================================================

func BenchmarkRemoveAt(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			c := New[int]()
			for j := 0; j < size.n; j++ {
				c.PushBack(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = c.RemoveAt(size.n / 3)
				c.PushBack(i)
			}
		})
	}
}
