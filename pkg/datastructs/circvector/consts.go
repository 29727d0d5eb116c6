package circvector

const (
	// defaultCapacity is the initial buffer length used by New and the zero value.
	defaultCapacity = 10

	// growthFactor is the multiplier applied when the buffer is full.
	growthFactor = 2

	// shrinkDivisor: the buffer is halved once Len() <= Cap()/shrinkDivisor.
	shrinkDivisor = 4
)
