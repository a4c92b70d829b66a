package hll

// CardinalitySketch represents a sketch that estimates the number of
// distinct elements observed in a stream
type CardinalitySketch interface {
	// Add feeds one element into the sketch
	Add(element []byte)

	// Estimate returns the approximate number of distinct elements added
	Estimate() float64

	// Clear resets the sketch to its initial state
	Clear()
}

// MemoryReporter is implemented by sketches that can report the memory
// footprint of their register state
type MemoryReporter interface {
	// MemoryUsage returns the register array footprint in bytes
	MemoryUsage() int
}
