package hll

// CachedSketch wraps a CardinalitySketch and caches the estimate value,
// so repeated reads between updates cost nothing
type CachedSketch struct {
	sketch   CardinalitySketch
	estimate float64
}

// NewCachedSketch creates a new cached sketch
func NewCachedSketch(sketch CardinalitySketch) *CachedSketch {
	return &CachedSketch{
		sketch:   sketch,
		estimate: sketch.Estimate(),
	}
}

// Add feeds one element into the sketch and refreshes the cached estimate
func (c *CachedSketch) Add(element []byte) {
	c.sketch.Add(element)
	c.estimate = c.sketch.Estimate()
}

// Clear resets the sketch to its initial state
func (c *CachedSketch) Clear() {
	c.sketch.Clear()
	c.estimate = 0
}

// Estimate returns the cached estimate value
func (c *CachedSketch) Estimate() float64 {
	return c.estimate
}
