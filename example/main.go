package main

import (
	"fmt"

	hll "github.com/probekit/go-hll"
)

func main() {
	hasher := hll.NewPolynomialHasher(0)

	// Create a sketch with 256 registers and the standard layout
	config, err := hll.NewConfig(8, hasher)
	if err != nil {
		panic(err)
	}
	sketch := hll.New(config)

	// Feed 10000 distinct elements into the sketch
	for i := 0; i < 10000; i++ {
		sketch.AddString(fmt.Sprintf("user-%d", i))
	}
	fmt.Printf("Estimate after 10000 distinct elements: %.0f\n", sketch.Estimate())

	// Re-adding elements does not change the estimate
	for i := 0; i < 10000; i++ {
		sketch.AddString(fmt.Sprintf("user-%d", i))
	}
	fmt.Printf("Estimate after re-adding the same elements: %.0f\n", sketch.Estimate())

	// The packed layout trades nothing but memory
	packedConfig, err := hll.NewPackedConfig(8, hasher)
	if err != nil {
		panic(err)
	}
	packed := hll.New(packedConfig)
	for i := 0; i < 10000; i++ {
		packed.AddString(fmt.Sprintf("user-%d", i))
	}
	fmt.Printf("Packed estimate: %.0f\n", packed.Estimate())
	fmt.Printf("Memory: standard %d bytes, packed %d bytes\n",
		sketch.MemoryUsage(), packed.MemoryUsage())

	// Clear resets the sketch to the empty state
	sketch.Clear()
	fmt.Printf("Estimate after clear: %.0f\n", sketch.Estimate())
}
