// Package stream generates synthetic element streams for exercising the
// cardinality sketches.
package stream

import (
	"math/rand"
)

// alphabet is the element character set: ASCII letters, digits and dash
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"

const (
	minLength = 5
	maxLength = 30
)

// Generator produces pseudorandom string streams. The same seed yields
// the same stream, so experiments are repeatable.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with its own seeded source
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// String produces one element with a length uniform in [5, 30]
func (g *Generator) String() string {
	length := minLength + g.rng.Intn(maxLength-minLength+1)
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return string(b)
}

// Strings produces a stream of n elements
func (g *Generator) Strings(n int) []string {
	elements := make([]string, n)
	for i := range elements {
		elements[i] = g.String()
	}
	return elements
}

// SplitByPercent returns one prefix of the stream per requested percent,
// each sized len(stream)*p/100 with truncating division. Later prefixes
// contain the earlier ones, modelling a growing stream.
func SplitByPercent(elements []string, percents []int) [][]string {
	parts := make([][]string, 0, len(percents))
	for _, p := range percents {
		n := len(elements) * p / 100
		parts = append(parts, elements[:n])
	}
	return parts
}

// CountUnique returns the exact number of distinct elements in the
// stream. It keeps every element in memory, which is exactly the cost a
// sketch avoids; it exists to supply ground truth for experiments.
func CountUnique(elements []string) int {
	seen := make(map[string]struct{}, len(elements))
	for _, e := range elements {
		seen[e] = struct{}{}
	}
	return len(seen)
}
