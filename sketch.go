package hll

import (
	"math/bits"
)

// Sketch is a HyperLogLog cardinality sketch. It retains no elements; each
// register only remembers the maximum rank seen among the elements routed
// to it, so the sketch is a lossy summary of the stream.
//
// A Sketch is not safe for concurrent use. Register updates commute, so a
// concurrent extension would only need to serialize Add calls, but this
// implementation assumes a single writer.
type Sketch struct {
	precision uint8
	m         uint32
	regs      registerStore
	hasher    Hasher
}

// New creates a new sketch from a validated configuration
func New(config *Config) *Sketch {
	m := uint32(1) << config.Precision

	var regs registerStore
	switch config.Storage {
	case StoragePacked:
		regs = newPackedRegisters(m)
	default:
		regs = newStandardRegisters(m)
	}

	return &Sketch{
		precision: uint8(config.Precision),
		m:         m,
		regs:      regs,
		hasher:    config.Hasher,
	}
}

// Add feeds one element into the sketch. The top precision bits of the
// hash select a register; the remaining bits are examined for their run
// of leading zeros. At most one register is raised, and only ever to a
// larger rank, so Add is idempotent and order independent.
//
// Add never fails; the empty element is valid.
func (s *Sketch) Add(element []byte) {
	h := s.hasher.Hash(element)
	idx := h >> (32 - s.precision)
	remainder := h << s.precision

	rank := s.rank(remainder)
	if rank > s.regs.get(idx) {
		s.regs.set(idx, rank)
	}
}

// AddString is a convenience wrapper around Add
func (s *Sketch) AddString(element string) {
	s.Add([]byte(element))
}

// rank returns one plus the number of leading zero bits of the remainder.
// An all-zero remainder counts as the maximal natural rank for its bit
// width, 32 - precision, not as an infinite run.
func (s *Sketch) rank(remainder uint32) uint8 {
	if remainder == 0 {
		return 32 - s.precision
	}
	return uint8(bits.LeadingZeros32(remainder)) + 1
}

// Estimate returns the approximate number of distinct elements added so
// far. It is a pure function of the current register state: calling it
// twice without an intervening Add returns the same value, and a freshly
// constructed or cleared sketch returns exactly 0.
func (s *Sketch) Estimate() float64 {
	return estimate(s.regs)
}

// Clear resets every register to zero without reallocating
func (s *Sketch) Clear() {
	s.regs.clear()
}

// MemoryUsage returns the register array footprint in bytes: 4 bytes per
// register for the standard layout, floor(m*5/8) for the packed layout.
func (s *Sketch) MemoryUsage() int {
	return s.regs.bytes()
}

// Precision returns the number of hash bits used for register indexing
func (s *Sketch) Precision() int {
	return int(s.precision)
}

// NumRegisters returns the register count m = 2^precision
func (s *Sketch) NumRegisters() int {
	return int(s.m)
}
