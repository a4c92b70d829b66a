package hll

// Hasher maps an arbitrary byte sequence to a 32-bit unsigned integer.
// The hash value selects a register index and supplies the bits whose
// leading-zero run is measured, so its bit distribution matters; its
// confidentiality does not.
type Hasher interface {
	// Hash returns the 32-bit hash of data. It must be deterministic
	// across calls and across process runs.
	Hash(data []byte) uint32
}

// HasherFunc adapts a bare function to the Hasher interface
type HasherFunc func(data []byte) uint32

// Hash calls f(data)
func (f HasherFunc) Hash(data []byte) uint32 {
	return f(data)
}

// PolynomialHasher hashes a byte sequence by polynomial accumulation with
// base 31, wrapping modulo 2^32. It is fast and deterministic, not
// cryptographically secure.
type PolynomialHasher struct {
	seed uint32
}

// NewPolynomialHasher creates a new polynomial hasher. The seed is held
// for configuration compatibility and does not affect the hash value.
func NewPolynomialHasher(seed uint32) *PolynomialHasher {
	return &PolynomialHasher{seed: seed}
}

// Hash returns the polynomial hash of data
func (p *PolynomialHasher) Hash(data []byte) uint32 {
	var h uint32
	for _, c := range data {
		h = h*31 + uint32(c)
	}
	return h
}
