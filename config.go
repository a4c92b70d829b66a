package hll

import (
	"errors"
)

// StorageKind selects the register backing store for a sketch
type StorageKind int

const (
	// StorageStandard keeps one machine word per register and supports Clear
	StorageStandard StorageKind = iota
	// StoragePacked keeps 5 bits per register, clamping ranks at 31
	StoragePacked
)

const (
	// MinPrecision is the smallest supported precision; below it the
	// register array degenerates and estimates become meaningless
	MinPrecision = 4
	// MaxPrecision is the largest supported precision; above it the
	// 32-bit hash has too few bits left for rank extraction
	MaxPrecision = 16
)

var (
	// ErrInvalidPrecision is returned when the precision is outside [4, 16]
	ErrInvalidPrecision = errors.New("precision must be in the range [4, 16]")
	// ErrNilHasher is returned when no hasher is supplied
	ErrNilHasher = errors.New("hasher must not be nil")
)

// Config represents the configuration for a HyperLogLog sketch
type Config struct {
	// Precision is the number of high-order hash bits used to select a
	// register; the sketch keeps 2^Precision registers
	Precision int
	// Hasher maps elements to 32-bit hash values
	Hasher Hasher
	// Storage selects the register backing store
	Storage StorageKind
}

// NewConfig creates a validated configuration with the standard register
// layout
func NewConfig(precision int, hasher Hasher) (*Config, error) {
	if precision < MinPrecision || precision > MaxPrecision {
		return nil, ErrInvalidPrecision
	}

	if hasher == nil {
		return nil, ErrNilHasher
	}

	return &Config{
		Precision: precision,
		Hasher:    hasher,
		Storage:   StorageStandard,
	}, nil
}

// NewPackedConfig creates a validated configuration with the packed
// register layout
func NewPackedConfig(precision int, hasher Hasher) (*Config, error) {
	config, err := NewConfig(precision, hasher)
	if err != nil {
		return nil, err
	}

	config.Storage = StoragePacked
	return config, nil
}
