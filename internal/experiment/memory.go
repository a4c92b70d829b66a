package experiment

import (
	hll "github.com/probekit/go-hll"
)

// MemoryComparison reports the register footprint of both layouts at one
// precision
type MemoryComparison struct {
	Precision     int
	Registers     int
	StandardBytes int
	PackedBytes   int
	SavedBytes    int
	SavedPercent  float64
}

// Memory builds one sketch per layout and reports their footprints
func Memory(precision int, hasher hll.Hasher) (MemoryComparison, error) {
	standardConfig, err := hll.NewConfig(precision, hasher)
	if err != nil {
		return MemoryComparison{}, err
	}
	packedConfig, err := hll.NewPackedConfig(precision, hasher)
	if err != nil {
		return MemoryComparison{}, err
	}

	standard := hll.New(standardConfig)
	packed := hll.New(packedConfig)

	standardBytes := standard.MemoryUsage()
	packedBytes := packed.MemoryUsage()
	saved := standardBytes - packedBytes

	return MemoryComparison{
		Precision:     precision,
		Registers:     standard.NumRegisters(),
		StandardBytes: standardBytes,
		PackedBytes:   packedBytes,
		SavedBytes:    saved,
		SavedPercent:  float64(saved) / float64(standardBytes) * 100,
	}, nil
}
