// Package experiment orchestrates accuracy and memory experiments for
// the cardinality sketches and renders their results as reports.
package experiment

import (
	"math"

	log "github.com/sirupsen/logrus"

	hll "github.com/probekit/go-hll"
	"github.com/probekit/go-hll/internal/stream"
)

// relErrPercent returns |estimate - real| / real as a percentage
func relErrPercent(estimate float64, real int) float64 {
	if real == 0 {
		return 0
	}
	return math.Abs(estimate-float64(real)) / float64(real) * 100
}

// SweepResult is the outcome of populating one sketch at one precision
type SweepResult struct {
	Precision    int
	Registers    int
	Real         int
	Estimate     float64
	ErrorPercent float64
}

// PrecisionSweep populates one sketch per precision in
// [minPrecision, maxPrecision] from the same stream and reports how the
// estimate tracks the exact distinct count as the register array grows.
func PrecisionSweep(elements []string, minPrecision, maxPrecision int, hasher hll.Hasher, storage hll.StorageKind) ([]SweepResult, error) {
	real := stream.CountUnique(elements)

	results := make([]SweepResult, 0, maxPrecision-minPrecision+1)
	for p := minPrecision; p <= maxPrecision; p++ {
		config, err := hll.NewConfig(p, hasher)
		if err != nil {
			return nil, err
		}
		config.Storage = storage

		sketch := hll.New(config)
		for _, e := range elements {
			sketch.AddString(e)
		}

		estimate := sketch.Estimate()
		result := SweepResult{
			Precision:    p,
			Registers:    sketch.NumRegisters(),
			Real:         real,
			Estimate:     estimate,
			ErrorPercent: relErrPercent(estimate, real),
		}
		results = append(results, result)

		log.WithFields(log.Fields{
			"precision": p,
			"registers": result.Registers,
			"real":      real,
			"estimate":  int(estimate),
			"error_pct": result.ErrorPercent,
		}).Debug("sweep step complete")
	}

	return results, nil
}

// Row is one record of the growth experiment
type Row struct {
	StreamSize   int
	Percent      int
	Real         int
	Estimate     float64
	ErrorPercent float64
}

// Options configure the growth experiment
type Options struct {
	// Sizes are the full stream lengths to generate
	Sizes []int
	// Percents are the growing prefixes observed per stream
	Percents []int
	// Runs is the number of independent streams per size
	Runs int
	// Precision of the sketch under test
	Precision int
	// Seed for the stream generator
	Seed int64
	// Storage layout of the sketch under test
	Storage hll.StorageKind
}

// DefaultOptions returns the canonical experiment configuration
func DefaultOptions() Options {
	return Options{
		Sizes:     []int{10000, 50000, 100000},
		Percents:  []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		Runs:      5,
		Precision: 8,
		Seed:      2,
		Storage:   hll.StoragePacked,
	}
}

// Growth tracks estimate accuracy as a stream grows. For every size and
// run it generates a fresh stream, then observes growing prefixes of it:
// at each percent the whole prefix is fed into the sketch and the
// estimate is compared against the exact distinct count of that prefix.
// Re-adding elements from an earlier prefix is harmless because register
// updates are idempotent.
func Growth(opts Options, hasher hll.Hasher) ([]Row, error) {
	gen := stream.NewGenerator(opts.Seed)

	var rows []Row
	for _, size := range opts.Sizes {
		log.WithField("stream_size", size).Info("growth experiment: new stream size")

		for run := 0; run < opts.Runs; run++ {
			elements := gen.Strings(size)
			parts := stream.SplitByPercent(elements, opts.Percents)

			config, err := hll.NewConfig(opts.Precision, hasher)
			if err != nil {
				return nil, err
			}
			config.Storage = opts.Storage
			sketch := hll.New(config)

			for i, part := range parts {
				for _, e := range part {
					sketch.AddString(e)
				}

				real := stream.CountUnique(part)
				estimate := sketch.Estimate()
				rows = append(rows, Row{
					StreamSize:   size,
					Percent:      opts.Percents[i],
					Real:         real,
					Estimate:     estimate,
					ErrorPercent: relErrPercent(estimate, real),
				})
			}
		}
	}

	return rows, nil
}
