package experiment

import (
	"github.com/axiomhq/hyperloglog"
	log "github.com/sirupsen/logrus"

	hll "github.com/probekit/go-hll"
	"github.com/probekit/go-hll/internal/stream"
)

// CompareResult pairs the sketch under test with a 64-bit reference
// sketch over the same stream
type CompareResult struct {
	StreamSize        int
	Real              int
	Estimate          float64
	ErrorPercent      float64
	Reference         uint64
	ReferenceErrorPct float64
}

// Compare feeds the same streams into the polynomial-hash sketch under
// test and into an axiomhq/hyperloglog reference sketch at precision 14.
// The gap between the two error columns isolates how much accuracy the
// 32-bit polynomial hash costs compared to a modern 64-bit pipeline.
func Compare(sizes []int, seed int64, precision int, hasher hll.Hasher) ([]CompareResult, error) {
	gen := stream.NewGenerator(seed)

	results := make([]CompareResult, 0, len(sizes))
	for _, size := range sizes {
		elements := gen.Strings(size)
		real := stream.CountUnique(elements)

		config, err := hll.NewPackedConfig(precision, hasher)
		if err != nil {
			return nil, err
		}
		sketch := hll.New(config)
		reference := hyperloglog.New14()

		for _, e := range elements {
			sketch.AddString(e)
			reference.Insert([]byte(e))
		}

		estimate := sketch.Estimate()
		refEstimate := reference.Estimate()
		result := CompareResult{
			StreamSize:        size,
			Real:              real,
			Estimate:          estimate,
			ErrorPercent:      relErrPercent(estimate, real),
			Reference:         refEstimate,
			ReferenceErrorPct: relErrPercent(float64(refEstimate), real),
		}
		results = append(results, result)

		log.WithFields(log.Fields{
			"stream_size":   size,
			"real":          real,
			"estimate":      int(estimate),
			"reference":     refEstimate,
			"error_pct":     result.ErrorPercent,
			"reference_pct": result.ReferenceErrorPct,
		}).Debug("comparison complete")
	}

	return results, nil
}
