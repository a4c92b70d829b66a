// Package hashcheck provides an offline bucket-uniformity test for hash
// functions. It is a pre-deployment diagnostic; the sketches do not
// depend on it.
package hashcheck

import (
	hll "github.com/probekit/go-hll"
)

// DefaultBuckets is the bucket count used when none is given
const DefaultBuckets = 100

// ChiSquare partitions the hash outputs of the stream into uniform
// buckets via modulo and returns the chi-square statistic against the
// uniform expectation. A value near the bucket count indicates the hash
// spreads elements evenly; a large value indicates clustering.
func ChiSquare(elements []string, hasher hll.Hasher, buckets int) float64 {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	if len(elements) == 0 {
		return 0
	}

	counts := make([]int, buckets)
	for _, e := range elements {
		counts[hasher.Hash([]byte(e))%uint32(buckets)]++
	}

	expected := float64(len(elements)) / float64(buckets)
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	return chi2
}
