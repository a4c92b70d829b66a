package hll

import (
	"math"
)

// biasCorrection is the asymptotic HyperLogLog bias constant. The
// classical derivation uses an m-dependent alpha that converges to this
// value for m >= 128; the estimator applies the limiting constant for
// every m. Error tolerances elsewhere are calibrated against this
// formula, not the textbook one.
const biasCorrection = 0.7213

// smallRangeFactor bounds the raw estimate below which linear counting
// takes over, provided some registers are still zero
const smallRangeFactor = 2.5

// estimate computes the approximate cardinality from the register state.
// There is no large-range branch: realistic stream sizes stay far below
// the 32-bit hash space.
func estimate(regs registerStore) float64 {
	m := regs.size()

	sum := 0.0
	zeroRegs := 0
	for i := uint32(0); i < m; i++ {
		rank := regs.get(i)
		if rank == 0 {
			zeroRegs++
		}
		sum += 1.0 / float64(uint64(1)<<rank)
	}

	mf := float64(m)
	raw := biasCorrection * mf * mf / sum

	if raw <= smallRangeFactor*mf && zeroRegs > 0 {
		return linearCounting(mf, float64(zeroRegs))
	}

	return raw
}

// linearCounting estimates cardinality from the share of registers still
// at zero. For an untouched sketch it yields m*ln(1) = 0.
func linearCounting(m, zeroRegs float64) float64 {
	return m * math.Log(m/zeroRegs)
}
