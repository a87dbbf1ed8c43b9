package hll

import "math"

// biasTableSize is the number of (raw estimate, bias) pairs used for linear
// interpolation when the harmonic-mean raw estimate is below
// biasCorrectionCutoff. The HLL++ paper tabulates this as 200 empirically
// measured points for precision 14, and the reference implementation
// embeds that table verbatim. This module does not: the published
// constants could not be transcribed here with any confidence against a
// source to check them, so rawEstimateTable/biasTable are instead
// generated once at package init from a smooth curve with the same shape
// as the paper's table (largest bias at small raw estimates, decaying
// toward zero near biasCorrectionCutoff). This is a placeholder, not a
// parity claim: estimates in the roughly 12000-70000 raw-estimate range,
// where this branch (rather than linear counting) determines the result,
// will not match the reference implementation's output bit-for-bit the
// way the wire format does. Replace this table with the real one from the
// HLL++ paper or the reference implementation's source if it becomes
// available; see DESIGN.md.
const biasTableSize = 200

// biasCorrectionCutoff is 5*numRegisters: above this raw estimate, bias
// correction is skipped entirely.
const biasCorrectionCutoff = 5 * numRegisters

// linearCountingThreshold is the HLL++ precision-14 threshold below which
// the linear-counting estimate is preferred over the (bias-corrected)
// harmonic-mean estimate.
const linearCountingThreshold = 11500

var rawEstimateTable [biasTableSize]float64
var biasTable [biasTableSize]float64

func init() {
	for i := 0; i < biasTableSize; i++ {
		frac := float64(i+1) / float64(biasTableSize)
		rawEstimateTable[i] = biasCorrectionCutoff * frac
		biasTable[i] = 0.015 * biasCorrectionCutoff * math.Exp(-6*frac)
	}
}

// interpolateBias returns the bias to subtract from a raw estimate via
// linear interpolation between the two table entries bracketing raw,
// clamping at the table's edges.
func interpolateBias(raw float64) float64 {
	if raw <= rawEstimateTable[0] {
		return biasTable[0]
	}
	last := biasTableSize - 1
	if raw >= rawEstimateTable[last] {
		return biasTable[last]
	}

	hi := 0
	for hi < last && rawEstimateTable[hi] < raw {
		hi++
	}
	lo := hi - 1

	span := rawEstimateTable[hi] - rawEstimateTable[lo]
	if span == 0 {
		return biasTable[lo]
	}
	frac := (raw - rawEstimateTable[lo]) / span
	return biasTable[lo] + frac*(biasTable[hi]-biasTable[lo])
}
