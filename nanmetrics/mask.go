package nanmetrics

import "math"

// Neutralization turns a missing-label position into one that contributes
// a known, excludable quantity to the underlying statistic, without ever
// changing tensor shape. Every helper here clones before mutating:
// caller-owned buffers are never written.

// missingMask flags every position where targets holds the NaN
// missing-label sentinel, and counts them.
func missingMask(targets []float64) (mask []bool, missing int) {
	mask = make([]bool, len(targets))
	for i, t := range targets {
		if math.IsNaN(t) {
			mask[i] = true
			missing++
		}
	}

	return mask, missing
}

// maskByPrediction returns a clone of targets where each missing entry is
// replaced by 0 or 1 — whichever is closer to the prediction at that
// position (cut at 0.5). This minimizes the loss the entry injects before
// its weight is zeroed.
func maskByPrediction(preds, targets []float64, mask []bool) []float64 {
	t := clone(targets)
	for i := range t {
		if !mask[i] {
			continue
		}
		if preds[i] < 0.5 {
			t[i] = 0
		} else {
			t[i] = 1
		}
	}

	return t
}

// maskByZero returns clones of both tensors with missing positions forced
// to 0 in each, so prediction and target agree there and the position's
// residual vanishes.
func maskByZero(preds, targets []float64, mask []bool) (p, t []float64) {
	p = clone(preds)
	t = clone(targets)
	for i := range mask {
		if mask[i] {
			p[i] = 0
			t[i] = 0
		}
	}

	return p, t
}

// maskByClass returns clones with a deliberate class mismatch at missing
// positions: target 1, prediction 0. Exclusion then relies entirely on
// whatever ignore mechanism the underlying statistic supports; the plain
// confusion statistics in this package have none, so every missing label
// lands as a false negative. See the Precision/Accuracy/Recall docs.
func maskByClass(preds, targets []float64, mask []bool) (p, t []float64) {
	p = clone(preds)
	t = clone(targets)
	for i := range mask {
		if mask[i] {
			p[i] = 0
			t[i] = 1
		}
	}

	return p, t
}

// neutralWeights returns the per-element weights handed to the underlying
// statistic: a clone of the caller's weights, or all ones when none were
// supplied, with missing positions forced to zero either way.
func neutralWeights(weights []float64, mask []bool) []float64 {
	var w []float64
	if weights == nil {
		w = make([]float64, len(mask))
		for i := range w {
			w[i] = 1
		}
	} else {
		w = clone(weights)
	}
	for i := range mask {
		if mask[i] {
			w[i] = 0
		}
	}

	return w
}

// clone copies xs so masking never touches caller-owned buffers.
func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}

// mean returns the arithmetic mean of xs; used for macro averaging.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}
