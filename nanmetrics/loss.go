package nanmetrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// logFloor bounds the log terms of the cross-entropy kernel so a hard 0
// or 1 prediction yields a large finite penalty instead of +Inf, matching
// the clamping used by mainstream training frameworks.
const logFloor = -100

// BCE computes the mean binary cross-entropy between probability
// predictions and binary targets under NaN-as-missing masking.
//
// Missing targets take the value closest to their prediction (0 or 1, cut
// at 0.5) and a weight of zero, and the mean is rescaled by
// total/observed so the result is a per-observed-element average. With no
// missing entries this equals the unmasked weighted BCE exactly.
//
// Optional WithWeights supplies per-element weights (all ones otherwise).
// Returns ErrAllMissing when every target is missing.
func BCE(preds, targets []float64, opts ...Option) (float64, error) {
	o, err := gatherOptions(len(preds), len(targets), opts)
	if err != nil {
		return 0, err
	}

	mask, missing := missingMask(targets)
	if missing == len(targets) {
		return 0, ErrAllMissing
	}
	t := maskByPrediction(preds, targets, mask)
	w := neutralWeights(o.weights, mask)

	terms := make([]float64, len(preds))
	for i, p := range preds {
		terms[i] = w[i] * bceAt(p, t[i])
	}
	raw := floats.Sum(terms) / float64(len(terms))

	return rescale(raw, len(terms), missing), nil
}

// MSE computes the mean squared error under NaN-as-missing masking.
//
// Missing positions are forced to 0 in both tensors, so their residual
// vanishes; the mean is then rescaled by total/observed. With no missing
// entries this equals the unmasked weighted MSE exactly.
//
// Optional WithWeights supplies per-element weights (all ones otherwise).
// Returns ErrAllMissing when every target is missing.
func MSE(preds, targets []float64, opts ...Option) (float64, error) {
	return maskedResidualLoss(preds, targets, opts, func(d float64) float64 { return d * d })
}

// MAE computes the mean absolute error under NaN-as-missing masking.
//
// Same masking and rescale policy as MSE, with |prediction-target| as the
// per-element residual.
func MAE(preds, targets []float64, opts ...Option) (float64, error) {
	return maskedResidualLoss(preds, targets, opts, math.Abs)
}

// maskedResidualLoss is the shared substitution-by-zero pipeline behind
// MSE and MAE: neutralize, weight, reduce, rescale.
func maskedResidualLoss(preds, targets []float64, opts []Option, residual func(float64) float64) (float64, error) {
	o, err := gatherOptions(len(preds), len(targets), opts)
	if err != nil {
		return 0, err
	}

	mask, missing := missingMask(targets)
	if missing == len(targets) {
		return 0, ErrAllMissing
	}
	p, t := maskByZero(preds, targets, mask)
	w := neutralWeights(o.weights, mask)

	terms := make([]float64, len(p))
	for i := range p {
		terms[i] = w[i] * residual(p[i]-t[i])
	}
	raw := floats.Sum(terms) / float64(len(terms))

	return rescale(raw, len(terms), missing), nil
}

// rescale corrects the denominator bias introduced by averaging over the
// full tensor: neutralized entries contributed zero to the numerator but
// were still counted, so the raw mean is scaled back to a
// per-observed-element average.
func rescale(raw float64, total, missing int) float64 {
	return raw * float64(total) / float64(total-missing)
}

// bceAt is the per-element cross-entropy kernel with clamped log terms.
func bceAt(p, t float64) float64 {
	return -(t*clampLog(math.Log(p)) + (1-t)*clampLog(math.Log(1-p)))
}

// clampLog floors a log term at logFloor.
func clampLog(l float64) float64 {
	if l < logFloor {
		return logFloor
	}

	return l
}
