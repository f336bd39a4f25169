package nanmetrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/molml/graphfeat/nanmetrics"
)

// TestMissingMask counts and flags NaN sentinels.
func TestMissingMask(t *testing.T) {
	nan := math.NaN()
	mask, missing := nanmetrics.MissingMaskForTest([]float64{1, nan, 0, nan})
	require.Equal(t, []bool{false, true, false, true}, mask)
	require.Equal(t, 2, missing)
}

// TestNeutralWeights inspects the weight slice handed to the underlying
// statistics: caller values survive at observed positions, missing
// positions are forced to zero, and the caller's slice is never written.
func TestNeutralWeights(t *testing.T) {
	mask := []bool{false, true, false}
	caller := []float64{2, 3, 0.5}

	w := nanmetrics.NeutralWeightsForTest(caller, mask)
	require.Equal(t, []float64{2, 0, 0.5}, w)
	require.Equal(t, []float64{2, 3, 0.5}, caller, "caller weights must not be mutated")

	// with no caller weights an all-ones slice is synthesized first
	synth := nanmetrics.NeutralWeightsForTest(nil, mask)
	require.Equal(t, []float64{1, 0, 1}, synth)
}

// TestMaskByPrediction replaces missing targets with 0 or 1, whichever is
// closer to the prediction.
func TestMaskByPrediction(t *testing.T) {
	nan := math.NaN()
	preds := []float64{0.2, 0.7, 0.4}
	targets := []float64{nan, nan, 1}
	mask := []bool{true, true, false}

	masked := nanmetrics.MaskByPredictionForTest(preds, targets, mask)
	require.Equal(t, []float64{0, 1, 1}, masked)
	require.True(t, math.IsNaN(targets[0]), "caller targets must not be mutated")
}

// TestMaskByZero forces both tensors to 0 at missing positions.
func TestMaskByZero(t *testing.T) {
	nan := math.NaN()
	preds := []float64{0.9, 0.4}
	targets := []float64{nan, 1}
	mask := []bool{true, false}

	p, tt := nanmetrics.MaskByZeroForTest(preds, targets, mask)
	require.Equal(t, []float64{0, 0.4}, p)
	require.Equal(t, []float64{0, 1}, tt)
	require.Equal(t, []float64{0.9, 0.4}, preds, "caller predictions must not be mutated")
}

// TestMaskByClass forces the deliberate target-1/prediction-0 mismatch.
func TestMaskByClass(t *testing.T) {
	nan := math.NaN()
	preds := []float64{0.9, 0.4}
	targets := []float64{nan, 0}
	mask := []bool{true, false}

	p, tt := nanmetrics.MaskByClassForTest(preds, targets, mask)
	require.Equal(t, []float64{0, 0.4}, p)
	require.Equal(t, []float64{1, 0}, tt)
}

// TestRescaleFactor: the raw mean over 4 elements with 2 observed doubles.
func TestRescaleFactor(t *testing.T) {
	require.Equal(t, 2.0, nanmetrics.RescaleForTest(1.0, 4, 2))
}
