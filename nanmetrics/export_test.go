package nanmetrics

// Test-only bridges exposing the neutralization internals to the
// black-box test package, so tests can inspect the exact tensors and
// weights handed to the underlying statistics.
var (
	MissingMaskForTest      = missingMask
	MaskByPredictionForTest = maskByPrediction
	MaskByZeroForTest       = maskByZero
	MaskByClassForTest      = maskByClass
	NeutralWeightsForTest   = neutralWeights
	RescaleForTest          = rescale
)
