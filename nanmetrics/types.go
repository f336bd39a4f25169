// Package nanmetrics defines averaging modes, tunable options, and the
// error set for NaN-masked losses and metrics.
package nanmetrics

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for masked loss/metric computation.
var (
	// ErrShapeMismatch is returned when predictions, targets, and weights
	// do not agree in length, or the length is not divisible by the
	// configured task count.
	ErrShapeMismatch = errors.New("nanmetrics: incompatible tensor shapes")

	// ErrAllMissing is returned when every target entry is the NaN
	// missing-label sentinel, leaving nothing to measure.
	ErrAllMissing = errors.New("nanmetrics: every target entry is missing")

	// ErrInvalidAverage is returned for an unsupported averaging mode.
	ErrInvalidAverage = errors.New("nanmetrics: unsupported averaging mode")

	// ErrEmptyInput is returned when the input tensors are empty.
	ErrEmptyInput = errors.New("nanmetrics: inputs must be non-empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nanmetrics: invalid option supplied")
)

// Averaging modes accepted by WithAverage.
//
//   - AverageMicro pools every task into one score.
//   - AverageMacro computes one score per task, then takes their mean.
//   - AverageNone returns one score per task.
const (
	AverageMicro = "micro"
	AverageMacro = "macro"
	AverageNone  = "none"
)

// Option configures a masked operation via functional arguments.
// An invalid Option is recorded internally and surfaced as an error when
// the operation is invoked.
type Option func(*options)

// options holds resolved configuration for one operation call.
type options struct {
	average   string
	threshold float64
	tasks     int
	weights   []float64

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the baseline configuration: micro averaging,
// decision threshold 0.5, a single task, no caller weights.
func defaultOptions() options {
	return options{
		average:   AverageMicro,
		threshold: 0.5,
		tasks:     1,
	}
}

// gatherOptions applies opts and validates tensor lengths against the
// resolved configuration. All shape failures funnel through here so every
// operation rejects malformed input the same way.
func gatherOptions(nPreds, nTargets int, opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	if nTargets == 0 {
		return o, ErrEmptyInput
	}
	if nPreds != nTargets {
		return o, fmt.Errorf("%w: len(predictions)=%d, len(targets)=%d", ErrShapeMismatch, nPreds, nTargets)
	}
	if o.weights != nil && len(o.weights) != nTargets {
		return o, fmt.Errorf("%w: len(weights)=%d, len(targets)=%d", ErrShapeMismatch, len(o.weights), nTargets)
	}
	if nTargets%o.tasks != 0 {
		return o, fmt.Errorf("%w: length %d is not divisible by %d tasks", ErrShapeMismatch, nTargets, o.tasks)
	}

	return o, nil
}

// WithAverage selects the averaging mode: AverageMicro, AverageMacro, or
// AverageNone. Any other string → ErrInvalidAverage.
func WithAverage(mode string) Option {
	return func(o *options) {
		switch mode {
		case AverageMicro, AverageMacro, AverageNone:
			o.average = mode
		default:
			o.err = fmt.Errorf("%w: %q", ErrInvalidAverage, mode)
		}
	}
}

// WithThreshold sets the decision threshold used by the classification
// statistics (default 0.5). NaN is rejected → ErrOptionViolation.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if math.IsNaN(t) {
			o.err = fmt.Errorf("%w: threshold must not be NaN", ErrOptionViolation)
			return
		}
		o.threshold = t
	}
}

// WithTasks declares the number of tasks (columns) in the flattened
// row-major samples×tasks tensors (default 1). Non-positive counts are
// rejected → ErrOptionViolation.
func WithTasks(k int) Option {
	return func(o *options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: task count must be > 0 (%d)", ErrOptionViolation, k)
			return
		}
		o.tasks = k
	}
}

// WithWeights supplies per-element non-negative weights, same length as
// targets. The slice is never mutated; positions holding missing targets
// are forced to zero on a private copy. Negative or NaN entries are
// rejected → ErrOptionViolation.
func WithWeights(w []float64) Option {
	return func(o *options) {
		for i, v := range w {
			if v < 0 || math.IsNaN(v) {
				o.err = fmt.Errorf("%w: weight[%d]=%v must be finite and non-negative", ErrOptionViolation, i, v)
				return
			}
		}
		o.weights = w
	}
}
