package nanmetrics

import "fmt"

// The classification trio neutralizes missing labels by a deliberate
// class mismatch (target 1, prediction 0) rather than the zero-weight
// exclusion used elsewhere in this package: the plain confusion counts
// below have no ignore mechanism, so every missing label lands as a
// guaranteed false negative. Recall and Accuracy are therefore depressed
// by missing labels while Precision is unaffected. This mirrors the
// reference training stack; tests pin the injected-false-negative effect
// explicitly.

// confusion holds the four weighted cells of a binary confusion matrix.
type confusion struct {
	tp, fp, tn, fn float64
}

// confusionOf counts confusion cells for task k (stride tasks) at the
// given decision threshold. Targets are read as binary labels
// (nonzero = positive). With tasks=1, k=0 it pools the whole tensor.
func confusionOf(preds, targets []float64, tasks, k int, threshold float64) confusion {
	var c confusion
	for i := k; i < len(preds); i += tasks {
		pos := preds[i] >= threshold
		truth := targets[i] != 0
		switch {
		case pos && truth:
			c.tp++
		case pos && !truth:
			c.fp++
		case !pos && truth:
			c.fn++
		default:
			c.tn++
		}
	}

	return c
}

// Precision computes tp/(tp+fp) at the configured threshold under
// NaN-as-missing masking. A task with no positive predictions yields NaN.
// Returns ErrAllMissing when every target is missing.
func Precision(preds, targets []float64, opts ...Option) ([]float64, error) {
	return maskedClassifyMetric(preds, targets, opts, func(c confusion) float64 {
		return c.tp / (c.tp + c.fp)
	})
}

// Recall computes tp/(tp+fn) at the configured threshold under
// NaN-as-missing masking. Every missing label counts as a false negative
// (see the package note above), so missing entries lower recall.
func Recall(preds, targets []float64, opts ...Option) ([]float64, error) {
	return maskedClassifyMetric(preds, targets, opts, func(c confusion) float64 {
		return c.tp / (c.tp + c.fn)
	})
}

// Accuracy computes (tp+tn)/total at the configured threshold under
// NaN-as-missing masking. Every missing label counts as a miss (see the
// package note above), so missing entries lower accuracy.
func Accuracy(preds, targets []float64, opts ...Option) ([]float64, error) {
	return maskedClassifyMetric(preds, targets, opts, func(c confusion) float64 {
		return (c.tp + c.tn) / (c.tp + c.fp + c.tn + c.fn)
	})
}

// maskedClassifyMetric is the shared substitution-by-fixed-class pipeline
// behind Precision, Accuracy, and Recall.
func maskedClassifyMetric(preds, targets []float64, opts []Option, score func(confusion) float64) ([]float64, error) {
	o, err := gatherOptions(len(preds), len(targets), opts)
	if err != nil {
		return nil, err
	}

	mask, missing := missingMask(targets)
	if missing == len(targets) {
		return nil, ErrAllMissing
	}
	p, t := maskByClass(preds, targets, mask)

	switch o.average {
	case AverageMicro:
		return []float64{score(confusionOf(p, t, 1, 0, o.threshold))}, nil
	case AverageMacro, AverageNone:
		out := make([]float64, o.tasks)
		for k := 0; k < o.tasks; k++ {
			out[k] = score(confusionOf(p, t, o.tasks, k, o.threshold))
		}
		if o.average == AverageNone {
			return out, nil
		}
		return []float64{mean(out)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidAverage, o.average)
}
