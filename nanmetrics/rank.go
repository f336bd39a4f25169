package nanmetrics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// AUROC computes the area under the ROC curve under NaN-as-missing
// masking.
//
// Missing positions are forced to 0 in both tensors and excluded through
// a zero sample weight; the weighted ROC counts then ignore them
// entirely, so no rescale is needed. Targets are read as binary labels
// (nonzero = positive).
//
// The result length depends only on the averaging mode: 1 for
// AverageMicro (all tasks pooled) and AverageMacro (mean of per-task
// areas), the task count for AverageNone — never on how many entries are
// missing. A task whose observed labels are single-class yields NaN, as
// the underlying statistic is undefined there.
//
// Returns ErrAllMissing when every target is missing.
func AUROC(preds, targets []float64, opts ...Option) ([]float64, error) {
	return maskedRankMetric(preds, targets, opts, rocAreaOf)
}

// AveragePrecision computes the weighted average precision
// (precision integrated over recall steps) under NaN-as-missing masking.
//
// Masking, weighting, averaging, and degenerate-task behavior follow
// AUROC: missing positions are zeroed and carry zero weight, and the
// result shape depends only on the averaging mode.
func AveragePrecision(preds, targets []float64, opts ...Option) ([]float64, error) {
	return maskedRankMetric(preds, targets, opts, averagePrecisionOf)
}

// maskedRankMetric is the shared zero-substitution + zero-weight pipeline
// behind the ranking metrics. score receives one task's scores, labels,
// and weights, and may reorder them.
func maskedRankMetric(preds, targets []float64, opts []Option, score func(s []float64, l []bool, w []float64) float64) ([]float64, error) {
	o, err := gatherOptions(len(preds), len(targets), opts)
	if err != nil {
		return nil, err
	}

	mask, missing := missingMask(targets)
	if missing == len(targets) {
		return nil, ErrAllMissing
	}
	p, t := maskByZero(preds, targets, mask)
	w := neutralWeights(o.weights, mask)

	switch o.average {
	case AverageMicro:
		return []float64{score(p, toLabels(t), w)}, nil
	case AverageMacro, AverageNone:
		out := make([]float64, o.tasks)
		for k := 0; k < o.tasks; k++ {
			s, l, wk := taskColumn(p, t, w, o.tasks, k)
			out[k] = score(s, l, wk)
		}
		if o.average == AverageNone {
			return out, nil
		}
		return []float64{mean(out)}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidAverage, o.average)
}

// rocAreaOf sorts one task's scores ascending and feeds them through the
// weighted gonum ROC; the area is the trapezoidal integral of TPR over
// FPR.
func rocAreaOf(scores []float64, labels []bool, weights []float64) float64 {
	stat.SortWeightedLabeled(scores, labels, weights)
	tpr, fpr, _ := stat.ROC(nil, scores, labels, weights)

	return integrate.Trapezoidal(fpr, tpr)
}

// averagePrecisionOf walks one task's entries by descending score,
// accumulating weighted true/false positives; precision is summed over
// recall increments. Zero-weight entries contribute nothing.
func averagePrecisionOf(scores []float64, labels []bool, weights []float64) float64 {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	var totalPos float64
	for i, lab := range labels {
		if lab {
			totalPos += weights[i]
		}
	}
	if totalPos == 0 {
		return math.NaN()
	}

	var tp, fp, prevRecall, ap float64
	for _, i := range idx {
		if weights[i] == 0 {
			continue
		}
		if labels[i] {
			tp += weights[i]
		} else {
			fp += weights[i]
		}
		recall := tp / totalPos
		ap += (recall - prevRecall) * (tp / (tp + fp))
		prevRecall = recall
	}

	return ap
}

// toLabels reads targets as binary labels: nonzero = positive.
func toLabels(targets []float64) []bool {
	l := make([]bool, len(targets))
	for i, t := range targets {
		l[i] = t != 0
	}

	return l
}

// taskColumn extracts task k from flattened row-major samples×tasks
// tensors into fresh slices.
func taskColumn(preds, targets, weights []float64, tasks, k int) (s []float64, l []bool, w []float64) {
	rows := len(preds) / tasks
	s = make([]float64, 0, rows)
	l = make([]bool, 0, rows)
	w = make([]float64, 0, rows)
	for r := 0; r < rows; r++ {
		i := r*tasks + k
		s = append(s, preds[i])
		l = append(l, targets[i] != 0)
		w = append(w, weights[i])
	}

	return s, l, w
}
