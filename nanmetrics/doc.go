// Package nanmetrics provides losses and classification metrics that
// treat NaN targets as "missing label" while keeping every tensor shape
// fixed — the constraint imposed by ahead-of-time compiled accelerator
// execution, where filtering missing entries out would change shapes at
// runtime.
//
// 🚀 The shared pipeline:
//  1. locate NaN entries in targets (the missing-label sentinel)
//  2. neutralize them on private clones — caller buffers are never
//     written:
//     • BCE: target becomes 0 or 1, whichever is closer to the
//     prediction, and the position's weight is zeroed
//     • MSE, MAE, AUROC, AveragePrecision: prediction and target are
//     both forced to 0 (the ranking metrics also zero the weight)
//     • Precision, Accuracy, Recall: deliberate mismatch — target 1,
//     prediction 0 — with NO zero-weighting; every missing label is a
//     guaranteed false negative (a known asymmetry, kept for parity
//     with the reference training stack)
//  3. compute the underlying statistic on the neutralized tensors
//  4. losses rescale the mean by total/observed to undo the denominator
//     bias from the neutralized entries
//
// ✨ Guarantees:
//   - no missing entries ⇒ bit-identical to the unmasked statistic
//   - masking ≡ exclusion: the masked score over a full tensor equals
//     the unmasked score with the missing rows physically removed
//     (loss variants and ranking metrics)
//   - output shape depends only on the averaging mode and task count,
//     never on how many entries are missing
//   - all-missing input fails with ErrAllMissing, never a silent number
//
// Tensors are flattened row-major samples×tasks []float64 slices;
// declare the column count with WithTasks. Averaging modes: "micro",
// "macro", "none" (per-task vector).
//
// See example_test.go for runnable examples.
package nanmetrics
