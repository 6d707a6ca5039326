// Package scstat is the Sc aggregator: it pairs each trimmed interface dot
// of one molecule with its nearest trimmed dot of the other, scores each
// pair by the Gaussian-weighted normal-alignment formula, and reduces the
// two directions' medians into the final Sc statistic.
//
// Median selection uses a deterministic quickselect (median-of-three
// pivot, ties broken by dot id); trimmed-area-style Kahan summation is not
// needed here since scstat never sums a result-affecting quantity other
// than through the median itself. The two NN scans are still parallelized
// over workerpool.Pool with id-indexed output slots, so neither worker
// count nor scheduling order can change the result.
package scstat
