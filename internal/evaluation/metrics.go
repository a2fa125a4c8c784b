package evaluation

import (
	"math"

	"github.com/smarttask/typeval/internal/pkg/errors"
)

// DCG computes Discounted Cumulative Gain over the first k positions:
// sum of gain[i] / log2(i+2). A list shorter than k contributes only what
// is present, which is equivalent to padding with zero gains.
func DCG(gains []float64, k int) float64 {
	if k > len(gains) {
		k = len(gains)
	}

	var dcg float64
	for i := 0; i < k; i++ {
		dcg += gains[i] / math.Log2(float64(i+2))
	}
	return dcg
}

// NDCG computes Normalized DCG at k given the gains of a ranking and the
// gains an ideal ordering would produce. An ideal DCG of zero means no gold
// type had any achievable gain; that is a data inconsistency, reported as a
// DivisionUndefined error rather than scored as 0 or 1.
func NDCG(gains, idealGains []float64, k int) (float64, error) {
	idcg := DCG(idealGains, k)
	if idcg == 0 {
		return 0, errors.DivisionUndefined("ideal DCG is zero")
	}
	return DCG(gains, k) / idcg, nil
}
