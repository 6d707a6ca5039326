package scstat

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func bruteMedian(vals []float64) float64 {
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	n := len(cp)
	if n%2 == 1 {
		return cp[n/2]
	}
	return (cp[n/2-1] + cp[n/2]) / 2
}

func TestMedianOddCount(t *testing.T) {
	items := []scored{{id: 0, val: 3}, {id: 1, val: 1}, {id: 2, val: 2}}
	require.Equal(t, 2.0, median(items))
}

func TestMedianEvenCount(t *testing.T) {
	items := []scored{{id: 0, val: 1}, {id: 1, val: 2}, {id: 2, val: 3}, {id: 3, val: 4}}
	require.Equal(t, 2.5, median(items))
}

func TestMedianMatchesBruteForceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(30) + 1
		vals := make([]float64, n)
		items := make([]scored, n)
		for i := range vals {
			vals[i] = rng.Float64()*20 - 10
			items[i] = scored{id: i, val: vals[i]}
		}
		require.InDelta(t, bruteMedian(vals), median(items), 1e-9)
	}
}

func TestQuickselectLeavesKthOrderStatistic(t *testing.T) {
	items := []scored{{id: 0, val: 5}, {id: 1, val: 1}, {id: 2, val: 9}, {id: 3, val: 3}, {id: 4, val: 7}}
	cp := make([]scored, len(items))
	copy(cp, items)
	got := quickselect(cp, 2).val // 0-indexed 3rd smallest of {1,3,5,7,9} = 5
	require.Equal(t, 5.0, got)
}
