package workerpool_test

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/surfacescore/shapecomp/workerpool"
)

func TestEachRunsEveryIndex(t *testing.T) {
	p := workerpool.New()
	const n = 500
	hits := make([]int32, n)

	err := p.Each(n, func(i int) error {
		atomic.AddInt32(&hits[i], 1)
		return nil
	})
	require.NoError(t, err)
	for i, h := range hits {
		require.Equalf(t, int32(1), h, "index %d ran %d times", i, h)
	}
}

func TestSerialPoolSizeOne(t *testing.T) {
	p := workerpool.Serial()
	require.Equal(t, 1, p.Size())
}

func TestEachPropagatesFirstError(t *testing.T) {
	p := workerpool.Serial()
	sentinel := os.ErrClosed
	err := p.Each(3, func(i int) error {
		if i == 1 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestWorkersEnvVarOverridesSize(t *testing.T) {
	t.Setenv(workerpool.WorkersEnvVar, "3")
	p := workerpool.New()
	require.Equal(t, 3, p.Size())
}
