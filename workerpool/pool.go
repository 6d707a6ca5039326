// File: pool.go
// Role: bounded concurrent Each() over a fixed index range.
package workerpool

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// WorkersEnvVar is the environment variable that overrides the default
// pool size.
const WorkersEnvVar = "SHAPECOMP_WORKERS"

// Pool bounds how many goroutines Each may run concurrently.
type Pool struct {
	size int
}

// New returns a Pool sized from SHAPECOMP_WORKERS if set and valid,
// otherwise runtime.NumCPU(). A size <= 0 is treated as 1.
func New() *Pool {
	if v := os.Getenv(WorkersEnvVar); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return &Pool{size: n}
		}
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return &Pool{size: n}
}

// Serial returns a Pool with size 1, used when Settings.EnableParallel is
// false — the same Each call path runs, just with no concurrency, so
// parallel and serial runs share one code path and produce bitwise-
// identical output regardless of enable_parallel.
func Serial() *Pool {
	return &Pool{size: 1}
}

// Size reports the pool's configured concurrency.
func (p *Pool) Size() int {
	if p.size < 1 {
		return 1
	}
	return p.size
}

// Each invokes fn(i) for every i in [0, n), with at most Size() running
// concurrently. fn must write only to index i's own slot in any shared
// output slice — Each makes no ordering guarantee about *when* each i
// runs, only that all of them run before Each returns (or the first error
// is returned).
func (p *Pool) Each(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(p.Size())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
