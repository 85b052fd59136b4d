// Package check runs the all-pairs regression harness over a fixture
// list of version strings. It only consumes a comparator; all ordering
// logic lives in the dewey package.
package check

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Gottox/dewey"
)

// Divergence records a pair of versions whose forward and backward
// comparisons are not mutual inverses.
type Divergence struct {
	V1, V2   string
	Forward  dewey.Order
	Backward dewey.Order
}

// Result summarizes one harness run.
type Result struct {
	// Pairs is the number of distinct pairs compared, diagonal included.
	Pairs int
	// Incomparable counts pairs the comparator declined to order.
	Incomparable int
	// Divergences lists reflexivity and antisymmetry violations.
	Divergences []Divergence
}

// AllPairs compares every pair of versions under cmp and verifies that
// the comparator is reflexive on the diagonal and antisymmetric off it.
// Rows are compared concurrently; the comparator must be reentrant,
// which the dewey comparator is.
func AllPairs(ctx context.Context, versions []string, cmp dewey.Comparator) (*Result, error) {
	var (
		mu     sync.Mutex
		result Result
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range versions {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var row Result
			for j := i; j < len(versions); j++ {
				checkPair(&row, versions[i], versions[j], cmp)
			}

			mu.Lock()
			result.Pairs += row.Pairs
			result.Incomparable += row.Incomparable
			result.Divergences = append(result.Divergences, row.Divergences...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func checkPair(row *Result, v1, v2 string, cmp dewey.Comparator) {
	forward := cmp(v1, v2)
	backward := cmp(v2, v1)
	row.Pairs++

	if forward == dewey.Incomparable {
		row.Incomparable++
	}

	diverged := false
	switch {
	case v1 == v2:
		diverged = forward != dewey.Equal || backward != dewey.Equal
	case forward == dewey.Incomparable || backward == dewey.Incomparable:
		diverged = forward != backward
	default:
		diverged = forward != -backward
	}
	if diverged {
		row.Divergences = append(row.Divergences, Divergence{
			V1:       v1,
			V2:       v2,
			Forward:  forward,
			Backward: backward,
		})
	}
}
