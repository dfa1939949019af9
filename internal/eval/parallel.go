package eval

import (
	"context"
	"sync/atomic"

	"github.com/DjordjeVuckovic/taut-hunter/internal/formula"
	"golang.org/x/sync/errgroup"
)

const (
	// minParallelSize is the smallest truth table worth splitting across workers.
	minParallelSize = 1 << 12
	// minChunkSize bounds how finely a table is split, whatever the worker count.
	minChunkSize = 1 << 10
)

// EvalParallel is Eval with the truth table split into contiguous ranges
// searched concurrently. The reported witness is the lowest falsifying
// assignment, the same one Eval returns; only Checked may differ between runs.
func EvalParallel(ctx context.Context, e formula.Expr, workers int) (Result, error) {
	env := NewEnv(e)
	size := env.Size()
	if workers <= 1 || size < minParallelSize {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		return scan(e, env, 0, size, nil), nil
	}

	workers = int(min(uint64(workers), size/minChunkSize))
	chunk := (size + uint64(workers) - 1) / uint64(workers)

	var best atomic.Uint64
	best.Store(size)

	results := make([]Result, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		from := uint64(w) * chunk
		if from >= size {
			break
		}
		to := min(from+chunk, size)

		g.Go(func() error {
			stop := func(i uint64) bool {
				if i&1023 == 0 && gctx.Err() != nil {
					return true
				}
				return i > best.Load()
			}

			res := scan(e, env, from, to, stop)
			if res.Verdict == NotTautology {
				lowerBest(&best, uint64(res.Assignment))
			}
			results[w] = res
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return merge(results, env), nil
}

func lowerBest(best *atomic.Uint64, i uint64) {
	for {
		cur := best.Load()
		if i >= cur || best.CompareAndSwap(cur, i) {
			return
		}
	}
}

// merge picks the falsifying result of the lowest range; ranges are ordered
// by index so the first NotTautology is the global minimum.
func merge(results []Result, env *Env) Result {
	var checked uint64
	for _, r := range results {
		checked += r.Checked
	}

	for _, r := range results {
		if r.Verdict == NotTautology {
			r.Checked = checked
			return r
		}
	}
	return Result{Verdict: Tautology, Checked: checked, Vars: env.Vars()}
}
