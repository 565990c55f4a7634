package primejudge

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/esimov/primejudge/utils"
	"golang.org/x/sync/errgroup"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// MaxRangeSize is the largest number of values JudgeRange accepts in one call.
const MaxRangeSize = 1_000_000

var (
	// ErrInvalidRange is returned when the lower bound is greater than the upper one.
	ErrInvalidRange = errors.New("invalid range")
	// ErrRangeTooLarge is returned for ranges holding more than MaxRangeSize values.
	ErrRangeTooLarge = errors.New("range too large")
)

// JudgeRange judges every number of the inclusive [from, to] range concurrently.
// The verdicts are returned in ascending input order.
func JudgeRange(ctx context.Context, from, to int64, workers int) ([]Verdict, error) {
	if from > to {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, from, to)
	}
	// Compare in uint64 since to-from overflows int64 for ranges spanning both signs.
	if size := uint64(to) - uint64(from); size >= MaxRangeSize {
		return nil, fmt.Errorf("%w: %d values, at most %d allowed", ErrRangeTooLarge, size+1, MaxRangeSize)
	}

	count := int(to-from) + 1
	return judgeJobs(ctx, count, func(i int) int64 { return from + int64(i) }, workers)
}

// JudgeAll judges the provided numbers concurrently and returns the verdicts in the same order.
func JudgeAll(ctx context.Context, inputs []int64, workers int) ([]Verdict, error) {
	return judgeJobs(ctx, len(inputs), func(i int) int64 { return inputs[i] }, workers)
}

// judgeJobs judges count numbers on a bounded pool of workers. Each job writes its own
// index, so the results keep the input order and the slice needs no locking.
func judgeJobs(ctx context.Context, count int, at func(int) int64, workers int) ([]Verdict, error) {
	verdicts := make([]Verdict, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(poolSize(workers, count))
	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[i] = Judge(at(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is cancelled by Wait, so check the caller's one.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

// poolSize limits the concurrently running workers to maxWorkers and to the number of jobs.
func poolSize(workers, jobs int) int {
	if workers <= 0 || workers > maxWorkers {
		workers = utils.Min(runtime.NumCPU(), maxWorkers)
	}
	return utils.Max(utils.Min(workers, jobs), 1)
}
