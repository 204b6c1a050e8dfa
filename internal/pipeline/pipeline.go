// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"locusfind/internal/locus"
)

// Config controls the lookup pipeline.
type Config struct {
	Threads int // number of worker goroutines; <=1 runs serially
}

// Resolver answers a single coordinate.
type Resolver interface {
	Resolve(ctx context.Context, pos int) (locus.Result, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, pos int) (locus.Result, error)

func (f ResolverFunc) Resolve(ctx context.Context, pos int) (locus.Result, error) { return f(ctx, pos) }

// FileResolver re-opens Path for every coordinate.
type FileResolver struct {
	Format locus.Format
	Path   string
}

func (r FileResolver) Resolve(ctx context.Context, pos int) (locus.Result, error) {
	return locus.ResolveFile(ctx, r.Format, r.Path, pos)
}

// ForEachLookup resolves every position and calls visit with the
// lookups in the order of positions. The first error, from a lookup or
// from visit, stops the run; lookups before it have been visited.
func ForEachLookup(
	ctx context.Context,
	cfg Config,
	positions []int,
	r Resolver,
	visit func(locus.Lookup) error,
) error {
	if cfg.Threads <= 1 || len(positions) <= 1 {
		for _, pos := range positions {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Resolve(ctx, pos)
			if err != nil {
				return err
			}
			if err := visit(locus.Lookup{Position: pos, Result: res}); err != nil {
				return err
			}
		}
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct{ idx, pos int }
	type result struct {
		idx int
		lk  locus.Lookup
		err error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := r.Resolve(ctx, j.pos)
				select {
				case results <- result{idx: j.idx, lk: locus.Lookup{Position: j.pos, Result: res}, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed work
	go func() {
		defer close(jobs)
		for i, pos := range positions {
			select {
			case jobs <- job{idx: i, pos: pos}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Re-sequence: hold early finishers until their turn.
	var (
		pending  = make(map[int]result, cfg.Threads*2)
		next     int
		firstErr error
	)
	for res := range results {
		if firstErr != nil {
			continue // drain
		}
		pending[res.idx] = res
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if p.err == nil {
				p.err = visit(p.lk)
			}
			if p.err != nil {
				firstErr = p.err
				cancel()
				break
			}
		}
	}

	if firstErr != nil {
		return firstErr
	}
	if next < len(positions) {
		return ctx.Err()
	}
	return nil
}
