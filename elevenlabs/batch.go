package elevenlabs

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// MaxConcurrency bounds the number of in-flight requests of a GetMany call
const MaxConcurrency = 8

// getMany runs fetch for every distinct id with bounded concurrency
func getMany(ctx context.Context, ids []string, fetch func(context.Context, string) (Object, error)) (map[string]Object, error) {
	results := make(map[string]Object, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	// Create error group with limited concurrency
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrency)

	// Use mutex to protect concurrent writes
	var mu sync.Mutex
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		g.Go(func() error {
			obj, err := fetch(ctx, id)
			if err != nil {
				return err
			}

			mu.Lock()
			results[id] = obj
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
