package oneinch

import (
	"context"
	"fmt"
	"time"
)

// ChunkMapFetcher splits items into chunks of at most chunkLimit, calls
// fetchFunc per chunk with delay between calls, and merges the resulting
// maps. Used to keep upstream URLs short and request bursts small.
func ChunkMapFetcher[T any](
	ctx context.Context,
	items []string,
	chunkLimit int,
	delay time.Duration,
	fetchFunc func(context.Context, []string) (map[string]T, error),
) (map[string]T, error) {
	result := make(map[string]T)
	if len(items) == 0 || chunkLimit <= 0 {
		return result, nil
	}

	isFirst := true
	for start := 0; start < len(items); start += chunkLimit {
		end := start + chunkLimit
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]

		if delay > 0 && !isFirst {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
		isFirst = false

		chunkResult, err := fetchFunc(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch chunk: %w", err)
		}

		for k, v := range chunkResult {
			result[k] = v
		}
	}

	return result, nil
}
