package oneinch

import (
	"context"
	"time"
)

// ItemResult is the outcome of a single batch operation
type ItemResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RunSequential executes count operations strictly one after another with a
// fixed delay between calls, purely to stay under upstream rate limits.
// A failing item is recorded and does not abort the remaining items; the
// results slice order matches the input order. Context cancellation marks
// all not-yet-started items as failed with the context error.
func RunSequential(ctx context.Context, count int, delay time.Duration, run func(ctx context.Context, index int) (interface{}, error)) []ItemResult {
	results := make([]ItemResult, count)

	for i := 0; i < count; i++ {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				for j := i; j < count; j++ {
					results[j] = ItemResult{Success: false, Error: ctx.Err().Error()}
				}
				return results
			case <-time.After(delay):
			}
		}

		if err := ctx.Err(); err != nil {
			for j := i; j < count; j++ {
				results[j] = ItemResult{Success: false, Error: err.Error()}
			}
			return results
		}

		data, err := run(ctx, i)
		if err != nil {
			results[i] = ItemResult{Success: false, Error: err.Error()}
			continue
		}
		results[i] = ItemResult{Success: true, Data: data}
	}

	return results
}
