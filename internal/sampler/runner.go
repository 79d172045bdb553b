// internal/sampler/runner.go
package sampler

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits one Sample per tick on out.
// One goroutine. No overlap: a slow consumer delays the next sample
// instead of queueing. Closes out on return.
func (s *Sampler) Run(ctx context.Context, out chan<- Sample) {
	defer close(out)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case out <- s.SampleOnce():
			case <-ctx.Done():
				return
			}
		}
	}
}
