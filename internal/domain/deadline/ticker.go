package deadline

import (
	"context"
	"time"
)

// Tick invokes fn immediately and then once per interval until ctx is
// canceled. The client view runs its live countdown on a one-second tick;
// canceling ctx is what tears the ticker down when the view goes away.
func Tick(ctx context.Context, interval time.Duration, fn func(now time.Time)) {
	fn(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(now)
		}
	}
}
