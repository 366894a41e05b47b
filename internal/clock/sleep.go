// Package clock provides context-aware time helpers.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is canceled, whichever comes first. The
// context error is returned on early wakeup.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
