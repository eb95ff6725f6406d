// Package countdown implements a simple ticking countdown timer.
package countdown

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Message is printed once the countdown reaches zero
const Message = "blast off!"

// Run prints from, from-1, ... 1, one number per interval, then Message.
// A zero interval prints without waiting. Cancelling ctx stops the
// countdown and returns ctx.Err().
func Run(ctx context.Context, w io.Writer, from int, interval time.Duration) error {
	if from < 0 {
		return fmt.Errorf("countdown must start at zero or above, got %d", from)
	}
	if interval < 0 {
		return fmt.Errorf("interval must not be negative, got %s", interval)
	}

	var tick <-chan time.Time
	if interval > 0 && from > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := from; n > 0; n-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}

		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}

	_, err := fmt.Fprintln(w, Message)
	return err
}
