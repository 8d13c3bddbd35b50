package opening

import (
	"context"
	"time"
)

// step is one delayed action in the opening script. A step with no action is
// a pure pause.
type step struct {
	delay  time.Duration
	action func(ctx context.Context) error
}

// runSteps executes the script in order. Cancellation wins over a pending
// delay, and no further step runs after a failure.
func runSteps(ctx context.Context, steps []step) error {
	for _, st := range steps {
		if st.delay > 0 {
			timer := time.NewTimer(st.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if st.action == nil {
			continue
		}

		if err := st.action(ctx); err != nil {
			return err
		}
	}

	return nil
}
