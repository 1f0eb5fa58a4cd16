package system

import (
	"context"
)

// RunWithContext runs operation on its own goroutine and returns its error.
//
// If ctx is done first, the context handed to operation is cancelled and
// RunWithContext returns ctx.Err() immediately. A result the operation had
// already delivered wins over the deadline. An already cancelled ctx
// returns ctx.Err() without starting operation.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so an abandoned operation can still deliver its result and exit.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		select {
		case err := <-done:
			return err
		default:
			return ctx.Err()
		}
	}
}
