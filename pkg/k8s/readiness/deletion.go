package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/siderolabs/go-retry/retry"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// DefaultPollInterval is used when a wait is requested without an interval.
const DefaultPollInterval = 2 * time.Second

// GetFunc fetches the watched object and returns the error of the Get call.
// A nil error means the object still exists.
type GetFunc func(ctx context.Context) error

// WaitForDeletion polls get until it reports NotFound or timeout elapses.
//
// Errors other than NotFound are treated as transient and polling continues;
// the last one is attached to the timeout error.
func WaitForDeletion(
	ctx context.Context,
	timeout time.Duration,
	interval time.Duration,
	get GetFunc,
) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	if timeout < interval {
		timeout = interval
	}

	var lastErr error

	err := retry.Constant(timeout, retry.WithUnits(interval)).
		RetryWithContext(ctx, func(ctx context.Context) error {
			getErr := get(ctx)

			switch {
			case getErr == nil:
				return retry.ExpectedError(errStillPresent)
			case apierrors.IsNotFound(getErr):
				return nil
			default:
				lastErr = getErr

				return retry.ExpectedError(getErr)
			}
		})
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("wait for deletion: %w", ctxErr)
	}

	if lastErr != nil {
		return fmt.Errorf("%w after %s: %w", ErrTimeoutExceeded, timeout, lastErr)
	}

	return fmt.Errorf("%w after %s", ErrTimeoutExceeded, timeout)
}
