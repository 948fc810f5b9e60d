package retry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"payment-reconciler/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	cfg config.RetryConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism.

Example:

Retry(ctx, func() error { return fetchPage() })
*/
func NewExponentialBackOff(cfg config.RetryConfig) Retryer {
	if cfg.MaxBackoffTime <= 0 {
		cfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if cfg.BackoffMultiplier <= 0 {
		cfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = backoff.DefaultInitialInterval
	}

	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{cfg: cfg}
}

// Retry keeps calling operation until it succeeds, returns a permanent
// error, the retries run out or ctx is done. The last error is returned.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.cfg.InitialInterval
	eb.MaxElapsedTime = r.cfg.MaxBackoffTime
	eb.Multiplier = r.cfg.BackoffMultiplier

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx))
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

// NoRetry runs every operation exactly once.
type NoRetry struct{}

func (NoRetry) Retry(_ context.Context, operation func() error) error {
	err := operation()
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

func (NoRetry) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
