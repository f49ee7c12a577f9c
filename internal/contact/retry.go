package contact

import (
	"context"
	"errors"
	"time"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryPolicy bounds how hard Retry tries before giving up.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first. Zero disables retries.
	MaxRetries int

	// InitialInterval is the wait before the first retry. Default: 500ms.
	InitialInterval time.Duration

	// MaxInterval caps the wait between retries. Default: 5s.
	MaxInterval time.Duration
}

// Retry wraps next with exponential backoff. Context errors and missing
// SMTP configuration are returned immediately.
func Retry(next Transport, p RetryPolicy) Transport {
	if p.InitialInterval <= 0 {
		p.InitialInterval = 500 * time.Millisecond
	}
	if p.MaxInterval <= 0 {
		p.MaxInterval = 5 * time.Second
	}
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	return &retryTransport{next: next, policy: p, logger: logging.Component("contact.retry")}
}

type retryTransport struct {
	next   Transport
	policy RetryPolicy
	logger zerolog.Logger
}

func (r *retryTransport) Send(ctx context.Context, msg Fields) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.policy.InitialInterval
	exp.MaxInterval = r.policy.MaxInterval
	exp.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.policy.MaxRetries)), ctx)

	op := func() error {
		err := r.next.Send(ctx, msg)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		r.logger.Warn().Err(err).Dur("wait", wait).Msg("contact delivery failed, retrying")
	})
}

func isPermanent(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrSMTPNotConfigured)
}
