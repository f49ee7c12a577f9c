package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/rs/zerolog"
)

// Status is the position in the submit lifecycle.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// DefaultSuccessWindow is how long StatusSucceeded lasts before reverting to idle.
const DefaultSuccessWindow = 5 * time.Second

// Messages shown to the visitor after a submission resolves.
const (
	SuccessMessage = "Thank you! Your message has been sent successfully. I'll get back to you soon!"
	FailureMessage = "Sorry, there was an error sending your message. Please try again later."
)

// Controller errors.
var (
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrSubmitFailed     = errors.New("submission failed")
	ErrClosed           = errors.New("contact form closed")
)

// State is a snapshot of the form.
type State struct {
	Fields  Fields `json:"fields"`
	Errors  Errors `json:"errors,omitempty"`
	Status  Status `json:"status"`
	Failure string `json:"failure,omitempty"`
}

type stopper interface {
	Stop() bool
}

type scheduleFunc func(d time.Duration, f func()) stopper

func afterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// Controller owns one visitor's form values and drives its submissions.
type Controller struct {
	transport Transport
	window    time.Duration
	schedule  scheduleFunc
	logger    zerolog.Logger

	mu     sync.Mutex
	state  State
	reset  stopper
	gen    uint64
	closed bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithSuccessWindow overrides DefaultSuccessWindow.
func WithSuccessWindow(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.window = d
		}
	}
}

// WithControllerLogger overrides the component logger.
func WithControllerLogger(l zerolog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

func withScheduler(s scheduleFunc) ControllerOption {
	return func(c *Controller) { c.schedule = s }
}

// NewController returns an idle, empty form that delivers through t.
func NewController(t Transport, opts ...ControllerOption) *Controller {
	c := &Controller{
		transport: t,
		window:    DefaultSuccessWindow,
		schedule:  afterFunc,
		logger:    logging.Component("contact"),
		state:     State{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	s := c.state
	s.Errors = c.state.Errors.clone()
	return s
}

// Update sets a single field. No validation runs until Submit.
func (c *Controller) Update(field Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	return c.state.Fields.Set(field, value)
}

// Submit validates the form and, if it passes, hands a copy of the fields to
// the transport, blocking until it returns.
//
// A form that fails validation is left in place with Errors populated and a
// nil error. While a submission is in flight further calls return
// ErrSubmitInProgress and change nothing.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.closed {
		defer c.mu.Unlock()
		return c.snapshot(), ErrClosed
	}
	if c.state.Status == StatusSubmitting {
		defer c.mu.Unlock()
		return c.snapshot(), ErrSubmitInProgress
	}

	if errs := Validate(c.state.Fields); !errs.Empty() {
		c.state.Errors = errs
		defer c.mu.Unlock()
		c.logger.Debug().Int("invalid_fields", len(errs)).Msg("contact form rejected")
		return c.snapshot(), nil
	}

	c.cancelResetLocked()
	c.state.Errors = nil
	c.state.Failure = ""
	c.state.Status = StatusSubmitting
	msg := c.state.Fields
	c.mu.Unlock()

	started := time.Now()
	err := c.transport.Send(ctx, msg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.snapshot(), ErrClosed
	}

	if err != nil {
		c.state.Status = StatusFailed
		c.state.Failure = FailureMessage
		c.logger.Error().Err(err).Dur("elapsed", time.Since(started)).Msg("contact submission failed")
		return c.snapshot(), fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	c.state.Fields = Fields{}
	c.state.Status = StatusSucceeded
	c.gen++
	gen := c.gen
	c.reset = c.schedule(c.window, func() { c.expire(gen) })

	c.logger.Info().Dur("elapsed", time.Since(started)).Msg("contact submission delivered")
	return c.snapshot(), nil
}

// expire returns a succeeded form to idle unless the task was superseded.
func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.gen || c.state.Status != StatusSucceeded {
		return
	}
	c.state.Status = StatusIdle
	c.reset = nil
}

func (c *Controller) cancelResetLocked() {
	c.gen++
	if c.reset != nil {
		c.reset.Stop()
		c.reset = nil
	}
}

// Acknowledge clears a failed submission back to idle. Fields are kept so the
// visitor can retry.
func (c *Controller) Acknowledge() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.state.Status == StatusFailed {
		c.state.Status = StatusIdle
		c.state.Failure = ""
	}
	return nil
}

// Close cancels the pending reset task. The controller rejects all further
// calls; a submission still in flight is discarded when it returns.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.cancelResetLocked()
	return nil
}
