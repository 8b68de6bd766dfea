// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconnect keeps the push channel session alive.
//
// The [Controller] drives the transport through
// Idle → Connecting → Connected, retrying after a fixed delay whenever an
// attempt fails or the live connection is lost unexpectedly. A clean
// disconnect, Shutdown, or cancellation of the Run context moves it to
// Terminated, after which the transport is never dialed again.
package reconnect

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/config"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/transport"
)

var ErrAlreadyRunning = errors.New("controller already running")

// State is the controller state.
type State int

const (
	Idle State = iota
	Connecting
	Connected
	Retrying
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Retrying:
		return "retrying"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Transport is the session the controller keeps alive.
type Transport interface {
	Connect(ctx context.Context) (string, error)
	Disconnect()
	Events() <-chan transport.LifecycleEvent
}

// TransitionHook observes state changes. It runs with the controller lock
// held and must not call back into the controller.
type TransitionHook func(from, to State)

// Timer returns a channel that fires once after d.
type Timer func(d time.Duration) <-chan time.Time

type Option func(*Controller)

// WithTimer replaces time.After, typically in tests.
func WithTimer(t Timer) Option {
	return func(c *Controller) { c.timer = t }
}

// WithTransitionHook registers h for every state change.
func WithTransitionHook(h TransitionHook) Option {
	return func(c *Controller) { c.hook = h }
}

// Controller owns the reconnection state machine.
type Controller struct {
	transport Transport
	policy    Policy
	timer     Timer
	hook      TransitionHook
	logger    *logger.Logger

	mu        sync.Mutex
	state     State
	started   bool
	attempts  int
	cancelRun context.CancelFunc

	// connectMu is held from the terminated check through Connect.
	connectMu sync.Mutex

	shutdownOnce sync.Once
	shutdown     chan struct{}
}

func NewController(t Transport, cfg config.DeviceReconnect, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		transport: t,
		policy:    Policy{Delay: cfg.Delay},
		timer:     time.After,
		logger:    log.WithComponent("reconnect"),
		state:     Idle,
		shutdown:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attempts returns how many times Connect has been called.
func (c *Controller) Attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

// setState moves to next unless the controller already terminated.
func (c *Controller) setState(next State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Terminated {
		return false
	}
	if c.state == next {
		return true
	}
	prev := c.state
	c.state = next
	if c.hook != nil {
		c.hook(prev, next)
	}
	c.logger.Debug().Str("from", prev.String()).Str("to", next.String()).Msg("state changed")
	return true
}

// Shutdown terminates the controller and requests a clean disconnect. It is
// idempotent and does not abort in-flight uploads or downloads. Once it
// returns no Connect call is in flight and none will be started.
//
// Shutdown must not be called from Transport.Connect.
func (c *Controller) Shutdown() {
	c.shutdownOnce.Do(func() {
		c.setState(Terminated)

		c.mu.Lock()
		cancel := c.cancelRun
		c.mu.Unlock()
		if cancel != nil {
			cancel()
		}

		close(c.shutdown)

		// Wait out an attempt already past the terminated check.
		c.connectMu.Lock()
		c.connectMu.Unlock()

		c.transport.Disconnect()
		c.logger.Info().Msg("shutdown requested")
	})
}

func (c *Controller) stopped(ctx context.Context) bool {
	select {
	case <-c.shutdown:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (c *Controller) terminate() {
	c.setState(Terminated)
}

// Run drives the state machine until Shutdown, a clean disconnect or ctx
// cancellation. It returns nil in all of those cases.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}
	c.started = true
	runCtx, cancel := context.WithCancel(ctx)
	c.cancelRun = cancel
	c.mu.Unlock()

	defer cancel()
	defer c.terminate()

	if !c.setState(Connecting) {
		return nil
	}

	for {
		if c.stopped(runCtx) {
			return nil
		}

		c.drain()

		sid, attempt, ok, err := c.connect(runCtx)
		if !ok {
			return nil
		}
		if c.stopped(runCtx) {
			if err == nil {
				c.transport.Disconnect()
			}
			return nil
		}

		if err != nil {
			c.logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", c.policy.NextDelay(attempt)).Msg("connect attempt failed")
			if !c.retry(runCtx, attempt) {
				return nil
			}
			continue
		}

		if !c.setState(Connected) {
			c.transport.Disconnect()
			return nil
		}
		c.logger.Info().Str("sid", sid).Int("attempt", attempt).Msg("connected")

		c.mu.Lock()
		c.attempts = 0
		c.mu.Unlock()

		lost, done := c.awaitLoss(runCtx, sid)
		if done {
			return nil
		}
		c.logger.Warn().Err(lost.Err).Str("sid", sid).Msg("connection lost")
		if !c.retry(runCtx, 1) {
			return nil
		}
	}
}

// connect makes one attempt unless the controller already terminated, in
// which case ok is false and the transport is not touched.
func (c *Controller) connect(ctx context.Context) (sid string, attempt int, ok bool, err error) {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	c.mu.Lock()
	if c.state == Terminated {
		c.mu.Unlock()
		return "", 0, false, nil
	}
	c.attempts++
	attempt = c.attempts
	c.mu.Unlock()

	sid, err = c.transport.Connect(ctx)
	return sid, attempt, true, err
}

// drain discards lifecycle events left over from earlier attempts so the
// transport buffer never fills while nobody is waiting on it.
func (c *Controller) drain() {
	events := c.transport.Events()
	for {
		select {
		case <-events:
		default:
			return
		}
	}
}

// awaitLoss blocks while sid is connected. It returns the unexpected
// disconnect event, or done=true when the controller must terminate.
func (c *Controller) awaitLoss(ctx context.Context, sid string) (transport.LifecycleEvent, bool) {
	events := c.transport.Events()
	for {
		select {
		case <-ctx.Done():
			c.transport.Disconnect()
			return transport.LifecycleEvent{}, true
		case <-c.shutdown:
			return transport.LifecycleEvent{}, true
		case ev := <-events:
			if ev.Signal != transport.SignalDisconnected || ev.SessionID != sid {
				continue
			}
			if ev.Clean {
				c.logger.Info().Str("sid", sid).Msg("session closed cleanly")
				return ev, true
			}
			return ev, false
		}
	}
}

// retry waits the policy delay in Retrying and moves back to Connecting.
func (c *Controller) retry(ctx context.Context, attempt int) bool {
	if !c.setState(Retrying) {
		return false
	}

	select {
	case <-c.timer(c.policy.NextDelay(attempt)):
	case <-ctx.Done():
		return false
	case <-c.shutdown:
		return false
	}

	return c.setState(Connecting)
}
