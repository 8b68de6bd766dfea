// Package push routes server-initiated events to their handlers.
//
// Dispatch never blocks: events are appended to an unbounded FIFO and a
// single worker started with Run invokes handlers one at a time in arrival
// order. The receive loop of the transport therefore never waits on handler
// work such as artifact downloads.
package push

import (
	"context"
	"fmt"
	"sync"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/internal/utils"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

// Handler consumes one push event. A returned error is logged; the event is
// never retried.
type Handler func(ctx context.Context, ev models.PushEvent) error

type queuedEvent struct {
	seq uint64
	ev  models.PushEvent
}

// Router maps event names to handlers, one handler per name.
type Router struct {
	mu       sync.Mutex
	handlers map[string]Handler
	queue    []queuedEvent
	seq      uint64
	stopped  bool

	notify chan struct{}
	logger *logger.Logger
}

func NewRouter(log *logger.Logger) *Router {
	return &Router{
		handlers: make(map[string]Handler),
		notify:   make(chan struct{}, 1),
		logger:   log.WithComponent("router"),
	}
}

// Register binds h to name, replacing any earlier handler. Events already
// queued are delivered to whichever handler is registered when they are
// processed.
func (r *Router) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, replaced := r.handlers[name]; replaced {
		r.logger.Debug().Str("event", name).Msg("handler replaced")
	}
	r.handlers[name] = h
}

// Dispatch enqueues ev for the worker and returns immediately. Once Run has
// returned the event is dropped.
func (r *Router) Dispatch(ev models.PushEvent) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		r.logger.Debug().Str("event", ev.Name).Msg("router stopped, event dropped")
		return
	}
	r.seq++
	r.queue = append(r.queue, queuedEvent{seq: r.seq, ev: ev})
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *Router) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// Run processes queued events until ctx is cancelled. The handler currently
// running completes. Events still queued at cancellation, and any dispatched
// afterwards, are discarded.
func (r *Router) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.discard()
			return nil
		case <-r.notify:
		}

		for ctx.Err() == nil {
			item, ok := r.next()
			if !ok {
				break
			}
			r.handle(ctx, item)
		}
	}
}

func (r *Router) next() (queuedEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return queuedEvent{}, false
	}
	item := r.queue[0]
	r.queue[0] = queuedEvent{}
	r.queue = r.queue[1:]
	return item, true
}

func (r *Router) discard() {
	r.mu.Lock()
	dropped := len(r.queue)
	r.queue = nil
	r.stopped = true
	r.mu.Unlock()

	if dropped > 0 {
		r.logger.Info().Int("dropped", dropped).Msg("router stopped with pending events")
	}
}

func (r *Router) lookup(name string) (Handler, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Router) handle(ctx context.Context, item queuedEvent) {
	log := r.logger.With().Str("event", item.ev.Name).Uint64("seq", item.seq).Logger()

	h, ok := r.lookup(item.ev.Name)
	if !ok {
		log.Debug().Msg("no handler registered, event dropped")
		return
	}

	// Shutdown must not abort a handler's in-flight request.
	hctx := context.WithoutCancel(ctx)
	hctx = utils.WithEventSeq(hctx, item.seq)
	hctx = log.WithContext(hctx)

	if err := safeCall(hctx, h, item.ev); err != nil {
		log.Error().Err(err).Msg("event handler failed")
	}
}

func safeCall(ctx context.Context, h Handler, ev models.PushEvent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return h(ctx, ev)
}
