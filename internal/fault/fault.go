// Package fault provides the process-wide sink for failures surfaced by
// asynchronous action invocations.
//
// An invoked method may return an in-flight computation (a Future). The
// dispatch engine does not block on it; it registers the future with this
// sink, which observes completion and delivers any failure to registered
// handlers exactly once. Hosts call Init at startup and Teardown at
// shutdown; Teardown waits for pending observations to flush.
package fault

import (
	"sync"

	"github.com/dshills/actionbind/internal/log"
)

// Future is an in-flight asynchronous computation. Done is closed when the
// computation completes; Err reports its failure (nil on success) and must
// only be called after Done is closed.
type Future interface {
	Done() <-chan struct{}
	Err() error
}

// Handler receives an observed failure with contextual fields.
type Handler func(err error, fields map[string]any)

// Subscription represents a registered failure handler.
type Subscription struct {
	id   uint64
	sink *Sink
}

// Unsubscribe removes this handler.
func (s *Subscription) Unsubscribe() {
	if s.sink != nil {
		s.sink.unsubscribe(s.id)
	}
}

// Sink collects failures from asynchronous invocations and fans them out
// to registered handlers.
type Sink struct {
	mu       sync.Mutex
	handlers map[uint64]Handler
	nextID   uint64
	logger   *log.Logger
	closed   bool
	wg       sync.WaitGroup
}

// Option configures a Sink.
type Option func(*Sink)

// WithLogger sets the logger used by the default failure handler.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sink) {
		s.logger = logger
	}
}

// NewSink creates a new failure sink.
func NewSink(opts ...Option) *Sink {
	s := &Sink{
		handlers: make(map[uint64]Handler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(log.DefaultConfig()).WithComponent("fault")
	}
	return s
}

// OnFailure registers a handler for observed failures.
func (s *Sink) OnFailure(h Handler) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.handlers[id] = h

	return &Subscription{id: id, sink: s}
}

// Report delivers a failure to all registered handlers. Nil errors are
// ignored. Handlers that panic are isolated; the panic is logged and the
// remaining handlers still run.
func (s *Sink) Report(err error, fields map[string]any) {
	if err == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	handlers := make([]Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	logger := s.logger
	s.mu.Unlock()

	logger.Error("unobserved action failure", appendFields(fields, "error", err)...)

	for _, h := range handlers {
		s.callHandler(h, err, fields)
	}
}

// callHandler runs one handler with panic isolation.
func (s *Sink) callHandler(h Handler, err error, fields map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("failure handler panicked", "panic", r)
		}
	}()
	h(err, fields)
}

// Watch observes a future and reports its failure, if any, exactly once.
// It returns immediately; observation happens on a separate goroutine.
func (s *Sink) Watch(f Future, fields map[string]any) {
	if f == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		<-f.Done()
		if err := f.Err(); err != nil {
			s.Report(err, fields)
		}
	}()
}

// Close stops the sink, waiting for pending observations to complete.
// Futures still in flight when Close is called are waited on; reports
// arriving after close are dropped.
func (s *Sink) Close() {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// unsubscribe removes a handler by ID.
func (s *Sink) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.handlers, id)
}

// appendFields flattens a field map plus trailing key/value pairs into the
// logger's variadic form.
func appendFields(fields map[string]any, extra ...any) []any {
	args := make([]any, 0, len(fields)*2+len(extra))
	for k, v := range fields {
		args = append(args, k, v)
	}
	return append(args, extra...)
}
