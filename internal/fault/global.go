package fault

import "sync"

var (
	globalMu   sync.Mutex
	globalSink *Sink
)

// Init installs the process-wide sink. Hosts call this once at startup;
// calling it again replaces the sink (the previous one is closed).
func Init(opts ...Option) *Sink {
	globalMu.Lock()
	prev := globalSink
	globalSink = NewSink(opts...)
	s := globalSink
	globalMu.Unlock()

	if prev != nil {
		prev.Close()
	}
	return s
}

// Teardown flushes and closes the process-wide sink. Safe to call when
// no sink is installed.
func Teardown() {
	globalMu.Lock()
	s := globalSink
	globalSink = nil
	globalMu.Unlock()

	if s != nil {
		s.Close()
	}
}

// Default returns the process-wide sink, installing one with default
// options if none exists.
func Default() *Sink {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalSink == nil {
		globalSink = NewSink()
	}
	return globalSink
}

// Watch observes a future on the process-wide sink.
func Watch(f Future, fields map[string]any) {
	Default().Watch(f, fields)
}

// Report delivers a failure to the process-wide sink.
func Report(err error, fields map[string]any) {
	Default().Report(err, fields)
}
