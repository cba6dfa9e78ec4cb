package action

import "sync/atomic"

// Metrics collects binding statistics.
type Metrics struct {
	resolutions        atomic.Uint64
	resolutionFailures atomic.Uint64
	invocations        atomic.Uint64
	invocationFailures atomic.Uint64
	asyncWatches       atomic.Uint64
}

// Stats is a point-in-time snapshot of binding metrics.
type Stats struct {
	// Resolutions is the number of target-change resolutions attempted.
	Resolutions uint64

	// ResolutionFailures is the number of resolutions that failed
	// (ambiguous match, null target under throw, invalid signature).
	ResolutionFailures uint64

	// Invocations is the number of method invocations attempted.
	Invocations uint64

	// InvocationFailures is the number of invocations that returned an
	// error synchronously.
	InvocationFailures uint64

	// AsyncWatches is the number of asynchronous results handed to the
	// fault sink.
	AsyncWatches uint64
}

// NewMetrics creates a metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordResolution records a resolution attempt.
func (m *Metrics) RecordResolution(failed bool) {
	m.resolutions.Add(1)
	if failed {
		m.resolutionFailures.Add(1)
	}
}

// RecordInvocation records an invocation attempt.
func (m *Metrics) RecordInvocation(failed bool) {
	m.invocations.Add(1)
	if failed {
		m.invocationFailures.Add(1)
	}
}

// RecordAsyncWatch records an asynchronous result handed off for fault
// observation.
func (m *Metrics) RecordAsyncWatch() {
	m.asyncWatches.Add(1)
}

// Snapshot returns current counter values.
func (m *Metrics) Snapshot() Stats {
	return Stats{
		Resolutions:        m.resolutions.Load(),
		ResolutionFailures: m.resolutionFailures.Load(),
		Invocations:        m.invocations.Load(),
		InvocationFailures: m.invocationFailures.Load(),
		AsyncWatches:       m.asyncWatches.Load(),
	}
}
