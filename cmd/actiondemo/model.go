package main

import (
	"time"

	"github.com/dshills/actionbind/internal/fault"
	"github.com/dshills/actionbind/internal/log"
)

// counterModel is the demo view-model. Its methods are registered as
// action invokers in run().
type counterModel struct {
	name   string
	count  int
	logger *log.Logger
}

// Increment raises the count.
func (m *counterModel) Increment() error {
	m.count++
	return nil
}

// Decrement lowers the count.
func (m *counterModel) Decrement() error {
	m.count--
	return nil
}

// Reset zeroes the count.
func (m *counterModel) Reset() error {
	m.count = 0
	return nil
}

// OnKey receives unbound key events through the event binding.
func (m *counterModel) OnKey(sender any, key rune) error {
	m.logger.Debug("unbound key", "model", m.name, "key", string(key), "sender", sender != nil)
	return nil
}

// SaveSlow pretends to persist the counter asynchronously. Failures reach
// the fault sink, not the invoking gesture.
func (m *counterModel) SaveSlow() fault.Future {
	count := m.count
	return fault.Go(func() error {
		time.Sleep(150 * time.Millisecond)
		m.logger.Info("saved", "model", m.name, "count", count)
		return nil
	})
}
