package fault

import "sync"

// Task is a completable Future. The invoked method returns the task
// immediately and completes it when its asynchronous work finishes.
type Task struct {
	mu   sync.Mutex
	done chan struct{}
	err  error
}

// NewTask creates an incomplete task.
func NewTask() *Task {
	return &Task{done: make(chan struct{})}
}

// Complete finishes the task with the given error (nil on success).
// Completing an already-complete task is a no-op.
func (t *Task) Complete(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return
	default:
	}

	t.err = err
	close(t.done)
}

// Done returns a channel closed when the task completes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the task's failure. Only valid after Done is closed.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Go runs fn on a new goroutine and returns a task completed with its
// result.
func Go(fn func() error) *Task {
	t := NewTask()
	go func() {
		t.Complete(fn())
	}()
	return t
}
