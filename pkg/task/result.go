package task

import (
	"sync/atomic"

	"github.com/taskwell/taskwell/pkg/types"
)

// Result slot phases. A slot moves pending -> running -> settled when the
// task executes, or pending -> settled directly when it is abandoned.
const (
	phasePending int32 = iota
	phaseRunning
	phaseSettled
)

// state is the write-once result slot shared between a Task's execution path
// and the Result handle observing it. The value and error fields are written
// before done is closed; observers must only read them after done.
type state[T any] struct {
	phase atomic.Int32
	value T
	err   error
	done  chan struct{}
}

func newState[T any]() *state[T] {
	return &state[T]{done: make(chan struct{})}
}

// start transitions the slot from pending to running. Returns false when the
// task already ran or was abandoned.
func (s *state[T]) start() bool {
	return s.phase.CompareAndSwap(phasePending, phaseRunning)
}

// fulfill publishes a successful value and wakes all waiters.
func (s *state[T]) fulfill(v T) {
	s.value = v
	s.phase.Store(phaseSettled)
	close(s.done)
}

// fail publishes an execution failure and wakes all waiters.
func (s *state[T]) fail(err error) {
	s.err = err
	s.phase.Store(phaseSettled)
	close(s.done)
}

// abandon breaks a slot whose task will never execute. No-op if the task
// already started.
func (s *state[T]) abandon() {
	if !s.phase.CompareAndSwap(phasePending, phaseSettled) {
		return
	}
	s.err = types.ErrResultAbandoned
	close(s.done)
}

// Result is the consumer-side handle to a task's eventual return value.
//
// A Result is created paired 1:1 with a Task at submission time and handed
// back to the submitting goroutine. The slot behind it is written at most
// once: with the callable's value, with its failure, or with
// types.ErrResultAbandoned when the task is discarded before executing.
// Repeated reads observe the same outcome.
type Result[T any] struct {
	s *state[T]
}

// Get blocks until the paired task has executed or been abandoned, then
// returns the stored value or the stored failure.
func (r *Result[T]) Get() (T, error) {
	<-r.s.done
	return r.s.value, r.s.err
}

// Wait is an alias for Get.
func (r *Result[T]) Wait() (T, error) {
	return r.Get()
}

// Ready reports whether the result slot has been written. It never blocks.
func (r *Result[T]) Ready() bool {
	select {
	case <-r.s.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the result slot is written,
// for use in select statements.
func (r *Result[T]) Done() <-chan struct{} {
	return r.s.done
}
