package task

import (
	"fmt"
	"runtime"

	"github.com/taskwell/taskwell/pkg/types"
)

// WorkSink accepts tasks for deferred execution. Both *Queue and
// *InstrumentedQueue satisfy it.
type WorkSink interface {
	AddWork(Task)
}

// New binds a zero-argument callable into a Task and returns it together
// with the paired Result. Arguments are bound by closure capture at the call
// site. The Result is usable immediately; it settles when the Task executes
// or is discarded.
func New[R any](fn func() (R, error)) (Task, *Result[R]) {
	s := newState[R]()
	t := Task{
		run: func() (err error) {
			if !s.start() {
				panic("task: callable executed more than once")
			}
			defer func() {
				if r := recover(); r != nil {
					err = recoveredError(r)
					s.fail(err)
				}
			}()
			v, err := fn()
			if err != nil {
				s.fail(err)
				return err
			}
			s.fulfill(v)
			return nil
		},
		abandon: s.abandon,
	}
	return t, &Result[R]{s: s}
}

// Submit binds fn into a Task, enqueues it on q, and returns the Result
// before the task necessarily runs. Submitting after the queue has stopped
// yields a Result that fails with types.ErrResultAbandoned.
func Submit[R any](q WorkSink, fn func() (R, error)) *Result[R] {
	t, res := New(fn)
	q.AddWork(t)
	return res
}

// SubmitCall is Submit for plain value-returning callables with no error.
func SubmitCall[R any, F ~func() R](q WorkSink, fn F) *Result[R] {
	return Submit(q, func() (R, error) { return fn(), nil })
}

// SubmitMethod binds a method expression against a specific receiver and
// enqueues the bound call. The receiver is captured as given: pass a pointer
// for by-reference semantics, and guarantee it outlives the task's
// execution.
//
//	res := task.SubmitMethod(q, (*Device).Program, dev)
func SubmitMethod[C any, R any](q WorkSink, method func(C) (R, error), recv C) *Result[R] {
	return Submit(q, func() (R, error) { return method(recv) })
}

// recoveredError wraps a recovered panic value as a *types.TaskError with
// the stack trace attached.
func recoveredError(r interface{}) error {
	var buf [4096]byte
	n := runtime.Stack(buf[:], false)

	var cause error
	switch v := r.(type) {
	case error:
		cause = v
	default:
		cause = fmt.Errorf("panic: %v", v)
	}

	return types.NewTaskError("execute", cause).
		WithContext("stack_trace", string(buf[:n]))
}
