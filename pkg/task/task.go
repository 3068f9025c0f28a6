// Package task provides a type-erased deferred task, a blocking work queue
// with cooperative shutdown, and a future-style result handle.
package task

// Task is a type-erased, single-use handle around one bound callable and the
// result slot it feeds. Tasks of heterogeneous return types can be stored in
// one queue; the concrete return value travels through the paired Result,
// never through the Task itself.
//
// The zero value is invalid. A Task is a transfer-of-ownership handle: the
// queue zeroes its slot when handing a Task out, and Execute empties the
// handle it runs on. Executing an empty handle is a programming error and
// panics.
type Task struct {
	run     func() error
	abandon func()
}

// Valid reports whether the handle currently owns an unexecuted callable.
func (t *Task) Valid() bool {
	return t.run != nil
}

// Execute runs the captured callable exactly once. The callable's value or
// failure is delivered through the paired Result; the returned error is a
// secondary copy of the outcome for the executing side (worker stats,
// logging). Panics inside the callable are recovered into the Result as a
// *types.TaskError and returned here, never re-raised.
//
// Execute on an empty handle panics. Executing a duplicated handle a second
// time panics as well: the callable runs at most once per submission.
func (t *Task) Execute() error {
	if t.run == nil {
		panic("task: Execute called on an empty task handle")
	}
	run := t.run
	t.run = nil
	t.abandon = nil
	return run()
}

// discard breaks the paired result of an unexecuted task and empties the
// handle. Used by the queue when a task will never be handed to a worker.
func (t *Task) discard() {
	if t.abandon != nil {
		t.abandon()
	}
	t.run = nil
	t.abandon = nil
}
