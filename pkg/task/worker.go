package task

// WorkSource hands out tasks, blocking until work is available or the queue
// is stopped. Both *Queue and *InstrumentedQueue satisfy it.
type WorkSource interface {
	GetWork() Task
}

// WorkerLoop repeatedly dequeues and executes tasks until q signals
// shutdown by returning an invalid Task. Run it on each worker goroutine:
//
//	q := task.NewQueue()
//	for i := 0; i < workers; i++ {
//		go task.WorkerLoop(q)
//	}
//
// Failures and panics inside a callable settle that task's Result only;
// they never terminate the loop.
func WorkerLoop(q WorkSource) {
	for {
		t := q.GetWork()
		if !t.Valid() {
			return
		}
		_ = t.Execute()
	}
}
