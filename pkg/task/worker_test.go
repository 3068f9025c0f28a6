package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerLoop_ExecutesQueuedTasks(t *testing.T) {
	q := NewQueue()

	done := make(chan struct{})
	go func() {
		WorkerLoop(q)
		close(done)
	}()

	res := Submit(q, func() (int, error) {
		return 21, nil
	})

	v, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, 21, v)

	q.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit after stop")
	}
}

func TestWorkerLoop_GracefulExitOnStop(t *testing.T) {
	// A worker blocked on an empty queue must terminate promptly once the
	// queue stops, without executing anything.
	q := NewQueue()

	done := make(chan struct{})
	go func() {
		WorkerLoop(q)
		close(done)
	}()

	q.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit after stop")
	}
}

func TestWorkerLoop_SurvivesPanickingTask(t *testing.T) {
	q := NewQueue()

	done := make(chan struct{})
	go func() {
		WorkerLoop(q)
		close(done)
	}()

	bad := Submit(q, func() (int, error) {
		panic("kaboom")
	})
	_, err := bad.Get()
	require.Error(t, err)

	// The same worker must still be alive to run the next task.
	good := Submit(q, func() (int, error) {
		return 1, nil
	})
	v, err := good.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	q.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit after stop")
	}
}
