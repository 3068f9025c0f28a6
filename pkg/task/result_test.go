package task

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskwell/pkg/types"
)

func TestResult_GetReturnsValue(t *testing.T) {
	handle, res := New(func() (string, error) {
		return "done", nil
	})

	require.NoError(t, handle.Execute())

	v, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestResult_WaitIsGet(t *testing.T) {
	handle, res := New(func() (int, error) {
		return 7, nil
	})

	require.NoError(t, handle.Execute())

	v, err := res.Wait()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestResult_ReadyNonBlocking(t *testing.T) {
	handle, res := New(func() (int, error) {
		return 1, nil
	})

	assert.False(t, res.Ready())
	assert.False(t, res.Ready())

	require.NoError(t, handle.Execute())

	assert.True(t, res.Ready())
}

func TestResult_FailurePropagation(t *testing.T) {
	boom := errors.New("device reset failed")
	handle, res := New(func() (int, error) {
		return 0, boom
	})

	execErr := handle.Execute()
	assert.ErrorIs(t, execErr, boom)

	_, err := res.Get()
	assert.ErrorIs(t, err, boom)
}

func TestResult_PanicPropagation(t *testing.T) {
	handle, res := New(func() (int, error) {
		panic("bad register state")
	})

	// The panic must be captured as a failure, not re-raised.
	var execErr error
	assert.NotPanics(t, func() {
		execErr = handle.Execute()
	})
	require.Error(t, execErr)

	_, err := res.Get()
	require.Error(t, err)

	var taskErr *types.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, "execute", taskErr.Op)
	assert.Contains(t, taskErr.Error(), "bad register state")
	assert.NotEmpty(t, taskErr.Context["stack_trace"])
}

func TestResult_PanicWithErrorValue(t *testing.T) {
	cause := fmt.Errorf("raw error panic")
	handle, res := New(func() (int, error) {
		panic(cause)
	})

	require.Error(t, handle.Execute())

	_, err := res.Get()
	assert.ErrorIs(t, err, cause)
}

func TestResult_Abandoned(t *testing.T) {
	handle, res := New(func() (int, error) {
		return 1, nil
	})

	handle.discard()

	v, err := res.Get()
	assert.ErrorIs(t, err, types.ErrResultAbandoned)
	assert.Zero(t, v)
	assert.True(t, res.Ready())
}

func TestResult_RepeatedReadsSameOutcome(t *testing.T) {
	handle, res := New(func() (int, error) {
		return 9, nil
	})

	require.NoError(t, handle.Execute())

	for i := 0; i < 3; i++ {
		v, err := res.Get()
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	}
}

func TestResult_DoneChannel(t *testing.T) {
	handle, res := New(func() (int, error) {
		return 1, nil
	})

	select {
	case <-res.Done():
		t.Fatal("done channel closed before execution")
	default:
	}

	require.NoError(t, handle.Execute())

	select {
	case <-res.Done():
	default:
		t.Fatal("done channel still open after execution")
	}
}
