package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_HandleValidity(t *testing.T) {
	handle, res := New(func() (int, error) {
		return 42, nil
	})

	assert.True(t, handle.Valid())
	assert.False(t, res.Ready())

	err := handle.Execute()
	assert.NoError(t, err)
	assert.False(t, handle.Valid())

	v, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestTask_ZeroValueInvalid(t *testing.T) {
	var handle Task
	assert.False(t, handle.Valid())
}

func TestTask_ExecuteEmptyPanics(t *testing.T) {
	var handle Task
	assert.Panics(t, func() {
		handle.Execute()
	})
}

func TestTask_ExecuteTwicePanics(t *testing.T) {
	handle, _ := New(func() (int, error) {
		return 1, nil
	})

	require.NoError(t, handle.Execute())
	assert.Panics(t, func() {
		handle.Execute()
	})
}

func TestTask_ExecuteDuplicatedHandlePanics(t *testing.T) {
	// Copying a handle does not duplicate the right to run the callable;
	// the second execution must trap, not run the work again.
	handle, _ := New(func() (int, error) {
		return 1, nil
	})
	dup := handle

	require.NoError(t, handle.Execute())
	assert.Panics(t, func() {
		dup.Execute()
	})
}

func TestTask_ExactlyOnce(t *testing.T) {
	runs := 0
	handle, res := New(func() (int, error) {
		runs++
		return runs, nil
	})

	require.NoError(t, handle.Execute())

	v, err := res.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, runs)
}
