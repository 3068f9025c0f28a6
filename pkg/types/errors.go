// Package types defines error types
package types

import (
	"errors"
	"fmt"
)

// Predefined errors
var (
	// ErrResultAbandoned indicates the task backing a result was discarded
	// before it ever executed
	ErrResultAbandoned = errors.New("result abandoned: task discarded before execution")

	// ErrPoolNotStarted indicates the pool has not been started yet
	ErrPoolNotStarted = errors.New("worker pool is not started")

	// ErrPoolRunning indicates the pool is already running
	ErrPoolRunning = errors.New("worker pool is already running")

	// ErrPoolStopped indicates the pool has been stopped
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// TaskError represents a failure raised while executing a submitted task
type TaskError struct {
	// Op is the operation during which the failure occurred
	Op string

	// Cause is the underlying error
	Cause error

	// Context contains error context information
	Context map[string]interface{}
}

// Error implements the error interface
func (e *TaskError) Error() string {
	return fmt.Sprintf("task error in %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying error
func (e *TaskError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is a specific error
func (e *TaskError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

// NewTaskError creates a new TaskError
func NewTaskError(op string, cause error) *TaskError {
	return &TaskError{
		Op:      op,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds error context
func (e *TaskError) WithContext(key string, value interface{}) *TaskError {
	e.Context[key] = value
	return e
}
