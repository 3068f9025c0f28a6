/*
Package task provides the deferred-execution core: a type-erased single-use
Task, a blocking multi-producer/multi-consumer Queue with cooperative
shutdown, a future-style Result handle, and generic submission helpers.

# Overview

Producer goroutines bind callables into tasks and enqueue them; worker
goroutines pull tasks off the shared queue and execute them; each submitted
callable's return value travels back to the submitter through a per-task
Result handle:

	q := task.NewQueue()
	for i := 0; i < workers; i++ {
		go task.WorkerLoop(q)
	}

	res := task.Submit(q, func() (int, error) {
		return compute(x), nil
	})
	v, err := res.Get()

	q.Stop()

# Core Components

## Task

A movable, single-use wrapper hiding the concrete callable/return-type pair
behind one type so heterogeneous work can share a queue. Execute runs the
callable exactly once; executing an empty or spent handle panics.

## Result

The consumer side of a write-once result slot. Get and Wait block until the
task has executed or been abandoned; Ready polls without blocking; Done
exposes the completion signal for select statements.

## Queue

An unbounded mutex-and-condition-variable queue. Dequeue order is
most-recently-added first (stack discipline) rather than FIFO; this favors
recency over fairness and is part of the contract. Stop is a one-way
transition: it wakes every blocked consumer and abandons the results of
tasks still queued rather than draining them.

## Submission

Submit, SubmitCall, and SubmitMethod bind a callable (with closure-captured
arguments, or a method bound to a receiver) into a Task/Result pair and
enqueue it, returning the Result before the task necessarily runs.

# Error Handling

A callable's error, or a panic recovered during its execution, settles only
that task's Result; worker goroutines and unrelated tasks are unaffected. A
task discarded without executing settles its Result with
types.ErrResultAbandoned. Submitting after Stop abandons the task
immediately; stopping before submitting is the caller's responsibility.

# Concurrency

Any number of producers and workers may share one Queue. Task and Result
values are owned by one goroutine at a time; the result slot between a
task's executor and its submitter is synchronized independently of the
queue lock. Execution happens-before the result becomes visible to Get and
Ready callers.
*/
package task
