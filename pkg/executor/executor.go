package executor

import (
	"os"
	"time"
)

// Executor is responsible for creating execution environment for a given
// command. It returns TaskHandle when the command started gracefully.
// The command is executed asynchronously.
type Executor interface {
	// Execute executes command on underlying platform.
	Execute(command string) (TaskHandle, error)
	// Name returns user-friendly name of executor.
	Name() string
}

// TaskState is an enum presenting current task state.
type TaskState int

const (
	// RUNNING task state means that task is still running.
	RUNNING TaskState = iota
	// TERMINATED task state means that task completed or stopped.
	TERMINATED
)

// TaskHandle represents a process which can be stopped or monitored.
type TaskHandle interface {
	// Stop terminates the task.
	Stop() error
	// Status returns a state of the task.
	Status() TaskState
	// ExitCode returns the exit code. If task is not terminated it returns
	// an error. Negative exit code means the process was terminated by a
	// signal.
	ExitCode() (int, error)
	// StdoutFile returns a file handle to the task's stdout file.
	StdoutFile() (*os.File, error)
	// StderrFile returns a file handle to the task's stderr file.
	StderrFile() (*os.File, error)
	// Wait blocks until the task terminates or the timeout elapses.
	// Zero timeout means waiting until natural exit.
	// It returns true when the task is terminated.
	Wait(timeout time.Duration) bool
	// Clean closes the task's stdout & stderr files.
	Clean() error
	// EraseOutput removes task's stdout & stderr files.
	EraseOutput() error
}
