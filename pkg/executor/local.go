package executor

import (
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Local provisioning is responsible for providing the execution environment
// on local machine via exec.Command.
// It runs command as current user.
type Local struct {
	outputDir string
}

// NewLocal returns a Local instance. Files with captured stdout and stderr
// of executed commands are created inside outputDir.
func NewLocal(outputDir string) Local {
	return Local{outputDir: outputDir}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local Executor"
}

// Execute runs the command given as input.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string) (TaskHandle, error) {
	stdoutFile, err := os.CreateTemp(l.outputDir, "stdout.")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create stdout file")
	}
	stderrFile, err := os.CreateTemp(l.outputDir, "stderr.")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create stderr file")
	}

	logrus.Debug("Starting ", command)

	cmd := exec.Command("sh", "-c", command)
	// It is important to set additional Process Group ID for parent process
	// and his children to have ability to kill all the children processes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	err = cmd.Start()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot start %q", command)
	}

	logrus.Debug("Started with pid ", cmd.Process.Pid)

	statusChannel := make(chan int, 1)

	// Wait for local task in goroutine.
	go func() {
		// Wait for task completion.
		// NOTE: Wait() returns an error on non-zero exit. We grab the process
		// state in any case (success or failure) below, so the error object
		// matters less in the status handling.
		cmd.Wait()

		var exitCode int
		waitStatus := cmd.ProcessState.Sys().(syscall.WaitStatus)
		if waitStatus.Exited() {
			exitCode = waitStatus.ExitStatus()
		} else {
			// Negated signal number, so callers can tell natural exit from
			// termination by signal.
			exitCode = -int(waitStatus.Signal())
		}

		logrus.Debug(
			"Ended ", command,
			" with output in file: ", stdoutFile.Name(),
			" with err output in file: ", stderrFile.Name(),
			" with status code: ", exitCode)

		statusChannel <- exitCode
	}()

	return newLocalTaskHandle(command, cmd.Process.Pid, statusChannel, stdoutFile, stderrFile), nil
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	command       string
	pid           int
	statusChannel chan int
	exitCode      int
	terminated    bool
	stdoutFile    *os.File
	stderrFile    *os.File
}

// newLocalTaskHandle returns a localTaskHandle instance.
func newLocalTaskHandle(
	command string,
	pid int,
	statusChannel chan int,
	stdoutFile *os.File,
	stderrFile *os.File) *localTaskHandle {
	return &localTaskHandle{
		command:       command,
		pid:           pid,
		statusChannel: statusChannel,
		stdoutFile:    stdoutFile,
		stderrFile:    stderrFile,
	}
}

// StdoutFile returns a file handle to the task's stdout file,
// rewound to the beginning.
func (task *localTaskHandle) StdoutFile() (*os.File, error) {
	if _, err := os.Stat(task.stdoutFile.Name()); err != nil {
		return nil, errors.Wrap(err, "stdout file is missing")
	}

	task.stdoutFile.Seek(0, io.SeekStart)
	return task.stdoutFile, nil
}

// StderrFile returns a file handle to the task's stderr file,
// rewound to the beginning.
func (task *localTaskHandle) StderrFile() (*os.File, error) {
	if _, err := os.Stat(task.stderrFile.Name()); err != nil {
		return nil, errors.Wrap(err, "stderr file is missing")
	}

	task.stderrFile.Seek(0, io.SeekStart)
	return task.stderrFile, nil
}

// Clean closes the task's stdout & stderr files.
func (task *localTaskHandle) Clean() error {
	if err := task.stdoutFile.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %q", task.stdoutFile.Name())
	}
	if err := task.stderrFile.Close(); err != nil {
		return errors.Wrapf(err, "cannot close %q", task.stderrFile.Name())
	}
	return nil
}

// EraseOutput removes task's stdout & stderr files.
func (task *localTaskHandle) EraseOutput() error {
	if err := os.Remove(task.stdoutFile.Name()); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "cannot remove %q", task.stdoutFile.Name())
	}
	if err := os.Remove(task.stderrFile.Name()); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "cannot remove %q", task.stderrFile.Name())
	}
	return nil
}

func (task *localTaskHandle) completeTask(exitCode int) {
	task.terminated = true
	task.exitCode = exitCode
	task.statusChannel = nil
}

// Stop terminates the local task.
func (task *localTaskHandle) Stop() error {
	if task.terminated {
		return nil
	}

	// We signal the entire process group.
	// The kill syscall interprets a negated PID N as the process group N belongs to.
	logrus.Debug("Sending SIGTERM to PID ", -task.pid)
	err := syscall.Kill(-task.pid, syscall.SIGTERM)
	if err != nil {
		return errors.Wrapf(err, "cannot terminate %q", task.command)
	}

	exitCode := <-task.statusChannel
	task.completeTask(exitCode)

	return nil
}

// Status returns a state of the task.
func (task *localTaskHandle) Status() TaskState {
	if !task.terminated {
		return RUNNING
	}

	return TERMINATED
}

// ExitCode returns the exit code of the terminated task.
func (task *localTaskHandle) ExitCode() (int, error) {
	if !task.terminated {
		return 0, errors.Errorf("task %q is not terminated", task.command)
	}

	return task.exitCode, nil
}

// Wait blocks until the process terminates or the timeout elapses.
// Returns true when process terminated before timeout, otherwise false.
func (task *localTaskHandle) Wait(timeout time.Duration) bool {
	if task.terminated {
		return true
	}

	if timeout == 0 {
		exitCode := <-task.statusChannel
		task.completeTask(exitCode)
		return true
	}

	select {
	case exitCode := <-task.statusChannel:
		task.completeTask(exitCode)
		return true
	case <-time.After(timeout):
		return false
	}
}
