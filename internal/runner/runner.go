// Package runner executes collaborator tools (formatters, type
// checkers) as bounded subprocesses. Commands are always argument
// vectors, never shell-interpreted strings, so file paths and command
// content cannot inject into a shell.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a collaborator subprocess when the caller does
// not supply one.
const DefaultTimeout = 30 * time.Second

// Outcome reports how a collaborator run ended. A run never fails the
// hook: timeouts and missing binaries degrade to a skipped outcome.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
	Err      error
}

// Skipped reports whether the run produced no usable result (binary
// missing, timed out, or failed to start).
func (o Outcome) Skipped() bool {
	return o.TimedOut || o.Err != nil
}

// Run executes argv with the given timeout and captures both output
// streams. argv[0] is resolved through PATH.
func Run(argv []string, timeout time.Duration) Outcome {
	if len(argv) == 0 {
		return Outcome{ExitCode: -1, Err: errors.New("empty argv")}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := Outcome{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}

	if ctx.Err() == context.DeadlineExceeded {
		out.TimedOut = true
		out.ExitCode = -1
		return out
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		// Start failure: binary missing or not executable.
		out.Err = err
		out.ExitCode = -1
	}

	return out
}

// Exists reports whether a command resolves through PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
