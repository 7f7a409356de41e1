// Package process runs the external binaries opconnect drives.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/yllada/opconnect/common"
)

// Runner implements common.ProcessRunner over os/exec. Streams that are
// not captured are connected to the fields below.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ common.ProcessRunner = (*Runner)(nil)

// NewRunner returns a Runner wired to the current process's terminal.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// RunAttached runs name with the runner's stdin, stdout and stderr.
func (r *Runner) RunAttached(ctx context.Context, name string, args ...string) (common.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	common.LogDebug("Process: running %s", describe(name, args))
	if err := cmd.Start(); err != nil {
		return common.ProcessResult{}, spawnError(name, err)
	}
	return wait(ctx, cmd, nil)
}

// RunToCompletion runs name and captures its stdout. Stdin is not
// connected; stderr goes to the runner's stderr.
func (r *Runner) RunToCompletion(ctx context.Context, name string, args ...string) (common.ProcessResult, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr

	common.LogDebug("Process: running %s", describe(name, args))
	if err := cmd.Start(); err != nil {
		return common.ProcessResult{}, spawnError(name, err)
	}
	return wait(ctx, cmd, &stdout)
}

// RunInteractive starts name with piped stdin and stdout, writes input in
// a single write, closes stdin and waits for the child to exit. The input
// is never logged.
func (r *Runner) RunInteractive(ctx context.Context, input []byte, name string, args ...string) (common.ProcessResult, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return common.ProcessResult{}, spawnError(name, err)
	}

	common.LogDebug("Process: running %s with %d bytes on stdin", describe(name, args), len(input))
	if err := cmd.Start(); err != nil {
		return common.ProcessResult{}, spawnError(name, err)
	}
	common.LogDebug("Process: %s started with PID %d", name, cmd.Process.Pid)

	_, writeErr := stdin.Write(input)
	closeErr := stdin.Close()

	// The child is reaped even when feeding it failed.
	result, waitErr := wait(ctx, cmd, &stdout)

	switch {
	case writeErr != nil:
		return result, fmt.Errorf("%w: %s: %v", common.ErrWriteFailed, name, writeErr)
	case closeErr != nil && !errors.Is(closeErr, os.ErrClosed):
		return result, fmt.Errorf("%w: %s: %v", common.ErrWriteFailed, name, closeErr)
	}
	return result, waitErr
}

// wait reaps cmd. A non-zero exit is reported in the result, not as an error.
func wait(ctx context.Context, cmd *exec.Cmd, stdout *bytes.Buffer) (common.ProcessResult, error) {
	err := cmd.Wait()

	var result common.ProcessResult
	if stdout != nil {
		result.Stdout = stdout.Bytes()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
		return result, fmt.Errorf("%w: %s: %v", common.ErrWaitFailed, cmd.Path, ctxErr)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		common.LogDebug("Process: %s exited with status %d", cmd.Path, result.ExitCode)
	default:
		return result, fmt.Errorf("%w: %s: %v", common.ErrWaitFailed, cmd.Path, err)
	}
	return result, nil
}

func spawnError(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrProcessSpawnFailed, name, err)
}

// describe renders a command line for debug logs.
func describe(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// Exists reports whether name resolves to an executable, either as a path
// or through PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
