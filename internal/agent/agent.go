// Package agent runs the external coding agent that performs the actual
// source edits. It is the only side-effecting boundary of the tool.
package agent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// ErrNotInstalled is returned when the agent binary cannot be run
var ErrNotInstalled = errors.New("Cursor CLI is not installed or not in PATH. Please install Cursor and ensure the CLI is available")

// Invoker hands an instruction to a coding agent working in workDir
type Invoker interface {
	Invoke(ctx context.Context, workDir, instruction string) error
}

// Cursor runs the cursor-agent CLI non-interactively
type Cursor struct {
	BinaryPath string
	Args       []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCursor creates a Cursor invoker wired to the process's terminal
func NewCursor(binaryPath string, args []string) *Cursor {
	if binaryPath == "" {
		binaryPath = "cursor-agent"
	}
	return &Cursor{
		BinaryPath: ResolveBinaryPath(binaryPath),
		Args:       args,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Invoke runs the agent with the instruction as the trailing argument.
// Output is streamed straight to the configured writers. There is no timeout;
// canceling ctx sends the child an interrupt.
func (c *Cursor) Invoke(ctx context.Context, workDir, instruction string) error {
	args := c.buildArgs(instruction)

	cmd := exec.CommandContext(ctx, c.BinaryPath, args...)
	cmd.Dir = workDir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}

	slog.Debug("invoking agent", "binary", c.BinaryPath, "dir", workDir, "flags", c.Args)

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %v", ErrNotInstalled, err)
		}
		return err
	}
	return nil
}

func (c *Cursor) buildArgs(instruction string) []string {
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	return append(args, instruction)
}

// CheckInstalled runs `<binary> --version` once so a missing agent fails fast.
// The version output is discarded.
func CheckInstalled(ctx context.Context, binaryPath string) error {
	resolved := ResolveBinaryPath(binaryPath)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, resolved, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		slog.Debug("agent version probe failed", "binary", resolved, "error", err, "output", out.String())
		return ErrNotInstalled
	}

	slog.Debug("agent available", "binary", resolved, "version", string(bytes.TrimSpace(out.Bytes())))
	return nil
}
