package vcs

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

// ErrNotRepository is returned when dir is not inside a git repository
var ErrNotRepository = errors.New("not in a git repository. Please run this command from a git repository")

// EnsureRepository checks that dir is inside a git repository.
// Only the exit status of `git rev-parse --git-dir` is used.
func EnsureRepository(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = dir

	if out, err := cmd.CombinedOutput(); err != nil {
		slog.Debug("git probe failed", "dir", dir, "error", err, "output", string(out))
		return ErrNotRepository
	}
	return nil
}
