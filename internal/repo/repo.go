// Package repo keeps the data directory in sync with its backing git
// repository.
package repo

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Syncer pulls and pushes the repository behind a directory.
type Syncer interface {
	Pull(ctx context.Context, dir string) error
	Push(ctx context.Context, dir, message string) error
}

// Git shells out to the git CLI. A directory that is not a repository
// fails on the first command with git's own message.
type Git struct {
	Log *slog.Logger
}

// Pull rebases local commits onto the upstream branch.
func (g *Git) Pull(ctx context.Context, dir string) error {
	_, err := g.run(ctx, dir, "pull", "--rebase")
	return err
}

// Push stages everything under dir, commits with message, and pushes. A
// clean tree is not an error; nothing is committed or pushed.
func (g *Git) Push(ctx context.Context, dir, message string) error {
	if _, err := g.run(ctx, dir, "add", "-A"); err != nil {
		return err
	}
	status, err := g.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		g.Log.Debug("no local changes to push", "dir", dir)
		return nil
	}
	if _, err := g.run(ctx, dir, "commit", "-m", message); err != nil {
		return err
	}
	if _, err := g.run(ctx, dir, "push"); err != nil {
		return err
	}
	g.Log.Info("pushed changes", "dir", dir)
	return nil
}

func (g *Git) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
