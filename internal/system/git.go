package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// GitInfo is the repository status shown in the dashboard status bar.
type GitInfo struct {
	InRepo   bool
	Branch   string
	ShortSHA string
	Dirty    bool
}

// git runs one git subcommand against dir with a short per-call timeout so a
// slow repository never stalls the status bar.
func git(ctx context.Context, dir string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, 800*time.Millisecond)
	defer cancel()
	full := append([]string{"-C", dir}, args...)
	out, err := exec.CommandContext(cctx, "git", full...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetGitInfo inspects the Git repository at dir and returns basic status.
// A missing git binary or a directory outside any repository is not an
// error; the zero GitInfo describes both.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	gi := GitInfo{}
	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}

	inside, err := git(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || inside != "true" {
		return gi, nil
	}
	gi.InRepo = true

	if branch, err := git(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gi.Branch = branch
	} else if head, err := git(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		// detached head fallback
		gi.Branch = head
	}

	if sha, err := git(ctx, dir, "rev-parse", "--short", "HEAD"); err == nil {
		gi.ShortSHA = sha
	}

	if st, err := git(ctx, dir, "status", "--porcelain"); err == nil {
		gi.Dirty = st != ""
	}

	return gi, nil
}
