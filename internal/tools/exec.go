package tools

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// runCmd executes a probe binary and returns its combined output, trimmed.
// Probe output feeds version parsing, so color and locale are pinned off.
func runCmd(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "LC_ALL=C")
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return strings.TrimSpace(string(out)), err
}
