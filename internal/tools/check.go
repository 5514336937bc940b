package tools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CheckTool probes PATH for the tool's binaries and extracts a version from
// the first invocation that produces output.
func CheckTool(t ToolInfo) CheckResult {
	for _, bin := range t.Binaries {
		path, err := exec.LookPath(bin)
		if err != nil {
			continue
		}
		for _, args := range t.VersionArgs {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			out, err := runCmd(ctx, path, args...)
			cancel()
			if err != nil || strings.TrimSpace(out) == "" {
				continue
			}
			ver := ParseVersion(out)
			if ver == "" {
				ver = strings.Split(strings.TrimSpace(out), "\n")[0]
			}
			return CheckResult{
				Installed: true,
				Version:   ver,
				Source:    fmt.Sprintf("%s %s", bin, strings.Join(args, " ")),
				Outdated:  outdated(ver, t.MinVersion),
			}
		}
		// Found the binary but no version output; still installed.
		return CheckResult{Installed: true, Source: bin}
	}
	return CheckResult{Err: "not found in PATH"}
}

func outdated(version, min string) bool {
	if version == "" || min == "" {
		return false
	}
	return VersionLess(version, min)
}
