package testutil

import (
	"os"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore the previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// WithConfigHome points both XDG_CONFIG_HOME and HOME at dir so config
// lookups resolve there on every platform fallback path.
func WithConfigHome(t *testing.T, dir string) func() {
	t.Helper()
	restoreXDG := WithEnv(t, "XDG_CONFIG_HOME", dir)
	restoreHome := WithEnv(t, "HOME", dir)
	return func() {
		restoreHome()
		restoreXDG()
	}
}
