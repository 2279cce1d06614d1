package testutil

import "testing"
import "os"

// WithEnv sets env var to val for the duration of the test scope.
// An empty val unsets the variable. The previous value is restored on cleanup.
func WithEnv(t *testing.T, key, val string) {
    t.Helper()
    old, had := os.LookupEnv(key)
    if val == "" {
        _ = os.Unsetenv(key)
    } else {
        _ = os.Setenv(key, val)
    }
    t.Cleanup(func() {
        if had {
            _ = os.Setenv(key, old)
        } else {
            _ = os.Unsetenv(key)
        }
    })
}

// WithHome points HOME and WRAPCTL_HOME at a fresh temp dir and returns it,
// so config reads and writes never touch the real user directory.
func WithHome(t *testing.T) string {
    t.Helper()
    dir := t.TempDir()
    WithEnv(t, "HOME", dir)
    WithEnv(t, "WRAPCTL_HOME", dir+"/.wrapctl")
    return dir
}
