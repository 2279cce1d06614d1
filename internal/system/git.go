package system

import (
    "context"
    "os/exec"
    "strings"
    "time"
)

// GitRoot returns the repository top-level directory for dir, if in a Git repo.
func GitRoot(ctx context.Context, dir string) (string, error) {
    if _, err := exec.LookPath("git"); err != nil {
        return "", err
    }
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    out, err := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--show-toplevel").Output()
    if err != nil {
        return "", err
    }
    return strings.TrimSpace(string(out)), nil
}

// ProjectRoot returns the Git top-level directory containing dir, or dir
// itself outside a repository.
func ProjectRoot(ctx context.Context, dir string) string {
    if root, err := GitRoot(ctx, dir); err == nil && root != "" {
        return root
    }
    return dir
}
