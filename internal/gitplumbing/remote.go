package git

import (
	"context"
	"fmt"
	"strings"
)

// Fetch fetches a single branch from a remote.
func (g *Git) Fetch(ctx context.Context, remote, branch string) error {
	return g.RunSilent(ctx, "fetch", remote, branch)
}

// DefaultBranch asks the remote which branch its HEAD points at.
func (g *Git) DefaultBranch(ctx context.Context, remote string) (string, error) {
	lines, err := g.RunLines(ctx, "ls-remote", "--symref", remote, "HEAD")
	if err != nil {
		return "", err
	}
	return ParseSymrefOutput(lines)
}

// ParseSymrefOutput extracts the branch name from ls-remote --symref output.
// The first line looks like "ref: refs/heads/main\tHEAD".
func ParseSymrefOutput(lines []string) (string, error) {
	for _, line := range lines {
		if !strings.HasPrefix(line, "ref:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ref := fields[1]
		branch := strings.TrimPrefix(ref, "refs/heads/")
		if branch == ref || branch == "" {
			continue
		}
		return branch, nil
	}
	return "", fmt.Errorf("no symref for HEAD in ls-remote output")
}
