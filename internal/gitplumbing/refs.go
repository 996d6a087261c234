package git

import (
	"context"
	"fmt"
)

// HEAD returns the full SHA of the current HEAD commit.
func (g *Git) HEAD(ctx context.Context) (string, error) {
	return g.Run(ctx, "rev-parse", "--verify", "HEAD")
}

// ResolveRef resolves a ref name to its full SHA.
func (g *Git) ResolveRef(ctx context.Context, ref string) (string, error) {
	out, err := g.Run(ctx, "rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRefNotFound, ref)
	}
	return out, nil
}

// ForkPoint returns the common ancestor commit of HEAD and the given ref,
// as computed by git merge-base --fork-point. Returns ErrNoForkPoint when
// the computation fails, which on CI usually means the clone is too shallow
// to contain the ancestor.
func (g *Git) ForkPoint(ctx context.Context, ref string) (string, error) {
	out, err := g.Run(ctx, "merge-base", "--fork-point", ref)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNoForkPoint, ref)
	}
	if out == "" {
		return "", fmt.Errorf("%w: %s", ErrNoForkPoint, ref)
	}
	return out, nil
}
