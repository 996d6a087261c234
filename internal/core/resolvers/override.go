package resolvers

import (
	"context"
	"fmt"

	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// OverrideResolver checks an explicitly given base..target range. It is
// selected whenever both --base and --target are supplied, regardless of
// the detected platform.
type OverrideResolver struct {
	localRetriever
	base   string
	target string
}

// NewOverrideResolver creates a resolver for an explicit revision pair.
func NewOverrideResolver(gitClient core.GitClient, base, target string) *OverrideResolver {
	return &OverrideResolver{
		localRetriever: localRetriever{git: gitClient},
		base:           base,
		target:         target,
	}
}

// Name returns the strategy name.
func (r *OverrideResolver) Name() string {
	return "explicit range"
}

// Resolve normalizes the given revisions to full hashes. Accepting branch
// names and short hashes here keeps the CLI convenient; the report always
// carries resolved hashes.
func (r *OverrideResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	base, err := r.git.ResolveRef(ctx, r.base)
	if err != nil {
		return types.CommitRange{}, &core.ResolutionError{
			Msg: fmt.Sprintf("cannot resolve base revision %q", r.base),
			Err: err,
		}
	}

	target, err := r.git.ResolveRef(ctx, r.target)
	if err != nil {
		return types.CommitRange{}, &core.ResolutionError{
			Msg: fmt.Sprintf("cannot resolve target revision %q", r.target),
			Err: err,
		}
	}

	return types.CommitRange{
		Base:   base,
		Target: target,
		Kind:   types.RangeFeatureBranch,
	}, nil
}
