package resolvers

import (
	"context"

	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// GitResolver is the fallback strategy for any git repository outside a
// recognized CI platform. It only supports the feature-branch case: base
// is the fork point of HEAD against the configured default branch, target
// is HEAD. Nothing is fetched and nothing is auto-detected.
type GitResolver struct {
	localRetriever
	cfg core.Config
}

// NewGitResolver creates the generic git fallback resolver.
func NewGitResolver(cfg core.Config, gitClient core.GitClient) *GitResolver {
	return &GitResolver{
		localRetriever: localRetriever{git: gitClient},
		cfg:            cfg,
	}
}

// Name returns the strategy name.
func (r *GitResolver) Name() string {
	return "git (default)"
}

// Resolve computes the fork point of HEAD against the default branch.
func (r *GitResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	base, err := r.git.ForkPoint(ctx, r.cfg.DefaultBranch)
	if err != nil {
		return types.CommitRange{}, forkPointError(r.cfg.DefaultBranch, err)
	}

	head, err := r.git.Head(ctx)
	if err != nil {
		return types.CommitRange{}, &core.ResolutionError{Msg: "failed to resolve HEAD", Err: err}
	}

	return types.CommitRange{
		Base:    base,
		Target:  head,
		Kind:    types.RangeFeatureBranch,
		BaseRef: r.cfg.DefaultBranch,
	}, nil
}
