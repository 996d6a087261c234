package resolvers

import (
	"context"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// CircleCI variables used for range resolution. CIRCLE_BASE_REVISION is
// not built in; pipelines expose it by mapping the pipeline value:
//
//	environment:
//	  CIRCLE_BASE_REVISION: << pipeline.git.base_revision >>
//
// See: https://circleci.com/docs/variables/
const (
	envCircleSHA          = "CIRCLE_SHA1"
	envCircleBranch       = "CIRCLE_BRANCH"
	envCircleBaseRevision = "CIRCLE_BASE_REVISION"
)

// CircleCIResolver resolves ranges on CircleCI. When the pipeline plumbs
// its base revision into the environment that revision bounds the range
// directly; otherwise the default branch is fetched and the fork point
// is computed against it.
type CircleCIResolver struct {
	localRetriever
	env *cidetect.Context
	cfg core.Config
}

// NewCircleCIResolver creates the CircleCI resolver.
func NewCircleCIResolver(env *cidetect.Context, cfg core.Config, gitClient core.GitClient) *CircleCIResolver {
	return &CircleCIResolver{
		localRetriever: localRetriever{git: gitClient},
		env:            env,
		cfg:            cfg,
	}
}

// Name returns the strategy name.
func (r *CircleCIResolver) Name() string {
	return "CircleCI"
}

// Resolve determines the commit range from build variables.
func (r *CircleCIResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	head, err := requireEnv(r.env, envCircleSHA)
	if err != nil {
		return types.CommitRange{}, err
	}

	if base := r.env.Get(envCircleBaseRevision); base != "" {
		return types.CommitRange{
			Base:      base,
			Target:    head,
			Kind:      types.RangeFeatureBranch,
			TargetRef: r.env.Get(envCircleBranch),
		}, nil
	}

	branch, err := requireEnv(r.env, envCircleBranch)
	if err != nil {
		return types.CommitRange{}, err
	}

	base, baseRef, err := fetchForkPoint(ctx, r.git, r.cfg.DefaultRemote, r.cfg.DefaultBranch)
	if err != nil {
		return types.CommitRange{}, err
	}

	return types.CommitRange{
		Base:      base,
		Target:    head,
		Kind:      types.RangeFeatureBranch,
		BaseRef:   baseRef,
		TargetRef: branch,
	}, nil
}
