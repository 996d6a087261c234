package resolvers

import (
	"context"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// AppVeyor variables used for range resolution.
// See: https://www.appveyor.com/docs/environment-variables/
const (
	envAppVeyorCommit       = "APPVEYOR_REPO_COMMIT"
	envAppVeyorBranch       = "APPVEYOR_REPO_BRANCH"
	envAppVeyorPRNumber     = "APPVEYOR_PULL_REQUEST_NUMBER"
	envAppVeyorPRHeadBranch = "APPVEYOR_PULL_REQUEST_HEAD_REPO_BRANCH"
	envAppVeyorPRHeadCommit = "APPVEYOR_PULL_REQUEST_HEAD_COMMIT"
)

// AppVeyorResolver resolves ranges on AppVeyor. For pull request builds
// APPVEYOR_REPO_BRANCH names the merge target and the fork point is
// computed against it; otherwise the configured default branch bounds the
// range. AppVeyor clones carry full history, so nothing is fetched.
type AppVeyorResolver struct {
	localRetriever
	env *cidetect.Context
	cfg core.Config
}

// NewAppVeyorResolver creates the AppVeyor resolver.
func NewAppVeyorResolver(env *cidetect.Context, cfg core.Config, gitClient core.GitClient) *AppVeyorResolver {
	return &AppVeyorResolver{
		localRetriever: localRetriever{git: gitClient},
		env:            env,
		cfg:            cfg,
	}
}

// Name returns the strategy name.
func (r *AppVeyorResolver) Name() string {
	return "AppVeyor"
}

// Resolve determines the commit range from build variables.
func (r *AppVeyorResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	head := r.env.Get(envAppVeyorCommit)
	if head == "" {
		var err error
		head, err = r.git.Head(ctx)
		if err != nil {
			return types.CommitRange{}, &core.ResolutionError{Msg: "failed to resolve HEAD", Err: err}
		}
	}

	branch, err := requireEnv(r.env, envAppVeyorBranch)
	if err != nil {
		return types.CommitRange{}, err
	}

	if r.env.Get(envAppVeyorPRNumber) != "" {
		headBranch, err := requireEnv(r.env, envAppVeyorPRHeadBranch)
		if err != nil {
			return types.CommitRange{}, err
		}
		if prHead := r.env.Get(envAppVeyorPRHeadCommit); prHead != "" {
			head = prHead
		}

		base, err := r.git.ForkPoint(ctx, branch)
		if err != nil {
			return types.CommitRange{}, forkPointError(branch, err)
		}
		return types.CommitRange{
			Base:      base,
			Target:    head,
			Kind:      types.RangeFeatureBranch,
			BaseRef:   branch,
			TargetRef: headBranch,
		}, nil
	}

	base, err := r.git.ForkPoint(ctx, r.cfg.DefaultBranch)
	if err != nil {
		return types.CommitRange{}, forkPointError(r.cfg.DefaultBranch, err)
	}
	return types.CommitRange{
		Base:      base,
		Target:    head,
		Kind:      types.RangeFeatureBranch,
		BaseRef:   r.cfg.DefaultBranch,
		TargetRef: branch,
	}, nil
}
