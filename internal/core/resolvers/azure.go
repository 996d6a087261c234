package resolvers

import (
	"context"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// Azure Pipelines variables used for range resolution.
// See: https://docs.microsoft.com/en-us/azure/devops/pipelines/build/variables
const (
	envAzureSourceVersion = "BUILD_SOURCEVERSION"
	envAzureSourceBranch  = "BUILD_SOURCEBRANCHNAME"
	envAzurePRID          = "SYSTEM_PULLREQUEST_PULLREQUESTID"
	envAzurePRTarget      = "SYSTEM_PULLREQUEST_TARGETBRANCH"
)

// AzureResolver resolves ranges on Azure Pipelines. Pull request builds
// fork off the PR target branch, everything else off the configured
// default branch. Azure checkouts are detached, so the base branch is
// always fetched before the fork point is computed.
type AzureResolver struct {
	localRetriever
	env *cidetect.Context
	cfg core.Config
}

// NewAzureResolver creates the Azure Pipelines resolver.
func NewAzureResolver(env *cidetect.Context, cfg core.Config, gitClient core.GitClient) *AzureResolver {
	return &AzureResolver{
		localRetriever: localRetriever{git: gitClient},
		env:            env,
		cfg:            cfg,
	}
}

// Name returns the strategy name.
func (r *AzureResolver) Name() string {
	return "Azure Pipelines"
}

// Resolve determines the commit range from pipeline variables.
func (r *AzureResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	head, err := requireEnv(r.env, envAzureSourceVersion)
	if err != nil {
		return types.CommitRange{}, err
	}
	branch, err := requireEnv(r.env, envAzureSourceBranch)
	if err != nil {
		return types.CommitRange{}, err
	}

	baseBranch := r.cfg.DefaultBranch
	if r.env.Get(envAzurePRID) != "" {
		baseBranch, err = requireEnv(r.env, envAzurePRTarget)
		if err != nil {
			return types.CommitRange{}, err
		}
	}

	base, baseRef, err := fetchForkPoint(ctx, r.git, r.cfg.DefaultRemote, baseBranch)
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
