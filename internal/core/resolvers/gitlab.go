package resolvers

import (
	"context"
	"fmt"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/gitlabapi"
	"github.com/EmundoT/git-dco/internal/types"
)

// GitLab CI predefined variables used for range resolution.
// See: https://docs.gitlab.com/ee/ci/variables/predefined_variables.html
const (
	envGitLabDefaultBranch = "CI_DEFAULT_BRANCH"
	envGitLabCommitSHA     = "CI_COMMIT_SHA"
	envGitLabCommitBranch  = "CI_COMMIT_BRANCH"
	envGitLabBeforeSHA     = "CI_COMMIT_BEFORE_SHA"

	envGitLabMRID        = "CI_MERGE_REQUEST_ID"
	envGitLabMRIID       = "CI_MERGE_REQUEST_IID"
	envGitLabMRTarget    = "CI_MERGE_REQUEST_TARGET_BRANCH_NAME"
	envGitLabMRTargetSHA = "CI_MERGE_REQUEST_TARGET_BRANCH_SHA"

	envGitLabExtPRIID       = "CI_EXTERNAL_PULL_REQUEST_IID"
	envGitLabExtPRTarget    = "CI_EXTERNAL_PULL_REQUEST_TARGET_BRANCH_NAME"
	envGitLabExtPRTargetSHA = "CI_EXTERNAL_PULL_REQUEST_TARGET_BRANCH_SHA"

	envGitLabAPIURL    = "CI_API_V4_URL"
	envGitLabProjectID = "CI_PROJECT_ID"
	envGitLabToken     = "GITLAB_TOKEN"
	envGitLabJobToken  = "CI_JOB_TOKEN"
)

// mrAPI is the slice of the GitLab API the resolver needs.
type mrAPI interface {
	MRCommits(ctx context.Context, projectID, mrIID string) ([]types.Commit, error)
}

// GitLabResolver resolves ranges from GitLab CI pipeline variables.
//
// Resolution order:
//  1. Pipeline on the default branch: push case bounded by
//     CI_COMMIT_BEFORE_SHA.
//  2. Merge request pipeline: base is the target branch head SHA.
//  3. External pull request pipeline: same, from the external PR variables.
//  4. Anything else: fetch the default branch and use the fork point.
//
// GitLab CI clones are shallow by default and merge request pipelines do
// not always export the target branch SHA. When local resolution is not
// possible and the pipeline belongs to a merge request with API
// credentials available, the resolver falls back to listing the MR
// commits through the API instead of failing.
type GitLabResolver struct {
	localRetriever
	env *cidetect.Context
	cfg core.Config

	// mr is the API fallback client; built on first use unless a test
	// injected one.
	mr        mrAPI
	useAPI    bool
	projectID string
	mrIID     string
}

// NewGitLabResolver creates the GitLab CI resolver. A nil api means the
// real client is built from CI_API_V4_URL and the available token if the
// fallback path is ever taken.
func NewGitLabResolver(env *cidetect.Context, cfg core.Config, gitClient core.GitClient, api mrAPI) *GitLabResolver {
	return &GitLabResolver{
		localRetriever: localRetriever{git: gitClient},
		env:            env,
		cfg:            cfg,
		mr:             api,
	}
}

// Name returns the strategy name.
func (r *GitLabResolver) Name() string {
	return "GitLab"
}

// Resolve determines the commit range from pipeline variables.
func (r *GitLabResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	defaultBranch := r.env.Get(envGitLabDefaultBranch)
	if defaultBranch == "" {
		defaultBranch = r.cfg.DefaultBranch
	}

	head, err := requireEnv(r.env, envGitLabCommitSHA)
	if err != nil {
		return types.CommitRange{}, err
	}

	branch := r.env.Get(envGitLabCommitBranch)

	switch {
	case branch != "" && branch == defaultBranch:
		base, err := requireEnv(r.env, envGitLabBeforeSHA)
		if err != nil {
			return types.CommitRange{}, err
		}
		return types.CommitRange{
			Base:      base,
			Target:    head,
			Kind:      types.RangeDefaultBranchPush,
			BaseRef:   defaultBranch,
			TargetRef: branch,
		}, nil

	case r.env.Get(envGitLabMRID) != "":
		return r.resolveMergeRequest(ctx, head)

	case r.env.Get(envGitLabExtPRIID) != "":
		target, err := requireEnv(r.env, envGitLabExtPRTarget)
		if err != nil {
			return types.CommitRange{}, err
		}
		base, err := requireEnv(r.env, envGitLabExtPRTargetSHA)
		if err != nil {
			return types.CommitRange{}, err
		}
		return types.CommitRange{
			Base:      base,
			Target:    head,
			Kind:      types.RangeFeatureBranch,
			BaseRef:   target,
			TargetRef: branch,
		}, nil

	default:
		base, baseRef, err := fetchForkPoint(ctx, r.git, r.cfg.DefaultRemote, defaultBranch)
		if err != nil {
			if rng, ok := r.tryMRFallback(head, defaultBranch); ok {
				return rng, nil
			}
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
}

// resolveMergeRequest handles merge request pipelines. The target branch
// SHA is only exported in merged-results pipelines; when it is absent the
// resolver switches to API retrieval rather than failing.
func (r *GitLabResolver) resolveMergeRequest(ctx context.Context, head string) (types.CommitRange, error) {
	target, err := requireEnv(r.env, envGitLabMRTarget)
	if err != nil {
		return types.CommitRange{}, err
	}

	if base := r.env.Get(envGitLabMRTargetSHA); base != "" {
		return types.CommitRange{
			Base:      base,
			Target:    head,
			Kind:      types.RangeFeatureBranch,
			BaseRef:   target,
			TargetRef: r.env.Get(envGitLabCommitBranch),
		}, nil
	}

	if rng, ok := r.tryMRFallback(head, target); ok {
		return rng, nil
	}

	return types.CommitRange{}, &core.ResolutionError{
		Msg: fmt.Sprintf("%s is not available in this pipeline", envGitLabMRTargetSHA),
		Hint: "Enable merged results pipelines, or provide GITLAB_TOKEN so the " +
			"merge request commits can be read through the API.",
	}
}

// tryMRFallback switches the resolver to API retrieval when the pipeline
// belongs to a merge request and credentials are available. The returned
// range carries the target branch name as base; the actual commit list
// comes from the MR API, which works regardless of clone depth.
func (r *GitLabResolver) tryMRFallback(head, targetBranch string) (types.CommitRange, bool) {
	apiURL := r.env.Get(envGitLabAPIURL)
	projectID := r.env.Get(envGitLabProjectID)
	mrIID := r.env.Get(envGitLabMRIID)
	if apiURL == "" || projectID == "" || mrIID == "" {
		return types.CommitRange{}, false
	}

	tokenHeader, token := gitlabapi.HeaderPrivateToken, r.env.Get(envGitLabToken)
	if token == "" {
		tokenHeader, token = gitlabapi.HeaderJobToken, r.env.Get(envGitLabJobToken)
	}
	if token == "" {
		return types.CommitRange{}, false
	}

	if r.mr == nil {
		r.mr = gitlabapi.NewClient(apiURL, tokenHeader, token, nil)
	}
	r.useAPI = true
	r.projectID = projectID
	r.mrIID = mrIID

	return types.CommitRange{
		Base:      targetBranch,
		Target:    head,
		Kind:      types.RangeFeatureBranch,
		BaseRef:   targetBranch,
		TargetRef: r.env.Get(envGitLabCommitBranch),
	}, true
}

// Commits retrieves the resolved range, from the local clone or from the
// MR API when Resolve decided local history is not usable.
func (r *GitLabResolver) Commits(ctx context.Context, rng types.CommitRange) ([]types.Commit, error) {
	if !r.useAPI {
		return r.localRetriever.Commits(ctx, rng)
	}

	commits, err := r.mr.MRCommits(ctx, r.projectID, r.mrIID)
	if err != nil {
		return nil, &core.RetrievalError{
			Msg: fmt.Sprintf("failed to list commits of merge request %s", r.mrIID),
			Err: err,
		}
	}
	return commits, nil
}
