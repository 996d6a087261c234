package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/githubapi"
	"github.com/EmundoT/git-dco/internal/types"
)

// GitHub Actions variables used for range resolution.
// See: https://docs.github.com/en/actions/reference/variables-reference
const (
	envGitHubToken      = "GITHUB_TOKEN"
	envGitHubEventPath  = "GITHUB_EVENT_PATH"
	envGitHubEventName  = "GITHUB_EVENT_NAME"
	envGitHubRepository = "GITHUB_REPOSITORY"
)

const githubTokenHint = "Did you forget to include this in your workflow config?\n\n" +
	"\tenv:\n" +
	"\t  GITHUB_TOKEN: ${{ secrets.GITHUB_TOKEN }}"

// compareAPI is the slice of the GitHub API the resolver needs.
type compareAPI interface {
	CompareCommits(ctx context.Context, owner, repo, base, head string) ([]types.Commit, error)
}

// githubEvent is the subset of a workflow event payload the resolver
// reads. pull_request and push events carry different fields; the rest
// stay at their zero values.
type githubEvent struct {
	Ref     string `json:"ref"`
	Before  string `json:"before"`
	After   string `json:"after"`
	Created bool   `json:"created"`

	HeadCommit *struct {
		ID string `json:"id"`
	} `json:"head_commit"`

	Commits []struct {
		ID string `json:"id"`
	} `json:"commits"`

	PullRequest *struct {
		Base struct {
			SHA string `json:"sha"`
			Ref string `json:"ref"`
		} `json:"base"`
		Head struct {
			SHA string `json:"sha"`
			Ref string `json:"ref"`
		} `json:"head"`
	} `json:"pull_request"`
}

// GitHubResolver resolves ranges from the workflow event payload and
// retrieves commits through the compare API. Commit data never comes from
// the local clone, so the strategy works on the shallow checkouts
// actions/checkout produces by default.
type GitHubResolver struct {
	env *cidetect.Context

	// api is built from GITHUB_TOKEN during Resolve unless a test
	// injected one.
	api   compareAPI
	owner string
	repo  string
}

// NewGitHubResolver creates the GitHub Actions resolver. A nil api means
// the real client is built from GITHUB_TOKEN during Resolve.
func NewGitHubResolver(env *cidetect.Context, api compareAPI) *GitHubResolver {
	return &GitHubResolver{env: env, api: api}
}

// Name returns the strategy name.
func (r *GitHubResolver) Name() string {
	return "GitHub CI"
}

// Resolve determines the commit range from the workflow event payload.
func (r *GitHubResolver) Resolve(ctx context.Context) (types.CommitRange, error) {
	token := r.env.Get(envGitHubToken)
	if token == "" {
		return types.CommitRange{}, &core.ResolutionError{
			Msg:  fmt.Sprintf("%s is not set", envGitHubToken),
			Hint: githubTokenHint,
		}
	}

	repository, err := requireEnv(r.env, envGitHubRepository)
	if err != nil {
		return types.CommitRange{}, err
	}
	owner, repo, err := githubapi.SplitRepo(repository)
	if err != nil {
		return types.CommitRange{}, &core.ResolutionError{
			Msg: fmt.Sprintf("invalid %s value", envGitHubRepository),
			Err: err,
		}
	}

	event, err := r.readEvent()
	if err != nil {
		return types.CommitRange{}, err
	}

	eventName, err := requireEnv(r.env, envGitHubEventName)
	if err != nil {
		return types.CommitRange{}, err
	}

	rng, err := resolveGitHubEvent(eventName, event)
	if err != nil {
		return types.CommitRange{}, err
	}

	if r.api == nil {
		r.api = githubapi.NewClient(token)
	}
	r.owner = owner
	r.repo = repo

	return rng, nil
}

// readEvent loads and decodes the workflow event payload file.
func (r *GitHubResolver) readEvent() (*githubEvent, error) {
	path, err := requireEnv(r.env, envGitHubEventPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ResolutionError{Msg: "failed to read the workflow event payload", Err: err}
	}

	var event githubEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, &core.ResolutionError{Msg: "failed to parse the workflow event payload", Err: err}
	}
	return &event, nil
}

// resolveGitHubEvent maps one event payload to a commit range.
func resolveGitHubEvent(eventName string, event *githubEvent) (types.CommitRange, error) {
	switch eventName {
	case "pull_request":
		if event.PullRequest == nil {
			return types.CommitRange{}, &core.ResolutionError{
				Msg: "event payload has no pull_request object",
			}
		}
		return types.CommitRange{
			Base:      event.PullRequest.Base.SHA,
			Target:    event.PullRequest.Head.SHA,
			Kind:      types.RangeFeatureBranch,
			BaseRef:   event.PullRequest.Base.Ref,
			TargetRef: event.PullRequest.Head.Ref,
		}, nil

	case "push":
		return resolveGitHubPush(event)

	default:
		return types.CommitRange{}, &core.ResolutionError{
			Msg: fmt.Sprintf("unknown workflow event: %s", eventName),
		}
	}
}

// resolveGitHubPush maps a push event payload to a commit range. A freshly
// created branch has no before revision; the parent of the first pushed
// commit bounds the range instead. A created branch with no pushed commits
// introduces nothing to check, which is an empty range, not an error.
func resolveGitHubPush(event *githubEvent) (types.CommitRange, error) {
	head := event.After
	if event.HeadCommit != nil && event.HeadCommit.ID != "" {
		head = event.HeadCommit.ID
	}
	if head == "" {
		return types.CommitRange{}, &core.ResolutionError{
			Msg: "push event payload has no head commit",
		}
	}

	base := event.Before
	if event.Created {
		if len(event.Commits) == 0 {
			base = head
		} else {
			base = event.Commits[0].ID + "^"
		}
	}

	return types.CommitRange{
		Base:      base,
		Target:    head,
		Kind:      types.RangeDefaultBranchPush,
		TargetRef: strings.TrimPrefix(event.Ref, "refs/heads/"),
	}, nil
}

// Commits retrieves the resolved range through the compare API.
func (r *GitHubResolver) Commits(ctx context.Context, rng types.CommitRange) ([]types.Commit, error) {
	commits, err := r.api.CompareCommits(ctx, r.owner, r.repo, rng.Base, rng.Target)
	if err != nil {
		return nil, &core.RetrievalError{
			Msg: fmt.Sprintf("failed to compare %s", rng.RevSpec()),
			Err: err,
		}
	}
	return commits, nil
}
