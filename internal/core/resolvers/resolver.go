// Package resolvers holds one commit range resolution strategy per CI
// platform, plus the generic git fallback and the explicit base/target
// override. Each strategy decides which commits a run must check and how
// to retrieve them (local git log or a platform API).
package resolvers

import (
	"context"
	"fmt"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// Registry maps a detected platform to its resolver strategy.
type Registry struct {
	env *cidetect.Context
	cfg core.Config
	git core.GitClient
}

// NewRegistry creates a registry over an environment snapshot, the merged
// configuration, and a git client for the working repository.
func NewRegistry(env *cidetect.Context, cfg core.Config, gitClient core.GitClient) *Registry {
	return &Registry{env: env, cfg: cfg, git: gitClient}
}

// For returns the resolver for the given platform. An explicit
// base/target pair in the configuration always wins over platform
// metadata, regardless of which platform was detected.
func (r *Registry) For(platform cidetect.Platform) core.RangeResolver {
	if r.cfg.HasExplicitRange() {
		return NewOverrideResolver(r.git, r.cfg.Base, r.cfg.Target)
	}

	switch platform {
	case cidetect.PlatformGitLab:
		return NewGitLabResolver(r.env, r.cfg, r.git, nil)
	case cidetect.PlatformGitHub:
		return NewGitHubResolver(r.env, nil)
	case cidetect.PlatformAzure:
		return NewAzureResolver(r.env, r.cfg, r.git)
	case cidetect.PlatformAppVeyor:
		return NewAppVeyorResolver(r.env, r.cfg, r.git)
	case cidetect.PlatformCircleCI:
		return NewCircleCIResolver(r.env, r.cfg, r.git)
	default:
		return NewGitResolver(r.cfg, r.git)
	}
}

// localRetriever is the shared local retrieval half of every strategy
// that reads commits from the working clone.
type localRetriever struct {
	git core.GitClient
}

// Commits lists the commits of rng from the local repository, oldest
// first.
func (l localRetriever) Commits(ctx context.Context, rng types.CommitRange) ([]types.Commit, error) {
	commits, err := l.git.CommitsInRange(ctx, rng)
	if err != nil {
		return nil, &core.RetrievalError{
			Msg: fmt.Sprintf("failed to list commits in %s", rng.RevSpec()),
			Err: err,
		}
	}
	return commits, nil
}

// requireEnv returns the value of an environment signal that a strategy
// cannot work without. Unset and set-but-empty both count as missing.
func requireEnv(env *cidetect.Context, name string) (string, error) {
	v := env.Get(name)
	if v == "" {
		return "", &core.ResolutionError{
			Msg: fmt.Sprintf("required environment variable %s is not set", name),
		}
	}
	return v, nil
}

const shallowCloneHint = "The clone may not contain enough history to find the common ancestor. " +
	"Increase the clone depth (e.g. git fetch --unshallow) and retry."

// forkPointError wraps a failed merge-base --fork-point computation.
// On CI this almost always means a shallow clone, so the hint says so.
func forkPointError(ref string, err error) *core.ResolutionError {
	return &core.ResolutionError{
		Msg:  fmt.Sprintf("insufficient history to find the fork point with %s", ref),
		Hint: shallowCloneHint,
		Err:  err,
	}
}

// fetchForkPoint fetches branch from remote and computes the fork point of
// HEAD against the remote-tracking ref. Returns the fork point hash and
// the ref it was computed against.
func fetchForkPoint(ctx context.Context, gitClient core.GitClient, remote, branch string) (string, string, error) {
	if err := gitClient.Fetch(ctx, remote, branch); err != nil {
		return "", "", &core.ResolutionError{
			Msg: fmt.Sprintf("failed to fetch %s from remote %s", branch, remote),
			Err: err,
		}
	}

	ref := remote + "/" + branch
	base, err := gitClient.ForkPoint(ctx, ref)
	if err != nil {
		return "", "", forkPointError(ref, err)
	}
	return base, ref, nil
}
