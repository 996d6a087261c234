package core

import (
	"context"

	git "github.com/EmundoT/git-dco/internal/gitplumbing"
	"github.com/EmundoT/git-dco/internal/types"
)

// GitClient is the subset of local git operations range resolution and
// retrieval need.
//
//go:generate mockgen -source=git_client.go -destination=git_client_mock.go -package=core
type GitClient interface {
	// Head returns the hash of the current HEAD commit.
	Head(ctx context.Context) (string, error)

	// ResolveRef resolves a ref name to a commit hash.
	ResolveRef(ctx context.Context, ref string) (string, error)

	// ForkPoint returns the fork point of HEAD against ref.
	ForkPoint(ctx context.Context, ref string) (string, error)

	// Fetch updates a branch from a remote.
	Fetch(ctx context.Context, remote, branch string) error

	// DefaultBranch asks the remote which branch its HEAD points at.
	DefaultBranch(ctx context.Context, remote string) (string, error)

	// CommitsInRange lists the commits of rng, oldest first.
	CommitsInRange(ctx context.Context, rng types.CommitRange) ([]types.Commit, error)
}

// SystemGitClient implements GitClient with the git subprocess wrapper.
type SystemGitClient struct {
	git *git.Git
}

// NewSystemGitClient creates a GitClient operating on the repository at dir.
func NewSystemGitClient(dir string, verbose bool) *SystemGitClient {
	g := git.New(dir)
	g.Verbose = verbose
	return &SystemGitClient{git: g}
}

// Head implements GitClient
func (c *SystemGitClient) Head(ctx context.Context) (string, error) {
	return c.git.HEAD(ctx)
}

// ResolveRef implements GitClient
func (c *SystemGitClient) ResolveRef(ctx context.Context, ref string) (string, error) {
	return c.git.ResolveRef(ctx, ref)
}

// ForkPoint implements GitClient
func (c *SystemGitClient) ForkPoint(ctx context.Context, ref string) (string, error) {
	return c.git.ForkPoint(ctx, ref)
}

// Fetch implements GitClient
func (c *SystemGitClient) Fetch(ctx context.Context, remote, branch string) error {
	return c.git.Fetch(ctx, remote, branch)
}

// DefaultBranch implements GitClient
func (c *SystemGitClient) DefaultBranch(ctx context.Context, remote string) (string, error) {
	return c.git.DefaultBranch(ctx, remote)
}

// CommitsInRange implements GitClient. Merge commits are included; the
// validator decides what to do with them.
func (c *SystemGitClient) CommitsInRange(ctx context.Context, rng types.CommitRange) ([]types.Commit, error) {
	raw, err := c.git.Log(ctx, git.LogOpts{Range: rng.RevSpec(), Reverse: true})
	if err != nil {
		return nil, err
	}

	commits := make([]types.Commit, len(raw))
	for i, rc := range raw {
		commits[i] = types.Commit{
			Hash:        rc.Hash,
			AuthorName:  rc.AuthorName,
			AuthorEmail: rc.AuthorEmail,
			Message:     rc.Message,
			ParentCount: len(rc.Parents),
		}
	}
	return commits, nil
}
