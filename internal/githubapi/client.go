// Package githubapi retrieves commit data from the GitHub REST API.
//
// GitHub Actions checkouts are often shallow, so commit ranges are read
// through the compare endpoint instead of local git. The transport stack
// layers conditional request caching and secondary rate limit handling
// under the go-github client, which keeps repeated checks of the same
// range (watch mode re-runs in particular) from spending quota.
package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v68/github"
	"github.com/gregjones/httpcache"

	"github.com/EmundoT/git-dco/internal/types"
)

// Client wraps the go-github client for commit range retrieval.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with token auth)
func NewClient(token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)

	return &Client{gh: gh.NewClient(rateLimitClient).WithAuthToken(token)}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// CompareCommits retrieves every commit reachable from head but not from
// base, oldest first, via the compare endpoint. Pagination is handled
// automatically. base may carry a trailing "^" revision suffix; the API
// resolves it the same way git rev-parse would.
func (c *Client) CompareCommits(ctx context.Context, owner, repo, base, head string) ([]types.Commit, error) {
	opts := &gh.ListOptions{PerPage: 100}
	var commits []types.Commit

	for {
		cmp, resp, err := c.gh.Repositories.CompareCommits(ctx, owner, repo, base, head, opts)
		if err != nil {
			return nil, fmt.Errorf("comparing %s...%s for %s/%s (page %d): %w", base, head, owner, repo, opts.Page, err)
		}

		logRateLimit(resp, owner+"/"+repo+"/compare", opts.Page, len(cmp.Commits))

		for _, rc := range cmp.Commits {
			commit, err := mapCommit(rc)
			if err != nil {
				return nil, err
			}
			commits = append(commits, commit)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return commits, nil
}

// mapCommit converts a go-github RepositoryCommit to a types.Commit.
// A commit without a sha or commit object is an error, not a skip; a
// dropped commit would otherwise be reported as compliant.
func mapCommit(rc *gh.RepositoryCommit) (types.Commit, error) {
	if rc.GetSHA() == "" {
		return types.Commit{}, fmt.Errorf("compare payload contains a commit without a sha")
	}
	if rc.Commit == nil {
		return types.Commit{}, fmt.Errorf("compare payload for %s contains no commit object", rc.GetSHA())
	}

	return types.Commit{
		Hash:        rc.GetSHA(),
		AuthorName:  rc.GetCommit().GetAuthor().GetName(),
		AuthorEmail: rc.GetCommit().GetAuthor().GetEmail(),
		Message:     rc.GetCommit().GetMessage(),
		ParentCount: len(rc.Parents),
	}, nil
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// SplitRepo splits an "owner/repo" string into its two components.
func SplitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
