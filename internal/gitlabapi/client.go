// Package gitlabapi is a minimal GitLab REST client for merge request
// commit retrieval. GitLab CI clones are shallow by default, so a merge
// request pipeline may not have the target branch locally; the MR commits
// endpoint returns the full list regardless of clone depth.
package gitlabapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/EmundoT/git-dco/internal/types"
)

// Authentication header names accepted by the GitLab API.
// Personal access tokens use PRIVATE-TOKEN, CI job tokens use JOB-TOKEN.
const (
	HeaderPrivateToken = "PRIVATE-TOKEN"
	HeaderJobToken     = "JOB-TOKEN"
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a GitLab v4 API endpoint.
//
// baseURL is the full v4 API root, e.g. "https://gitlab.com/api/v4";
// GitLab CI exposes it as CI_API_V4_URL, which covers self-hosted
// instances without extra configuration.
type Client struct {
	baseURL     string
	tokenHeader string
	token       string
	httpClient  HTTPClient
}

// NewClient creates a GitLab API client. tokenHeader should be one of
// HeaderPrivateToken or HeaderJobToken. A nil httpClient gets a default
// with a 30 second timeout.
func NewClient(baseURL, tokenHeader, token string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		tokenHeader: tokenHeader,
		token:       token,
		httpClient:  httpClient,
	}
}

// mrCommit mirrors the subset of the GitLab commit entity the client reads.
type mrCommit struct {
	ID          string   `json:"id"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
	Message     string   `json:"message"`
	ParentIDs   []string `json:"parent_ids"`
}

// MRCommits retrieves the commit list of a merge request, oldest first.
//
// GitLab API endpoint: GET /projects/:id/merge_requests/:iid/commits
// Documentation: https://docs.gitlab.com/ee/api/merge_requests.html#get-single-merge-request-commits
//
// The endpoint returns commits newest first; the result is reversed so it
// matches git log --reverse ordering. Pagination follows the X-Next-Page
// response header.
func (c *Client) MRCommits(ctx context.Context, projectID, mrIID string) ([]types.Commit, error) {
	var raw []mrCommit

	page := 1
	for {
		reqURL := fmt.Sprintf("%s/projects/%s/merge_requests/%s/commits?per_page=100&page=%d",
			c.baseURL, url.PathEscape(projectID), url.PathEscape(mrIID), page)

		var pageCommits []mrCommit
		nextPage, err := c.doRequest(ctx, reqURL, &pageCommits)
		if err != nil {
			return nil, fmt.Errorf("listing commits of merge request %s (page %d): %w", mrIID, page, err)
		}

		raw = append(raw, pageCommits...)

		if nextPage == 0 {
			break
		}
		page = nextPage
	}

	commits := make([]types.Commit, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		commit, err := mapCommit(raw[i])
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

// mapCommit converts a GitLab commit entity to a types.Commit. A commit
// without an id is an error, not a skip; a dropped commit would otherwise
// be reported as compliant.
func mapCommit(mc mrCommit) (types.Commit, error) {
	if mc.ID == "" {
		return types.Commit{}, fmt.Errorf("merge request payload contains a commit without an id")
	}

	return types.Commit{
		Hash:        mc.ID,
		AuthorName:  mc.AuthorName,
		AuthorEmail: mc.AuthorEmail,
		Message:     strings.TrimRight(mc.Message, "\n"),
		ParentCount: len(mc.ParentIDs),
	}, nil
}

// doRequest performs a GET against the GitLab API and decodes the JSON
// response into result. It returns the page number from the X-Next-Page
// header, or 0 when there are no further pages.
func (c *Client) doRequest(ctx context.Context, reqURL string, result interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	if c.token != "" {
		req.Header.Set(c.tokenHeader, c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("GitLab API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}

	nextPage, err := strconv.Atoi(resp.Header.Get("X-Next-Page"))
	if err != nil {
		return 0, nil
	}

	return nextPage, nil
}
