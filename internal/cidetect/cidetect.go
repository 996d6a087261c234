// Package cidetect identifies which CI platform a check is running on from
// a read-only snapshot of the process environment. Detection is used for
// consistent strategy selection across:
// - commit range resolution (which platform metadata to trust)
// - commit retrieval (local git vs platform API)
// - report diagnostics (which strategy ran)
package cidetect

import (
	"os"
	"strings"
)

// Platform identifies a supported CI platform.
type Platform string

// Platform constants, in detection priority order. The generic git
// fallback is always selectable and therefore checked last.
const (
	PlatformGitLab   Platform = "gitlab"
	PlatformGitHub   Platform = "github"
	PlatformAzure    Platform = "azure"
	PlatformAppVeyor Platform = "appveyor"
	PlatformCircleCI Platform = "circleci"
	PlatformGit      Platform = "git"
)

// Activation signals per platform.
const (
	EnvGitLabCI      = "GITLAB_CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvAzureTFBuild  = "TF_BUILD"
	EnvAppVeyor      = "APPVEYOR"
	EnvCircleCI      = "CIRCLECI"
)

// Context is a read-only snapshot of recognized environment signals, taken
// once at process start. A variable that is set to the empty string is
// still present; only unset variables are "not provided".
type Context struct {
	vars map[string]string
}

// Snapshot captures the current process environment.
func Snapshot() *Context {
	vars := make(map[string]string)
	for _, e := range os.Environ() {
		key, value, _ := strings.Cut(e, "=")
		vars[key] = value
	}
	return &Context{vars: vars}
}

// NewContext builds a snapshot from an explicit variable map.
func NewContext(vars map[string]string) *Context {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return &Context{vars: copied}
}

// Lookup returns the value of a signal and whether it was provided.
func (c *Context) Lookup(name string) (string, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Get returns the value of a signal, or "" when not provided.
func (c *Context) Get(name string) string {
	return c.vars[name]
}

// Has reports whether a signal was provided at all.
func (c *Context) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// Detect returns exactly one platform for the snapshot, checking
// vendor-specific signals in a fixed priority order:
// GitLab, GitHub, Azure Pipelines, AppVeyor, CircleCI. When none match,
// the generic git fallback is selected unconditionally, so detection
// never fails and never is ambiguous.
func Detect(env *Context) Platform {
	switch {
	case env.Has(EnvGitLabCI):
		return PlatformGitLab
	case env.Get(EnvGitHubActions) == "true":
		return PlatformGitHub
	case env.Has(EnvAzureTFBuild):
		return PlatformAzure
	case env.Has(EnvAppVeyor):
		return PlatformAppVeyor
	case env.Has(EnvCircleCI):
		return PlatformCircleCI
	}
	return PlatformGit
}
