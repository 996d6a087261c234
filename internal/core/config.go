package core

import (
	"strings"
)

// Environment variables understood by every command. They sit between
// flags and the .dco.yml file in precedence: CLI > env > file > defaults.
const (
	EnvDefaultBranch           = "GIT_DCO_DEFAULT_BRANCH"
	EnvDefaultBranchFromRemote = "GIT_DCO_DEFAULT_BRANCH_FROM_REMOTE"
	EnvDefaultRemote           = "GIT_DCO_DEFAULT_REMOTE"
	EnvCheckMergeCommits       = "GIT_DCO_CHECK_MERGE_COMMITS"
	EnvExcludeEmails           = "GIT_DCO_EXCLUDE_EMAILS"
	EnvBase                    = "GIT_DCO_BASE"
	EnvTarget                  = "GIT_DCO_TARGET"
	EnvQuiet                   = "GIT_DCO_QUIET"
	EnvVerbose                 = "GIT_DCO_VERBOSE"
	EnvJSON                    = "GIT_DCO_JSON"
	EnvRepo                    = "GIT_DCO_REPO"
)

// Config is the fully merged run configuration.
type Config struct {
	// DefaultBranch is the branch commits are compared against when the
	// platform gives no better range.
	DefaultBranch string

	// DefaultBranchFromRemote asks the default remote for its HEAD branch
	// instead of using DefaultBranch.
	DefaultBranchFromRemote bool

	// DefaultRemote is the remote used for fetches and remote HEAD lookup.
	DefaultRemote string

	// CheckMergeCommits validates merge commits instead of skipping them.
	CheckMergeCommits bool

	// ExcludeEmails lists author emails whose commits pass unchecked.
	ExcludeEmails []string

	// Base and Target, when both set, override platform range resolution.
	Base   string
	Target string

	Quiet   bool
	Verbose bool
	JSON    bool

	// RepoDir is the repository to operate on.
	RepoDir string
}

// DefaultConfig returns the built-in defaults: master on origin, merge
// commits skipped, current directory.
func DefaultConfig() Config {
	return Config{
		DefaultBranch: "master",
		DefaultRemote: "origin",
		RepoDir:       ".",
	}
}

// ApplyFile overlays the fields a .dco.yml file sets.
func (c *Config) ApplyFile(fc FileConfig) {
	if fc.DefaultBranch != nil {
		c.DefaultBranch = *fc.DefaultBranch
	}
	if fc.DefaultBranchFromRemote != nil {
		c.DefaultBranchFromRemote = *fc.DefaultBranchFromRemote
	}
	if fc.DefaultRemote != nil {
		c.DefaultRemote = *fc.DefaultRemote
	}
	if fc.CheckMergeCommits != nil {
		c.CheckMergeCommits = *fc.CheckMergeCommits
	}
	if len(fc.ExcludeEmails) > 0 {
		c.ExcludeEmails = fc.ExcludeEmails
	}
}

// ApplyEnv overlays GIT_DCO_* variables. lookup follows the os.LookupEnv
// signature so tests can inject a fixed environment. Boolean variables
// count as true when set to anything at all, matching the usual CI
// convention for toggle variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDefaultBranch); ok && v != "" {
		c.DefaultBranch = v
	}
	if v, ok := lookup(EnvDefaultRemote); ok && v != "" {
		c.DefaultRemote = v
	}
	if v, ok := lookup(EnvBase); ok && v != "" {
		c.Base = v
	}
	if v, ok := lookup(EnvTarget); ok && v != "" {
		c.Target = v
	}
	if v, ok := lookup(EnvRepo); ok && v != "" {
		c.RepoDir = v
	}
	if v, ok := lookup(EnvExcludeEmails); ok && v != "" {
		c.ExcludeEmails = SplitEmails(v)
	}

	bools := []struct {
		env  string
		dest *bool
	}{
		{EnvDefaultBranchFromRemote, &c.DefaultBranchFromRemote},
		{EnvCheckMergeCommits, &c.CheckMergeCommits},
		{EnvQuiet, &c.Quiet},
		{EnvVerbose, &c.Verbose},
		{EnvJSON, &c.JSON},
	}
	for _, b := range bools {
		if _, ok := lookup(b.env); ok {
			*b.dest = true
		}
	}
}

// Validate rejects conflicting or incomplete settings after all sources
// have been merged.
func (c *Config) Validate() error {
	if c.Quiet && c.Verbose {
		return NewConfigError("quiet and verbose are mutually exclusive")
	}
	if (c.Base == "") != (c.Target == "") {
		return NewConfigError("base and target must be set together")
	}
	if c.DefaultRemote == "" {
		return NewConfigError("default remote must not be empty")
	}
	if c.DefaultBranch == "" && !c.DefaultBranchFromRemote {
		return NewConfigError("default branch must not be empty")
	}
	return nil
}

// HasExplicitRange reports whether base and target were given directly,
// bypassing platform range resolution.
func (c *Config) HasExplicitRange() bool {
	return c.Base != "" && c.Target != ""
}

// SplitEmails parses a comma-separated email list, trimming whitespace
// and dropping empty entries.
func SplitEmails(s string) []string {
	var emails []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}
