// Package cli wires the cobra command tree. Commands merge configuration
// sources, build the check pipeline, and map failures to process exit
// codes through clierr; they never call os.Exit themselves.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/EmundoT/git-dco/internal/core"
)

// rootOptions holds the persistent flag values shared by the check and
// watch commands.
type rootOptions struct {
	defaultBranch           string
	defaultBranchFromRemote bool
	defaultRemote           string
	checkMergeCommits       bool
	excludeEmails           []string
	base                    string
	target                  string
	quiet                   bool
	verbose                 bool
	jsonOut                 bool
	repoDir                 string
}

func (o *rootOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.defaultBranch, "default-branch", "b", "", "default branch to compare against (default: master)")
	flags.BoolVar(&o.defaultBranchFromRemote, "default-branch-from-remote", false, "ask the default remote for its HEAD branch instead of using --default-branch")
	flags.StringVarP(&o.defaultRemote, "default-remote", "r", "", "remote used for fetches and remote HEAD lookup (default: origin)")
	flags.BoolVarP(&o.checkMergeCommits, "check-merge-commits", "m", false, "check sign-offs on merge commits as well")
	flags.StringSliceVarP(&o.excludeEmails, "exclude-emails", "e", nil, "author emails whose commits pass unchecked")
	flags.StringVar(&o.base, "base", "", "explicit base revision (requires --target)")
	flags.StringVar(&o.target, "target", "", "explicit target revision (requires --base)")
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "print nothing except missing sign-offs")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "print range resolution and per-commit details")
	flags.BoolVar(&o.jsonOut, "json", false, "emit a JSON report instead of text")
	flags.StringVar(&o.repoDir, "repo", "", "repository to check (default: current directory)")
}

// NewRootCmd constructs the git-dco command tree. The root command itself
// runs the check.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "git-dco",
		Short: "Check commits for Developer Certificate of Origin sign-offs",
		Long: `git-dco checks that every commit of a proposed change carries a
Signed-off-by line, as required by the Developer Certificate of Origin
convention.

It detects the CI platform it runs on (GitLab CI, GitHub Actions, Azure
Pipelines, AppVeyor, CircleCI) and derives the commit range to check from
the platform's pipeline metadata. Outside CI it compares HEAD against the
fork point with the default branch.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}

	opts.register(cmd)

	cmd.AddCommand(newWatchCmd(opts))
	cmd.AddCommand(newSetupCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolveRepoDir returns the repository directory: --repo flag, then
// GIT_DCO_REPO, then the current directory.
func resolveRepoDir(flags *pflag.FlagSet, opts *rootOptions) string {
	if flags.Changed("repo") {
		return opts.repoDir
	}
	if v, ok := os.LookupEnv(core.EnvRepo); ok && v != "" {
		return v
	}
	return core.DefaultConfig().RepoDir
}

// buildConfig merges the configuration sources in precedence order:
// built-in defaults, .dco.yml, GIT_DCO_* environment variables, then
// flags that were explicitly set.
func buildConfig(flags *pflag.FlagSet, opts *rootOptions) (core.Config, error) {
	cfg := core.DefaultConfig()
	cfg.RepoDir = resolveRepoDir(flags, opts)

	fileCfg, err := core.NewFileConfigStore(cfg.RepoDir).Load()
	if err != nil {
		return core.Config{}, core.NewConfigError("failed to load %s: %v", core.ConfigFileName, err)
	}
	cfg.ApplyFile(fileCfg)
	cfg.ApplyEnv(os.LookupEnv)

	if flags.Changed("default-branch") && flags.Changed("default-branch-from-remote") {
		return core.Config{}, core.NewConfigError(
			"default-branch and default-branch-from-remote are mutually exclusive")
	}
	if flags.Changed("default-branch") {
		cfg.DefaultBranch = opts.defaultBranch
		// An explicit branch overrides a remote-HEAD preference from a
		// lower-precedence source.
		cfg.DefaultBranchFromRemote = false
	}
	if flags.Changed("default-branch-from-remote") {
		cfg.DefaultBranchFromRemote = opts.defaultBranchFromRemote
	}
	if flags.Changed("default-remote") {
		cfg.DefaultRemote = opts.defaultRemote
	}
	if flags.Changed("check-merge-commits") {
		cfg.CheckMergeCommits = opts.checkMergeCommits
	}
	if flags.Changed("exclude-emails") {
		cfg.ExcludeEmails = opts.excludeEmails
	}
	if flags.Changed("base") {
		cfg.Base = opts.base
	}
	if flags.Changed("target") {
		cfg.Target = opts.target
	}
	if flags.Changed("quiet") {
		cfg.Quiet = opts.quiet
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("json") {
		cfg.JSON = opts.jsonOut
	}

	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}
