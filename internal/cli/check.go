package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/clierr"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/core/resolvers"
	git "github.com/EmundoT/git-dco/internal/gitplumbing"
	"github.com/EmundoT/git-dco/internal/report"
	"github.com/EmundoT/git-dco/internal/types"
)

// runCheck is the root command: one complete sign-off check.
func runCheck(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := buildConfig(cmd.Flags(), opts)
	if err != nil {
		// No merged config yet; report in the format the flags asked for.
		reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(),
			core.Config{JSON: opts.jsonOut}, false)
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}

	ctx := cmd.Context()
	gitc := core.NewSystemGitClient(cfg.RepoDir, cfg.Verbose)
	reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, report.StylingEnabled(os.Stdout))

	if err := requireGit(); err != nil {
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}

	if err := resolveDefaultBranch(ctx, &cfg, gitc); err != nil {
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}

	rep, err := runPipeline(ctx, cfg, gitc, reporter)
	if err != nil {
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}
	if !rep.Passed() {
		return clierr.Silent(core.ExitValidationFailed)
	}
	return nil
}

// requireGit fails fast when the git binary is missing, instead of
// surfacing an exec error from the first subprocess call.
func requireGit() error {
	if !git.IsInstalled() {
		return &core.RetrievalError{Msg: "git is not installed or not on PATH"}
	}
	return nil
}

// resolveDefaultBranch replaces cfg.DefaultBranch with the remote's HEAD
// branch when the configuration asks for it.
func resolveDefaultBranch(ctx context.Context, cfg *core.Config, gitc core.GitClient) error {
	if !cfg.DefaultBranchFromRemote {
		return nil
	}
	branch, err := gitc.DefaultBranch(ctx, cfg.DefaultRemote)
	if err != nil {
		return &core.ResolutionError{
			Msg: fmt.Sprintf("failed to resolve the default branch of remote %s", cfg.DefaultRemote),
			Err: err,
		}
	}
	cfg.DefaultBranch = branch
	return nil
}

// runPipeline executes one check run: snapshot the environment, pick the
// platform strategy, resolve, retrieve, validate, report.
func runPipeline(ctx context.Context, cfg core.Config, gitc core.GitClient, reporter report.Reporter) (*types.RunReport, error) {
	env := cidetect.Snapshot()
	platform := cidetect.Detect(env)

	resolver := resolvers.NewRegistry(env, cfg, gitc).For(platform)
	checker := core.NewChecker(platform, resolver, core.NewValidator(cfg), reporter)

	return checker.Run(ctx)
}
