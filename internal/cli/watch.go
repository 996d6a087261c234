package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/EmundoT/git-dco/internal/clierr"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/report"
	"github.com/EmundoT/git-dco/internal/tui"
	"github.com/EmundoT/git-dco/internal/types"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the check whenever HEAD moves",
		Long: `Watches the repository reflog and re-runs the sign-off check after
every commit, amend, rebase, or checkout. Intended as a local helper while
preparing a change.

On a terminal this runs a live status view; --plain (or a non-terminal
stdout, or --json) prints one full report per run instead. The exit code
reflects the last completed check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print sequential reports instead of the live view")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *rootOptions, plain bool) error {
	cfg, err := buildConfig(cmd.Flags(), opts)
	if err != nil {
		reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(),
			core.Config{JSON: opts.jsonOut}, false)
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}

	// SIGINT ends the watch, not the process: the last completed check
	// still decides the exit code.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gitc := core.NewSystemGitClient(cfg.RepoDir, cfg.Verbose)
	if err := requireGit(); err != nil {
		reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, false)
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}
	if err := resolveDefaultBranch(ctx, &cfg, gitc); err != nil {
		reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, false)
		reporter.Error(err)
		return clierr.Silent(clierr.ExitCodeOf(err))
	}

	live := !plain && !cfg.JSON && isatty.IsTerminal(os.Stdout.Fd())

	var last *types.RunReport
	if live {
		last, err = watchLive(ctx, cfg, gitc)
	} else {
		last, err = watchPlain(ctx, cmd, cfg, gitc)
	}
	if err != nil {
		return clierr.Wrap(core.ExitRetrievalError, "watch failed", err)
	}
	if last != nil && !last.Passed() {
		return clierr.Silent(core.ExitValidationFailed)
	}
	return nil
}

// watchLive renders runs in the live view; per-run output stays off the
// terminal so the view owns the screen.
func watchLive(ctx context.Context, cfg core.Config, gitc core.GitClient) (*types.RunReport, error) {
	silent := report.New(io.Discard, io.Discard, cfg, false)
	return tui.RunWatch(ctx, cfg.RepoDir, func(ctx context.Context) (*types.RunReport, error) {
		return runPipeline(ctx, cfg, gitc, silent)
	})
}

// watchPlain prints one full report per run, separated by a marker line.
func watchPlain(ctx context.Context, cmd *cobra.Command, cfg core.Config, gitc core.GitClient) (*types.RunReport, error) {
	reporter := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, report.StylingEnabled(os.Stdout))

	first := true
	return tui.RunWatchPlain(ctx, cfg.RepoDir, func(ctx context.Context) (*types.RunReport, error) {
		if !first && !cfg.JSON {
			fmt.Fprintln(cmd.OutOrStdout(), "\n---")
		}
		first = false

		rep, err := runPipeline(ctx, cfg, gitc, reporter)
		if err != nil {
			reporter.Error(err)
		}
		return rep, err
	})
}
