package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EmundoT/git-dco/internal/clierr"
	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/tui"
)

func newSetupCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create .dco.yml interactively",
		Long: `Walks through the repository settings (default branch, default remote,
merge-commit policy, excluded author emails) and writes them to .dco.yml
at the repository root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := core.NewFileConfigStore(resolveRepoDir(cmd.Flags(), opts))
			if store.Exists() && !force {
				return clierr.Newf(core.ExitConfigError,
					"%s already exists (use --force to overwrite)", store.Path())
			}

			// Seed the form with what is already configured, so re-running
			// setup edits rather than resets.
			defaults := core.DefaultConfig()
			if fileCfg, err := store.Load(); err == nil {
				defaults.ApplyFile(fileCfg)
			}

			fileCfg, err := tui.RunSetupForm(defaults)
			if err != nil {
				return clierr.Wrap(core.ExitConfigError, "setup aborted", err)
			}

			if err := store.Save(fileCfg); err != nil {
				return clierr.Wrap(core.ExitConfigError, "failed to write config file", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing .dco.yml")

	return cmd
}
