package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/EmundoT/git-dco/internal/core"
)

// RunSetupForm collects .dco.yml settings interactively, seeded from the
// given defaults. The caller decides where (and whether) to save the
// result.
func RunSetupForm(defaults core.Config) (core.FileConfig, error) {
	branch := defaults.DefaultBranch
	remote := defaults.DefaultRemote
	checkMerges := defaults.CheckMergeCommits
	emails := strings.Join(defaults.ExcludeEmails, ", ")

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Default branch").
			Description("Commits are compared against this branch when the environment provides no range").
			Value(&branch).
			Validate(notEmpty("default branch")),
		huh.NewInput().
			Title("Default remote").
			Description("Remote used for fetches and remote HEAD lookup").
			Value(&remote).
			Validate(notEmpty("default remote")),
		huh.NewConfirm().
			Title("Check merge commits?").
			Description("When off, merge commits pass without their own sign-off").
			Value(&checkMerges),
		huh.NewInput().
			Title("Excluded author emails").
			Description("Comma-separated; commits by these authors always pass").
			Placeholder("bot@example.com, release@example.com").
			Value(&emails).
			Validate(validEmailList),
	))

	if err := form.Run(); err != nil {
		return core.FileConfig{}, err
	}

	return setupFileConfig(branch, remote, checkMerges, emails), nil
}

// setupFileConfig maps the collected answers to the file schema.
func setupFileConfig(branch, remote string, checkMerges bool, emails string) core.FileConfig {
	branch = strings.TrimSpace(branch)
	remote = strings.TrimSpace(remote)

	fc := core.FileConfig{
		DefaultBranch:     &branch,
		DefaultRemote:     &remote,
		CheckMergeCommits: &checkMerges,
	}
	if parsed := core.SplitEmails(emails); len(parsed) > 0 {
		fc.ExcludeEmails = parsed
	}
	return fc
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func validEmailList(s string) error {
	for _, email := range core.SplitEmails(s) {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%q does not look like an email address", email)
		}
	}
	return nil
}
