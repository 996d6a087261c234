package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

var (
	stylePass = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ConsoleReporter renders human-readable output.
//
// Normal mode: strategy line, range line, one line per commit with its
// reasons, then the summary block. Quiet suppresses everything except the
// failure block. Verbose replaces the compact commit lines with full
// per-commit details.
type ConsoleReporter struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	verbose bool
	styled  bool
}

// NewConsoleReporter creates a console reporter. out receives reports,
// errOut receives fatal errors.
func NewConsoleReporter(out, errOut io.Writer, cfg core.Config, styled bool) *ConsoleReporter {
	return &ConsoleReporter{
		out:     out,
		errOut:  errOut,
		quiet:   cfg.Quiet,
		verbose: cfg.Verbose,
		styled:  styled,
	}
}

// render applies a style only when styling is on.
func (c *ConsoleReporter) render(style lipgloss.Style, s string) string {
	if !c.styled {
		return s
	}
	return style.Render(s)
}

// Detected announces the selected strategy.
func (c *ConsoleReporter) Detected(name string) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, "Detected: %s\n", name)
}

// CheckingRange announces the resolved range. Verbose mode adds the range
// kind and the branch refs it was resolved from.
func (c *ConsoleReporter) CheckingRange(rng types.CommitRange) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, "\nChecking commits: %s\n", rng.RevSpec())
	if c.verbose {
		fmt.Fprintf(c.out, "\trange kind: %s\n", rng.Kind)
		if rng.BaseRef != "" {
			fmt.Fprintf(c.out, "\tbase ref: %s\n", rng.BaseRef)
		}
		if rng.TargetRef != "" {
			fmt.Fprintf(c.out, "\ttarget ref: %s\n", rng.TargetRef)
		}
	}
	fmt.Fprintln(c.out)
}

// NoCommits announces a trivially empty range.
func (c *ConsoleReporter) NoCommits() {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.out, "\nNo commits to check")
}

// Report renders the commit list and the summary block.
func (c *ConsoleReporter) Report(rep *types.RunReport) error {
	if rep.Range.IsEmpty() {
		return nil
	}

	if !c.quiet {
		for _, res := range rep.Results {
			if c.verbose {
				c.printCommitVerbose(res)
			} else {
				c.printCommit(res)
			}
		}
		fmt.Fprintln(c.out)
	}

	if failures := rep.Failures(); len(failures) > 0 {
		fmt.Fprintln(c.out, c.render(styleFail, "Missing sign-off(s):"))
		fmt.Fprintln(c.out)
		for _, res := range failures {
			fmt.Fprintf(c.out, "\t%s\n", res.Commit.Hash)
			for _, reason := range res.Reasons {
				fmt.Fprintf(c.out, "\t\t%s\n", reason)
			}
		}
	} else if !c.quiet {
		fmt.Fprintln(c.out, c.render(stylePass, "All good!"))
	}

	if !c.quiet && rep.Checked() == 0 {
		fmt.Fprintln(c.out, c.render(styleWarn, "Warning: no commits were actually checked"))
	}

	return nil
}

// printCommit writes the compact one-line verdict plus indented reasons.
func (c *ConsoleReporter) printCommit(res types.CheckResult) {
	marker := c.render(stylePass, "✓")
	switch {
	case res.Skipped():
		marker = c.render(styleDim, "-")
	case !res.Passed():
		marker = c.render(styleFail, "✗")
	}

	fmt.Fprintf(c.out, "  %s %s %s\n", marker, res.Commit.ShortHash(), res.Commit.Subject())
	for _, reason := range res.Reasons {
		fmt.Fprintf(c.out, "      %s\n", c.render(styleDim, reason))
	}
}

// printCommitVerbose writes full per-commit details: hash, author,
// subject, the sign-offs that were found, and the verdict.
func (c *ConsoleReporter) printCommitVerbose(res types.CheckResult) {
	commit := res.Commit

	suffix := ""
	if commit.IsMerge() {
		suffix = " (merge commit)"
	}
	fmt.Fprintf(c.out, "\t%s%s\n", commit.Hash, suffix)
	fmt.Fprintf(c.out, "\t%s <%s>\n", commit.AuthorName, commit.AuthorEmail)
	fmt.Fprintf(c.out, "\t%s\n", commit.Subject())

	for _, signoff := range core.ExtractSignoffs(commit.Body()) {
		fmt.Fprintf(c.out, "\t\tfound sign-off: %s <%s>\n", signoff.Name, signoff.Email)
	}

	verdict := c.render(stylePass, "pass")
	if !res.Passed() {
		verdict = c.render(styleFail, "fail")
	}
	if len(res.Reasons) > 0 {
		verdict += ": " + strings.Join(res.Reasons, "; ")
	}
	fmt.Fprintf(c.out, "\t\t%s\n\n", verdict)
}

// Error renders a fatal stage error and its remediation hint.
func (c *ConsoleReporter) Error(err error) {
	fmt.Fprintln(c.errOut, c.render(styleFail, fmt.Sprintf("Error: %v", err)))
	if hint := core.HintForError(err); hint != "" {
		fmt.Fprintf(c.errOut, "\n%s\n", hint)
	}
}
