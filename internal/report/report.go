// Package report renders check runs for people and machines. The Checker
// never prints; everything user-visible flows through a Reporter picked
// once at startup.
package report

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/EmundoT/git-dco/internal/core"
)

// Reporter extends the check-progress interface with fatal error
// rendering, so resolution and retrieval failures reach the user in the
// selected output format.
type Reporter interface {
	core.Reporter

	// Error renders a fatal stage error, including its remediation hint.
	Error(err error)
}

// New picks the reporter for the run configuration. out receives reports,
// errOut receives console error messages.
func New(out, errOut io.Writer, cfg core.Config, styled bool) Reporter {
	if cfg.JSON {
		return NewJSONReporter(out)
	}
	return NewConsoleReporter(out, errOut, cfg, styled)
}

// StylingEnabled reports whether styled output should be used for f.
// Styling requires a terminal and respects NO_COLOR.
func StylingEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
