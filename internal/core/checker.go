package core

import (
	"context"

	"github.com/google/uuid"

	"github.com/EmundoT/git-dco/internal/cidetect"
	"github.com/EmundoT/git-dco/internal/types"
)

// RangeResolver is a platform strategy: it resolves which commit range to
// check and retrieves the commits inside it.
type RangeResolver interface {
	// Name returns the human-readable strategy name for reports.
	Name() string

	// Resolve determines the commit range for this run.
	Resolve(ctx context.Context) (types.CommitRange, error)

	// Commits retrieves the commits of a resolved range, oldest first.
	Commits(ctx context.Context, rng types.CommitRange) ([]types.Commit, error)
}

// Reporter receives check progress and the final report. Implementations
// own all presentation; the Checker never prints.
type Reporter interface {
	// Detected announces the platform strategy picked for this run.
	Detected(name string)

	// CheckingRange announces the resolved commit range.
	CheckingRange(rng types.CommitRange)

	// NoCommits announces an empty range (base equals target).
	NoCommits()

	// Report renders the final result.
	Report(rep *types.RunReport) error
}

// Checker runs one complete sign-off check: resolve the range, retrieve
// its commits, validate each one, report.
type Checker struct {
	platform  cidetect.Platform
	resolver  RangeResolver
	validator *Validator
	reporter  Reporter
}

// NewChecker wires a Checker from its collaborators.
func NewChecker(platform cidetect.Platform, resolver RangeResolver, validator *Validator, reporter Reporter) *Checker {
	return &Checker{
		platform:  platform,
		resolver:  resolver,
		validator: validator,
		reporter:  reporter,
	}
}

// Run executes the check. Resolution and retrieval failures return a nil
// report and an error carrying the stage exit code. Commit failures are
// data, not errors: the report is returned with a nil error and the
// caller maps rep.Passed() to the process exit code.
func (c *Checker) Run(ctx context.Context) (*types.RunReport, error) {
	c.reporter.Detected(c.resolver.Name())

	rng, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	rep := &types.RunReport{
		RunID:    uuid.NewString(),
		Platform: string(c.platform),
		Strategy: c.resolver.Name(),
		Range:    rng,
	}

	if rng.IsEmpty() {
		c.reporter.NoCommits()
		return rep, c.reporter.Report(rep)
	}

	c.reporter.CheckingRange(rng)

	commits, err := c.resolver.Commits(ctx, rng)
	if err != nil {
		return nil, err
	}

	for _, commit := range commits {
		rep.Results = append(rep.Results, c.validator.Check(commit))
	}

	if err := c.reporter.Report(rep); err != nil {
		return rep, err
	}

	return rep, nil
}
