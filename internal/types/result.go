package types

// CheckStatus is the per-commit verdict.
type CheckStatus string

const (
	StatusPass CheckStatus = "pass"
	StatusFail CheckStatus = "fail"
)

// Reason strings attached to check results. Failure reasons explain what
// was wrong; pass reasons explain why a commit was not actually checked.
const (
	ReasonMissingSignoff = "no sign-off found"
	ReasonMergeCommit    = "merge commit (not checked)"
	ReasonExcludedAuthor = "author email excluded"
)

// CheckResult is one commit's verdict.
type CheckResult struct {
	Commit  Commit      `json:"commit"`
	Status  CheckStatus `json:"status"`
	Reasons []string    `json:"reasons,omitempty"`
}

// Passed reports whether the commit passed validation.
func (r CheckResult) Passed() bool {
	return r.Status == StatusPass
}

// Skipped reports whether the commit passed without its message being
// examined (merge commit exclusion, excluded author).
func (r CheckResult) Skipped() bool {
	if r.Status != StatusPass {
		return false
	}
	for _, reason := range r.Reasons {
		if reason == ReasonMergeCommit || reason == ReasonExcludedAuthor {
			return true
		}
	}
	return false
}

// RunReport aggregates everything one run produced, in check order.
type RunReport struct {
	RunID    string        `json:"run_id"`
	Platform string        `json:"platform"`
	Strategy string        `json:"strategy"`
	Range    CommitRange   `json:"range"`
	Results  []CheckResult `json:"commits"`
}

// Failures returns the results for commits that failed validation,
// preserving range order.
func (r *RunReport) Failures() []CheckResult {
	var failed []CheckResult
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Checked returns how many commit messages were actually examined,
// leaving out skipped commits.
func (r *RunReport) Checked() int {
	n := 0
	for _, res := range r.Results {
		if !res.Skipped() {
			n++
		}
	}
	return n
}

// Passed reports whether every checked commit passed. An empty result
// list counts as a pass.
func (r *RunReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}
