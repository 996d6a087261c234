package core

import (
	"fmt"
	"strings"

	"github.com/EmundoT/git-dco/internal/types"
)

// SignoffTrailer is the trailer key the Developer Certificate of Origin
// requires on every commit. Matching is case-sensitive.
const SignoffTrailer = "Signed-off-by:"

// Signoff is a single parsed sign-off trailer.
type Signoff struct {
	Name  string
	Email string
	Raw   string
}

// Valid reports whether the sign-off carries a non-empty name and a
// plausible email.
func (s Signoff) Valid() bool {
	return s.Name != "" && s.Email != "" && strings.Contains(s.Email, "@")
}

// ExtractSignoffs returns every sign-off trailer in the message body, in
// order. The subject line never counts; trailers live in the body.
// Leading and trailing whitespace around the trailer is tolerated, the
// trailer key itself is matched case-sensitively.
func ExtractSignoffs(body []string) []Signoff {
	var signoffs []Signoff
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, SignoffTrailer) {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(trimmed, SignoffTrailer))
		signoffs = append(signoffs, ParseSignoff(value))
	}
	return signoffs
}

// ParseSignoff splits the value of a sign-off trailer ("Name <email>")
// into its parts. Without angle brackets the whole value is the name and
// Email stays empty.
func ParseSignoff(value string) Signoff {
	s := Signoff{Raw: value}

	open := strings.Index(value, "<")
	if open < 0 {
		s.Name = strings.TrimSpace(value)
		return s
	}

	s.Name = strings.TrimSpace(value[:open])
	rest := value[open+1:]
	if end := strings.Index(rest, ">"); end >= 0 {
		s.Email = strings.TrimSpace(rest[:end])
	} else {
		s.Email = strings.TrimSpace(rest)
	}
	return s
}

// Validator applies the sign-off rule to individual commits.
type Validator struct {
	checkMergeCommits bool
	excludeEmails     map[string]bool
}

// NewValidator builds a Validator from the merged configuration.
func NewValidator(cfg Config) *Validator {
	excluded := make(map[string]bool, len(cfg.ExcludeEmails))
	for _, email := range cfg.ExcludeEmails {
		excluded[email] = true
	}
	return &Validator{
		checkMergeCommits: cfg.CheckMergeCommits,
		excludeEmails:     excluded,
	}
}

// Check validates a single commit. Merge commits pass unexamined unless
// merge checking is enabled; commits from excluded author emails pass
// unexamined. Otherwise the commit passes when its body carries at least
// one well-formed sign-off. The sign-off identity does not have to match
// the commit author.
func (v *Validator) Check(commit types.Commit) types.CheckResult {
	result := types.CheckResult{Commit: commit, Status: types.StatusPass}

	if commit.IsMerge() && !v.checkMergeCommits {
		result.Reasons = append(result.Reasons, types.ReasonMergeCommit)
		return result
	}
	if v.excludeEmails[commit.AuthorEmail] {
		result.Reasons = append(result.Reasons, types.ReasonExcludedAuthor)
		return result
	}

	signoffs := ExtractSignoffs(commit.Body())
	if len(signoffs) == 0 {
		result.Status = types.StatusFail
		result.Reasons = append(result.Reasons, types.ReasonMissingSignoff)
		return result
	}

	var reasons []string
	for _, s := range signoffs {
		if s.Valid() {
			return result
		}
		reasons = append(reasons, describeInvalid(s))
	}

	result.Status = types.StatusFail
	result.Reasons = append(result.Reasons, reasons...)
	return result
}

// describeInvalid names what is wrong with a malformed sign-off.
func describeInvalid(s Signoff) string {
	switch {
	case s.Name == "":
		return fmt.Sprintf("sign-off has no name: %q", s.Raw)
	case s.Email == "":
		return fmt.Sprintf("sign-off has no email: %q", s.Raw)
	default:
		return fmt.Sprintf("invalid email: %q", s.Email)
	}
}
