package types

import (
	"reflect"
	"testing"
)

func TestCommit_ShortHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want string
	}{
		{"full sha", "1f9a8b2c3d4e5f60718293a4b5c6d7e8f9011223", "1f9a8b2c"},
		{"already short", "1f9a8b2", "1f9a8b2"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commit{Hash: tt.hash}
			if got := c.ShortHash(); got != tt.want {
				t.Errorf("ShortHash() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommit_SubjectAndBody(t *testing.T) {
	c := Commit{Message: "Add feature\n\nSome detail.\nSigned-off-by: A <a@b.c>"}

	if got := c.Subject(); got != "Add feature" {
		t.Errorf("Subject() = %q, want %q", got, "Add feature")
	}
	wantBody := []string{"", "Some detail.", "Signed-off-by: A <a@b.c>"}
	if got := c.Body(); !reflect.DeepEqual(got, wantBody) {
		t.Errorf("Body() = %v, want %v", got, wantBody)
	}
}

func TestCommit_Body_SubjectOnly(t *testing.T) {
	c := Commit{Message: "just a subject"}
	if got := c.Body(); got != nil {
		t.Errorf("Body() = %v, want nil", got)
	}
}

func TestCommit_IsMerge(t *testing.T) {
	tests := []struct {
		name    string
		parents int
		want    bool
	}{
		{"root commit", 0, false},
		{"normal commit", 1, false},
		{"merge commit", 2, true},
		{"octopus merge", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commit{ParentCount: tt.parents}
			if got := c.IsMerge(); got != tt.want {
				t.Errorf("IsMerge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommitRange_IsEmpty(t *testing.T) {
	r := CommitRange{Base: "abc", Target: "abc"}
	if !r.IsEmpty() {
		t.Error("expected range with base == target to be empty")
	}
	r.Target = "def"
	if r.IsEmpty() {
		t.Error("expected range with base != target to be non-empty")
	}
}

func TestCommitRange_RevSpec(t *testing.T) {
	r := CommitRange{Base: "abc", Target: "def"}
	if got := r.RevSpec(); got != "abc..def" {
		t.Errorf("RevSpec() = %q, want %q", got, "abc..def")
	}
}

func TestRunReport_Aggregation(t *testing.T) {
	pass := CheckResult{Commit: Commit{Hash: "a1"}, Status: StatusPass}
	fail := CheckResult{Commit: Commit{Hash: "b2"}, Status: StatusFail, Reasons: []string{ReasonMissingSignoff}}

	report := RunReport{Results: []CheckResult{pass, fail, pass}}
	if report.Passed() {
		t.Error("report with a failing commit should not pass")
	}
	failures := report.Failures()
	if len(failures) != 1 || failures[0].Commit.Hash != "b2" {
		t.Errorf("Failures() = %v, want the single b2 failure", failures)
	}
}

func TestRunReport_EmptyPasses(t *testing.T) {
	report := RunReport{}
	if !report.Passed() {
		t.Error("empty report should pass")
	}
	if failures := report.Failures(); len(failures) != 0 {
		t.Errorf("empty report should have no failures, got %v", failures)
	}
}
