package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// decodedResponse mirrors Response with a raw data field so tests can
// decode the payload into the shape they assert on.
type decodedResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorDetail    `json:"error"`
}

type decodedRun struct {
	RunID    string `json:"run_id"`
	Platform string `json:"platform"`
	Strategy string `json:"strategy"`
	Range    struct {
		Base   string `json:"base"`
		Target string `json:"target"`
		Kind   string `json:"kind"`
	} `json:"range"`
	Commits []struct {
		Commit struct {
			Hash string `json:"hash"`
		} `json:"commit"`
		Status  string   `json:"status"`
		Reasons []string `json:"reasons"`
	} `json:"commits"`
	Summary struct {
		Total   int `json:"total"`
		Checked int `json:"checked"`
		Passed  int `json:"passed"`
		Failed  int `json:"failed"`
	} `json:"summary"`
}

func decodeEnvelope(t *testing.T, buf *bytes.Buffer) decodedResponse {
	t.Helper()
	var resp decodedResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	return resp
}

func decodeRun(t *testing.T, resp decodedResponse) decodedRun {
	t.Helper()
	var run decodedRun
	if err := json.Unmarshal(resp.Data, &run); err != nil {
		t.Fatalf("Failed to parse data payload: %v", err)
	}
	return run
}

func TestJSONReporter_Report_Success(t *testing.T) {
	buf := &bytes.Buffer{}
	j := NewJSONReporter(buf)

	rep := testReport(
		signedResult(conPass, "Add feature"),
		mergeResult(conFail, "Merge branch 'feature'"),
	)
	if err := j.Report(rep); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	resp := decodeEnvelope(t, buf)
	if !resp.Success {
		t.Error("Expected success true for a passing run")
	}
	if resp.Error != nil {
		t.Errorf("Expected no error object, got %+v", resp.Error)
	}

	run := decodeRun(t, resp)
	if run.RunID != "run-1" {
		t.Errorf("Expected run_id 'run-1', got '%s'", run.RunID)
	}
	if run.Platform != "gitlab" {
		t.Errorf("Expected platform 'gitlab', got '%s'", run.Platform)
	}
	if run.Range.Base != conBase {
		t.Errorf("Expected range base '%s', got '%s'", conBase, run.Range.Base)
	}
	if len(run.Commits) != 2 {
		t.Fatalf("Expected 2 commits, got %d", len(run.Commits))
	}
	if run.Commits[0].Commit.Hash != conPass {
		t.Errorf("Expected first commit hash '%s', got '%s'", conPass, run.Commits[0].Commit.Hash)
	}
	if run.Summary.Total != 2 {
		t.Errorf("Expected summary total 2, got %d", run.Summary.Total)
	}
	if run.Summary.Checked != 1 {
		t.Errorf("Expected summary checked 1, got %d", run.Summary.Checked)
	}
	if run.Summary.Passed != 2 {
		t.Errorf("Expected summary passed 2, got %d", run.Summary.Passed)
	}
	if run.Summary.Failed != 0 {
		t.Errorf("Expected summary failed 0, got %d", run.Summary.Failed)
	}
}

func TestJSONReporter_Report_Failure(t *testing.T) {
	buf := &bytes.Buffer{}
	j := NewJSONReporter(buf)

	rep := testReport(
		signedResult(conPass, "Add feature"),
		unsignedResult(conFail, "Fix bug"),
	)
	if err := j.Report(rep); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	resp := decodeEnvelope(t, buf)
	if resp.Success {
		t.Error("Expected success false for a failing run")
	}

	run := decodeRun(t, resp)
	if run.Summary.Failed != 1 {
		t.Errorf("Expected summary failed 1, got %d", run.Summary.Failed)
	}
	if run.Commits[1].Status != "fail" {
		t.Errorf("Expected second commit status 'fail', got '%s'", run.Commits[1].Status)
	}
	if len(run.Commits[1].Reasons) != 1 || run.Commits[1].Reasons[0] != types.ReasonMissingSignoff {
		t.Errorf("Expected failure reason %q, got %v", types.ReasonMissingSignoff, run.Commits[1].Reasons)
	}
}

func TestJSONReporter_Report_EmptyRange(t *testing.T) {
	buf := &bytes.Buffer{}
	j := NewJSONReporter(buf)

	rep := &types.RunReport{
		RunID:    "run-1",
		Platform: "github",
		Strategy: "github",
		Range:    types.CommitRange{Base: conBase, Target: conBase},
	}
	if err := j.Report(rep); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	resp := decodeEnvelope(t, buf)
	if !resp.Success {
		t.Error("Expected success true for an empty range")
	}

	run := decodeRun(t, resp)
	if run.Summary.Total != 0 {
		t.Errorf("Expected summary total 0, got %d", run.Summary.Total)
	}
}

func TestJSONReporter_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	j := NewJSONReporter(buf)

	j.Error(&core.ResolutionError{
		Msg:  "required environment variable CI_COMMIT_SHA is not set",
		Hint: "Check the pipeline configuration.",
	})

	resp := decodeEnvelope(t, buf)
	if resp.Success {
		t.Error("Expected success false on a fatal error")
	}
	if resp.Error == nil {
		t.Fatal("Expected error object to be present")
	}
	if resp.Error.Code != core.ErrCodeResolutionError {
		t.Errorf("Expected error code '%s', got '%s'", core.ErrCodeResolutionError, resp.Error.Code)
	}
	if resp.Error.Message != "required environment variable CI_COMMIT_SHA is not set" {
		t.Errorf("Unexpected error message '%s'", resp.Error.Message)
	}
	if resp.Error.Hint != "Check the pipeline configuration." {
		t.Errorf("Unexpected error hint '%s'", resp.Error.Hint)
	}
}

func TestJSONReporter_Error_InternalCode(t *testing.T) {
	buf := &bytes.Buffer{}
	j := NewJSONReporter(buf)

	j.Error(bytes.ErrTooLarge)

	resp := decodeEnvelope(t, buf)
	if resp.Error == nil {
		t.Fatal("Expected error object to be present")
	}
	if resp.Error.Code != core.ErrCodeInternalError {
		t.Errorf("Expected error code '%s', got '%s'", core.ErrCodeInternalError, resp.Error.Code)
	}
	if resp.Error.Hint != "" {
		t.Errorf("Expected no hint, got '%s'", resp.Error.Hint)
	}
}

func TestJSONReporter_ProgressMethodsSilent(t *testing.T) {
	buf := &bytes.Buffer{}
	j := NewJSONReporter(buf)

	j.Detected("gitlab")
	j.CheckingRange(types.CommitRange{Base: conBase, Target: conPass})
	j.NoCommits()

	if buf.Len() != 0 {
		t.Errorf("Expected progress callbacks to emit nothing, got %q", buf.String())
	}
}
