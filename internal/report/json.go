package report

import (
	"encoding/json"
	"io"

	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

// Response is the structured JSON envelope for machine consumers.
//
// Schema:
//
//	{
//	  "success": true|false,
//	  "data": { ... },          // the run report (omitted on fatal error)
//	  "error": {                // present only on fatal error
//	    "code": "RESOLUTION_ERROR",
//	    "message": "human-readable description",
//	    "hint": "optional remediation"
//	  }
//	}
//
// success reflects the aggregate verdict: false both for fatal errors and
// for completed runs with failing commits; the exit code distinguishes
// the two.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries a machine-readable error code and a human-readable
// message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// runPayload is the report plus a computed summary, so consumers do not
// have to count results themselves.
type runPayload struct {
	*types.RunReport
	Summary runSummary `json:"summary"`
}

type runSummary struct {
	Total   int `json:"total"`
	Checked int `json:"checked"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
}

func newRunPayload(rep *types.RunReport) runPayload {
	failed := len(rep.Failures())
	return runPayload{
		RunReport: rep,
		Summary: runSummary{
			Total:   len(rep.Results),
			Checked: rep.Checked(),
			Passed:  len(rep.Results) - failed,
			Failed:  failed,
		},
	}
}

// JSONReporter emits exactly one envelope per run on its writer. Progress
// callbacks are no-ops; everything lands in the final report, including
// the empty-range case.
type JSONReporter struct {
	out io.Writer
}

// NewJSONReporter creates a JSON reporter writing to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

// Detected implements core.Reporter.
func (j *JSONReporter) Detected(string) {}

// CheckingRange implements core.Reporter.
func (j *JSONReporter) CheckingRange(types.CommitRange) {}

// NoCommits implements core.Reporter.
func (j *JSONReporter) NoCommits() {}

// Report writes the envelope for a completed run.
func (j *JSONReporter) Report(rep *types.RunReport) error {
	return j.write(Response{
		Success: rep.Passed(),
		Data:    newRunPayload(rep),
	})
}

// Error writes the envelope for a fatal stage error.
func (j *JSONReporter) Error(err error) {
	_ = j.write(Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    core.ErrorCodeForError(err),
			Message: err.Error(),
			Hint:    core.HintForError(err),
		},
	})
}

func (j *JSONReporter) write(resp Response) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
