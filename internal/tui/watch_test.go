package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EmundoT/git-dco/internal/types"
)

func watchReport(results ...types.CheckResult) *types.RunReport {
	return &types.RunReport{
		RunID:    "run-1",
		Platform: "git",
		Strategy: "git (default)",
		Range: types.CommitRange{
			Base:   "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c",
			Target: "8f14e45fceea167a5a36dedd4bea2543c6a1f0d8",
		},
		Results: results,
	}
}

func passingResult(subject string) types.CheckResult {
	return types.CheckResult{
		Commit: types.Commit{
			Hash:        "8f14e45fceea167a5a36dedd4bea2543c6a1f0d8",
			AuthorName:  "Jane Doe",
			AuthorEmail: "jane@example.com",
			Message:     subject,
			ParentCount: 1,
		},
		Status: types.StatusPass,
	}
}

func failingResult(subject string) types.CheckResult {
	return types.CheckResult{
		Commit: types.Commit{
			Hash:        "c9f0f895fb98ab9159f51fd0297e236d06bdf1c5",
			AuthorName:  "Jane Doe",
			AuthorEmail: "jane@example.com",
			Message:     subject,
			ParentCount: 1,
		},
		Status:  types.StatusFail,
		Reasons: []string{types.ReasonMissingSignoff},
	}
}

func TestWatchModel_Init_RunsFirstCheck(t *testing.T) {
	rep := watchReport(passingResult("Add feature"))
	m := watchModel{
		check:    func() (*types.RunReport, error) { return rep, nil },
		checking: true,
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return the first check command")
	}

	msg, ok := cmd().(checkDoneMsg)
	if !ok {
		t.Fatalf("Expected checkDoneMsg, got %T", cmd())
	}
	if msg.report != rep {
		t.Error("Expected the check report to be carried in the message")
	}
	if msg.err != nil {
		t.Errorf("Expected no error, got %v", msg.err)
	}
}

func TestWatchModel_Update_HeadMoved(t *testing.T) {
	m := watchModel{check: func() (*types.RunReport, error) { return nil, nil }}

	updated, cmd := m.Update(headMovedMsg{})
	model := updated.(watchModel)

	if !model.checking {
		t.Error("Expected checking to be true after HEAD moved")
	}
	if cmd == nil {
		t.Error("Expected a check command after HEAD moved")
	}
}

func TestWatchModel_Update_HeadMovedWhileChecking(t *testing.T) {
	m := watchModel{checking: true}

	updated, cmd := m.Update(headMovedMsg{})
	model := updated.(watchModel)

	if !model.pending {
		t.Error("Expected a pending re-check to be queued")
	}
	if cmd != nil {
		t.Error("Expected no new command while a check is running")
	}
}

func TestWatchModel_Update_CheckDone(t *testing.T) {
	rep := watchReport(passingResult("Add feature"))
	m := watchModel{checking: true, runs: 2}

	updated, cmd := m.Update(checkDoneMsg{report: rep, at: time.Now()})
	model := updated.(watchModel)

	if model.checking {
		t.Error("Expected checking to be false after the check finished")
	}
	if model.runs != 3 {
		t.Errorf("Expected run count 3, got %d", model.runs)
	}
	if model.report != rep {
		t.Error("Expected the report to be stored")
	}
	if cmd != nil {
		t.Error("Expected no follow-up command without a pending re-check")
	}
}

func TestWatchModel_Update_CheckDoneError_KeepsLastReport(t *testing.T) {
	rep := watchReport(passingResult("Add feature"))
	m := watchModel{checking: true, report: rep, runs: 1}

	updated, _ := m.Update(checkDoneMsg{err: errors.New("no fork point"), at: time.Now()})
	model := updated.(watchModel)

	if model.report != rep {
		t.Error("Expected the previous report to survive a failed run")
	}
	if model.err == nil {
		t.Error("Expected the run error to be stored")
	}
}

func TestWatchModel_Update_CheckDonePendingRerun(t *testing.T) {
	m := watchModel{
		check:    func() (*types.RunReport, error) { return nil, nil },
		checking: true,
		pending:  true,
	}

	updated, cmd := m.Update(checkDoneMsg{at: time.Now()})
	model := updated.(watchModel)

	if !model.checking {
		t.Error("Expected the queued re-check to start immediately")
	}
	if model.pending {
		t.Error("Expected the pending flag to be cleared")
	}
	if cmd == nil {
		t.Error("Expected a check command for the queued re-check")
	}
}

func TestWatchModel_Update_Quit(t *testing.T) {
	m := watchModel{}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model := updated.(watchModel)

	if !model.quitting {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestWatchModel_Update_CtrlC(t *testing.T) {
	m := watchModel{}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := updated.(watchModel)

	if !model.quitting {
		t.Error("Expected quitting after ctrl+c")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestWatchModel_Update_WatchFailed(t *testing.T) {
	watchErr := errors.New("watcher broke")
	m := watchModel{}

	updated, cmd := m.Update(watchFailedMsg{err: watchErr})
	model := updated.(watchModel)

	if model.watchErr != watchErr {
		t.Errorf("Expected watch error to be stored, got %v", model.watchErr)
	}
	if cmd == nil {
		t.Error("Expected a quit command after a watcher failure")
	}
}

func TestWatchModel_View_Checking(t *testing.T) {
	m := watchModel{checking: true}

	if !strings.Contains(m.View(), "checking...") {
		t.Errorf("Expected checking indicator, got %q", m.View())
	}
}

func TestWatchModel_View_AllGood(t *testing.T) {
	m := watchModel{
		report:  watchReport(passingResult("Add feature")),
		lastRun: time.Now(),
		runs:    1,
	}

	view := m.View()
	if !strings.Contains(view, "All good!") {
		t.Errorf("Expected passing summary, got %q", view)
	}
	if !strings.Contains(view, "run #1") {
		t.Errorf("Expected run counter, got %q", view)
	}
}

func TestWatchModel_View_Failures(t *testing.T) {
	m := watchModel{
		report: watchReport(
			passingResult("Add feature"),
			failingResult("Fix bug"),
		),
		lastRun: time.Now(),
		runs:    2,
	}

	view := m.View()
	if !strings.Contains(view, "1 of 2 commits missing a sign-off") {
		t.Errorf("Expected failure summary, got %q", view)
	}
	if !strings.Contains(view, "c9f0f895 Fix bug") {
		t.Errorf("Expected failing commit line, got %q", view)
	}
}

func TestWatchModel_View_EmptyRange(t *testing.T) {
	rep := watchReport()
	rep.Range.Target = rep.Range.Base
	m := watchModel{report: rep, lastRun: time.Now(), runs: 1}

	if !strings.Contains(m.View(), "no commits to check") {
		t.Errorf("Expected empty-range summary, got %q", m.View())
	}
}

func TestWatchModel_View_CheckError(t *testing.T) {
	m := watchModel{err: errors.New("no fork point"), lastRun: time.Now(), runs: 1}

	if !strings.Contains(m.View(), "check failed: no fork point") {
		t.Errorf("Expected check failure line, got %q", m.View())
	}
}

func TestWatchModel_View_Quitting(t *testing.T) {
	m := watchModel{quitting: true}

	if m.View() != "" {
		t.Errorf("Expected empty view when quitting, got %q", m.View())
	}
}

func TestRunWatchPlain(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, ".git", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("Failed to create log dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(logDir, "HEAD"), []byte("ref\n"), 0o644); err != nil {
		t.Fatalf("Failed to create HEAD log: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := watchReport(passingResult("Add feature"))
	calls := 0
	check := func(context.Context) (*types.RunReport, error) {
		calls++
		return rep, nil
	}

	last, err := RunWatchPlain(ctx, dir, check)
	if err != nil {
		t.Fatalf("RunWatchPlain failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected exactly one check before shutdown, got %d", calls)
	}
	if last != rep {
		t.Error("Expected the last completed report to be returned")
	}
}

func TestRunWatchPlain_CheckErrorKeepsNoReport(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, ".git", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("Failed to create log dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(logDir, "HEAD"), []byte("ref\n"), 0o644); err != nil {
		t.Fatalf("Failed to create HEAD log: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	check := func(context.Context) (*types.RunReport, error) {
		return nil, errors.New("resolution failed")
	}

	last, err := RunWatchPlain(ctx, dir, check)
	if err != nil {
		t.Fatalf("RunWatchPlain failed: %v", err)
	}
	if last != nil {
		t.Error("Expected no report when every check failed")
	}
}

func TestRunWatchPlain_MissingHeadLog(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	check := func(context.Context) (*types.RunReport, error) {
		return watchReport(), nil
	}

	_, err := RunWatchPlain(ctx, t.TempDir(), check)
	if err == nil {
		t.Error("Expected an error for a directory without a HEAD log")
	}
}
