// Package tui renders the live watch view. Styling stays inside this
// package and internal/report; everything else prints plain text.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EmundoT/git-dco/internal/core"
	"github.com/EmundoT/git-dco/internal/types"
)

var (
	watchStyleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	watchStylePass  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	watchStyleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	watchStyleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// CheckFunc runs one complete sign-off check and returns its report.
// Implementations decide where (or whether) the run is printed; the live
// view renders from the returned report alone.
type CheckFunc func(ctx context.Context) (*types.RunReport, error)

// ========================================
// Bubbletea Messages
// ========================================

// headMovedMsg signals that the repository HEAD changed.
type headMovedMsg struct{}

// checkDoneMsg carries the outcome of one check run.
type checkDoneMsg struct {
	report *types.RunReport
	err    error
	at     time.Time
}

// watchFailedMsg signals that the filesystem watcher broke.
type watchFailedMsg struct {
	err error
}

// ========================================
// Bubbletea Watch Model
// ========================================

// watchModel is a bubbletea model showing the latest check outcome and
// re-running the check whenever HEAD moves.
type watchModel struct {
	check    func() (*types.RunReport, error)
	checking bool
	pending  bool
	report   *types.RunReport
	err      error
	lastRun  time.Time
	runs     int
	watchErr error
	quitting bool
	width    int
}

func (m watchModel) Init() tea.Cmd {
	return m.runCheck()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case headMovedMsg:
		if m.checking {
			// A check is already running; queue one more for when it
			// finishes.
			m.pending = true
			return m, nil
		}
		m.checking = true
		return m, m.runCheck()

	case checkDoneMsg:
		m.checking = false
		m.runs++
		m.err = msg.err
		m.lastRun = msg.at
		// A failed run keeps the previous report; the exit code reflects
		// the last completed check.
		if msg.err == nil {
			m.report = msg.report
		}
		if m.pending {
			m.pending = false
			m.checking = true
			return m, m.runCheck()
		}

	case watchFailedMsg:
		m.watchErr = msg.err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m watchModel) runCheck() tea.Cmd {
	check := m.check
	return func() tea.Msg {
		rep, err := check()
		return checkDoneMsg{report: rep, err: err, at: time.Now()}
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(watchStyleTitle.Render("Watching for new commits"))
	b.WriteString(watchStyleDim.Render("  (q to quit)"))
	b.WriteString("\n\n")

	if m.checking {
		b.WriteString("  " + watchStyleDim.Render("checking...") + "\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString("  " + watchStyleFail.Render(fmt.Sprintf("✗ check failed: %v", m.err)) + "\n")
		return b.String()
	}

	if m.report != nil {
		b.WriteString(fmt.Sprintf("  %s  run #%d\n", watchStyleDim.Render(m.lastRun.Format("15:04:05")), m.runs))
		b.WriteString(renderOutcome(m.report))
	}

	return b.String()
}

// renderOutcome summarizes one report for the live view.
func renderOutcome(rep *types.RunReport) string {
	if rep.Range.IsEmpty() {
		return "  " + watchStyleDim.Render("no commits to check") + "\n"
	}

	failures := rep.Failures()
	if len(failures) == 0 {
		line := watchStylePass.Render("✓ All good!")
		line += watchStyleDim.Render(fmt.Sprintf("  %d commits", len(rep.Results)))
		return "  " + line + "\n"
	}

	var b strings.Builder
	summary := fmt.Sprintf("✗ %d of %d commits missing a sign-off", len(failures), len(rep.Results))
	b.WriteString("  " + watchStyleFail.Render(summary) + "\n")
	for _, res := range failures {
		b.WriteString(fmt.Sprintf("      %s %s\n", res.Commit.ShortHash(), res.Commit.Subject()))
	}
	return b.String()
}

// ========================================
// Live Watch Runner
// ========================================

// RunWatch drives the live view until the user quits or the watcher
// fails. It returns the report of the last completed check, nil when no
// check ever completed.
func RunWatch(ctx context.Context, repoDir string, check CheckFunc) (*types.RunReport, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := watchModel{
		check:    func() (*types.RunReport, error) { return check(watchCtx) },
		checking: true,
		width:    80,
	}

	p := tea.NewProgram(m)

	go func() {
		err := core.WatchHead(watchCtx, repoDir, func() {
			p.Send(headMovedMsg{})
		})
		if err != nil {
			p.Send(watchFailedMsg{err: err})
		}
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := final.(watchModel)
	if !ok {
		return nil, nil
	}
	return fm.report, fm.watchErr
}

// ========================================
// Plain Watch (Non-TTY)
// ========================================

// RunWatchPlain re-runs the check whenever HEAD moves, leaving all
// printing to the check itself. It blocks until ctx is cancelled or the
// watcher fails and returns the last completed report.
func RunWatchPlain(ctx context.Context, repoDir string, check CheckFunc) (*types.RunReport, error) {
	// The mutex serializes whole runs: a debounce firing during a slow
	// check must not interleave its output.
	var mu sync.Mutex
	var last *types.RunReport

	record := func() {
		mu.Lock()
		defer mu.Unlock()
		rep, err := check(ctx)
		if err == nil && rep != nil {
			last = rep
		}
	}

	record()
	err := core.WatchHead(ctx, repoDir, record)

	mu.Lock()
	defer mu.Unlock()
	return last, err
}
