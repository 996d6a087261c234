package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of reflog writes a single git
// operation produces into one re-check.
const debounceDelay = 1 * time.Second

// HeadLogPath returns the reflog file that changes whenever HEAD moves.
func HeadLogPath(repoDir string) string {
	return filepath.Join(repoDir, ".git", "logs", "HEAD")
}

// WatchHead invokes onChange, debounced, every time the repository HEAD
// moves (commit, amend, rebase, checkout). It blocks until ctx is
// cancelled, returning nil, or until the watcher fails.
func WatchHead(ctx context.Context, repoDir string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	logPath := HeadLogPath(repoDir)
	if _, err := os.Stat(logPath); err != nil {
		return fmt.Errorf("cannot watch %s: %w", logPath, err)
	}

	if err := watcher.Add(logPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", logPath, err)
	}

	// Also watch the directory: git replaces the log file during gc
	// and some rebase operations.
	logDir := filepath.Dir(logPath)
	if err := watcher.Add(logDir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", logDir, err)
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Name != logPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each event
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		}
	}
}
