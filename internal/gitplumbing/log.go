package git

import (
	"context"
	"fmt"
	"strings"
)

// Commit is a parsed git log entry with everything a sign-off check needs.
type Commit struct {
	Hash        string
	AuthorName  string
	AuthorEmail string
	Message     string   // raw full message: subject, blank line, body
	Parents     []string // parent hashes; 2+ means merge commit
}

// logFormat emits one record per commit: hash, author name, author email,
// parent hashes, and the raw message, NUL-separated, with a 0x1e record
// terminator. NUL cannot appear inside any of these fields.
const logFormat = "--pretty=format:%H%x00%an%x00%ae%x00%P%x00%B%x1e"

// LogOpts configures a log query.
type LogOpts struct {
	Range   string // e.g. "abc123..def456"
	Reverse bool   // oldest commit first
}

// Log returns commits matching the given options.
func (g *Git) Log(ctx context.Context, opts LogOpts) ([]Commit, error) {
	args := []string{"log", logFormat}
	if opts.Reverse {
		args = append(args, "--reverse")
	}
	if opts.Range != "" {
		args = append(args, opts.Range)
	}

	out, err := g.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return ParseLogOutput(out)
}

// ParseLogOutput parses git log output produced with logFormat: 0x1e record
// separators and NUL field delimiters. A record that does not carry all five
// fields is malformed and returns an error rather than being skipped, since
// a silently dropped commit would be reported as compliant.
func ParseLogOutput(out string) ([]Commit, error) {
	if strings.TrimSpace(out) == "" {
		return nil, nil
	}
	records := strings.Split(out, "\x1e")
	var commits []Commit
	for _, rec := range records {
		rec = strings.TrimLeft(rec, "\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}
		parts := strings.Split(rec, "\x00")
		if len(parts) != 5 {
			return nil, fmt.Errorf("malformed log record (%d fields): %.80q", len(parts), rec)
		}
		hash := strings.TrimSpace(parts[0])
		if hash == "" {
			return nil, fmt.Errorf("malformed log record: empty hash in %.80q", rec)
		}
		commits = append(commits, Commit{
			Hash:        hash,
			AuthorName:  parts[1],
			AuthorEmail: parts[2],
			Parents:     splitParents(parts[3]),
			Message:     strings.TrimRight(parts[4], "\n"),
		})
	}
	return commits, nil
}

func splitParents(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	return strings.Fields(field)
}
