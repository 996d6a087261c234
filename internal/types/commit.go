package types

import "strings"

// Commit holds the metadata needed to check one commit's sign-off.
// Values are produced by a retrieval call against git or a platform API
// and never mutated afterwards.
type Commit struct {
	Hash        string `json:"hash"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Message     string `json:"message"`
	ParentCount int    `json:"parent_count"`
}

// ShortHash returns the abbreviated hash used in reports.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}

// Body returns the message lines after the subject line.
func (c Commit) Body() []string {
	_, rest, found := strings.Cut(c.Message, "\n")
	if !found {
		return nil
	}
	return strings.Split(rest, "\n")
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return c.ParentCount >= 2
}
