package types

// RangeKind distinguishes how a commit range came to be.
type RangeKind string

const (
	// RangeFeatureBranch covers commits unique to a proposed change,
	// i.e. reachable from the change tip but not from the base.
	RangeFeatureBranch RangeKind = "feature-branch"
	// RangeDefaultBranchPush covers commits pushed directly to a
	// default branch, bounded by platform-supplied before/after revisions.
	RangeDefaultBranchPush RangeKind = "default-branch-push"
)

// CommitRange identifies the commits to check. Produced once per run by
// exactly one resolver strategy and immutable thereafter.
type CommitRange struct {
	// Base is the resolved revision just before the range starts.
	// The range excludes Base itself.
	Base string `json:"base"`
	// Target is the resolved revision at the tip of the range.
	Target string    `json:"target"`
	Kind   RangeKind `json:"kind"`

	// BaseRef and TargetRef carry human-readable branch names when the
	// platform exposed them; informational only.
	BaseRef   string `json:"base_ref,omitempty"`
	TargetRef string `json:"target_ref,omitempty"`
}

// IsEmpty reports whether the range trivially contains no commits.
func (r CommitRange) IsEmpty() bool {
	return r.Base == r.Target
}

// RevSpec returns the git revision range notation base..target.
func (r CommitRange) RevSpec() string {
	return r.Base + ".." + r.Target
}
