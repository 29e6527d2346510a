package model

import "time"

// Action is the intermediate unit produced by the event→action mapping
// stage. One event yields at most one action under the current tables.
type Action struct {
	Name      string    `json:"name"`
	Actor     string    `json:"actor"`
	Repo      string    `json:"repo"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityKind is a semantic behavior category derived from actions.
type ActivityKind string

// The closed taxonomy of activity kinds the action→activity table maps onto.
// The feature schema is derived from this list, so the order is fixed.
const (
	OpeningIssue          ActivityKind = "opening_issue"
	ClosingIssue          ActivityKind = "closing_issue"
	CommentingIssue       ActivityKind = "commenting_issue"
	OpeningPullRequest    ActivityKind = "opening_pull_request"
	ClosingPullRequest    ActivityKind = "closing_pull_request"
	MergingPullRequest    ActivityKind = "merging_pull_request"
	CommentingPullRequest ActivityKind = "commenting_pull_request"
	ReviewingPullRequest  ActivityKind = "reviewing_pull_request"
	PushingCommits        ActivityKind = "pushing_commits"
	CreatingBranch        ActivityKind = "creating_branch"
	CreatingTag           ActivityKind = "creating_tag"
	DeletingBranch        ActivityKind = "deleting_branch"
	ForkingRepository     ActivityKind = "forking_repository"
	StarringRepository    ActivityKind = "starring_repository"
	PublishingRelease     ActivityKind = "publishing_release"
)

// AllActivityKinds lists every kind in schema order.
// This is the single source of truth for the taxonomy.
var AllActivityKinds = []ActivityKind{
	OpeningIssue,
	ClosingIssue,
	CommentingIssue,
	OpeningPullRequest,
	ClosingPullRequest,
	MergingPullRequest,
	CommentingPullRequest,
	ReviewingPullRequest,
	PushingCommits,
	CreatingBranch,
	CreatingTag,
	DeletingBranch,
	ForkingRepository,
	StarringRepository,
	PublishingRelease,
}

// Activity is one normalized semantic behavior performed by a contributor.
type Activity struct {
	Kind      ActivityKind `json:"kind"`
	Actor     string       `json:"actor"`
	Repo      string       `json:"repo"`
	Timestamp time.Time    `json:"timestamp"`
}
