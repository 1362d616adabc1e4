package domain

// ReviewCounts tallies accept/reject classifications at one granularity.
// Total can exceed Accepts+Rejects when rows carried an unrecognized status.
type ReviewCounts struct {
	Accepts int `json:"accepts"`
	Rejects int `json:"rejects"`
	Total   int `json:"total"`
}

// SubcommitteeStats breaks one subcommittee's counts down by organization
// type and by international status.
type SubcommitteeStats struct {
	ReviewCounts
	ByOrganization  map[string]*ReviewCounts `json:"byOrganization"`
	ByInternational map[string]*ReviewCounts `json:"byInternational"`
}

// StatusAnomalyKind classifies data-integrity problems found while
// analyzing paper review status.
type StatusAnomalyKind string

const (
	// AnomalyConflictingStatus marks a submission ID that reappeared with a
	// status different from the one first seen. First-seen status wins.
	AnomalyConflictingStatus StatusAnomalyKind = "conflicting_status"
	// AnomalyInvalidStatus marks a status value matching neither "Accept"
	// nor "Reject".
	AnomalyInvalidStatus StatusAnomalyKind = "invalid_status"
)

// StatusAnomaly surfaces a data-integrity problem for operator inspection.
type StatusAnomaly struct {
	Kind           StatusAnomalyKind `json:"kind"`
	ID             string            `json:"id"`
	Status         string            `json:"status"`
	PreviousStatus string            `json:"previousStatus,omitempty"`
}

// PaperReviewStatusResults holds accept/reject statistics sliced by
// subcommittee, organization type and international status, plus a grand
// total and an organization-by-subcommittee cross-tab.
type PaperReviewStatusResults struct {
	SubcommitteeStats             map[string]*SubcommitteeStats `json:"subcommitteeStats"`
	OrgTypeStats                  map[string]*ReviewCounts      `json:"orgTypeStats"`
	InternationalStats            map[string]*ReviewCounts      `json:"internationalStats"`
	TotalStats                    ReviewCounts                  `json:"totalStats"`
	OrgTypeBySubcommitteeCrossTab CrossTabResult                `json:"orgTypeBySubcommitteeCrossTab"`
	Anomalies                     []StatusAnomaly               `json:"anomalies,omitempty"`
}

// International bucket keys. Everything not answering "yes" to the
// International(Y/N) question counts as domestic.
const (
	BucketInternational = "international"
	BucketDomestic      = "domestic"
)
