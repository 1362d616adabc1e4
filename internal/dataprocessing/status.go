package dataprocessing

import (
	"log/slog"
	"strings"

	"confpulse/pkg/contracts/domain"
)

// AnalyzePaperReviewStatus classifies each submission as accepted or
// rejected from its Accept_Reject column and tallies the counts by
// subcommittee, organization type and international status, plus a grand
// total and an org-type-by-subcommittee cross-tab.
//
// Each submission ID is counted exactly once: a repeated ID is skipped, and
// if it reappears with a different status the conflict is logged and
// surfaced as an anomaly rather than merged. Rows with an empty ID are never
// deduplicated against each other.
func AnalyzePaperReviewStatus(logger *slog.Logger, records []domain.Record) *domain.PaperReviewStatusResults {
	if logger == nil {
		logger = slog.Default()
	}

	results := &domain.PaperReviewStatusResults{
		SubcommitteeStats: make(map[string]*domain.SubcommitteeStats),
		OrgTypeStats:      make(map[string]*domain.ReviewCounts),
		InternationalStats: map[string]*domain.ReviewCounts{
			domain.BucketInternational: {},
			domain.BucketDomestic:      {},
		},
		OrgTypeBySubcommitteeCrossTab: make(domain.CrossTabResult),
	}

	seen := make(map[string]string)

	for _, record := range records {
		subcommittee := record.StringOr("Assigned_Subcommittee")
		orgType := record.StringOr("Org_Type")
		intlKey := domain.BucketDomestic
		if strings.ToLower(record.StringOr("International(Y/N)")) == "yes" {
			intlKey = domain.BucketInternational
		}
		id := record.StringOr("ID")

		// The status column may carry trailing free text after a comma;
		// only the first segment classifies the submission.
		status := strings.SplitN(record.StringOr("Accept_Reject"), ",", 2)[0]

		if id != "" {
			if prev, dup := seen[id]; dup {
				if prev != status {
					logger.Error("status changed for already-counted submission",
						slog.String("id", id),
						slog.String("previous_status", prev),
						slog.String("current_status", status))
					results.Anomalies = append(results.Anomalies, domain.StatusAnomaly{
						Kind:           domain.AnomalyConflictingStatus,
						ID:             id,
						Status:         status,
						PreviousStatus: prev,
					})
				}
				continue
			}
			seen[id] = status
		}

		sub := results.SubcommitteeStats[subcommittee]
		if sub == nil {
			sub = &domain.SubcommitteeStats{
				ByOrganization: make(map[string]*domain.ReviewCounts),
				ByInternational: map[string]*domain.ReviewCounts{
					domain.BucketInternational: {},
					domain.BucketDomestic:      {},
				},
			}
			results.SubcommitteeStats[subcommittee] = sub
		}
		if sub.ByOrganization[orgType] == nil {
			sub.ByOrganization[orgType] = &domain.ReviewCounts{}
		}
		if results.OrgTypeStats[orgType] == nil {
			results.OrgTypeStats[orgType] = &domain.ReviewCounts{}
		}
		if results.OrgTypeBySubcommitteeCrossTab[orgType] == nil {
			results.OrgTypeBySubcommitteeCrossTab[orgType] = make(map[string]int)
		}
		results.OrgTypeBySubcommitteeCrossTab[orgType][subcommittee]++

		counts := []*domain.ReviewCounts{
			&sub.ReviewCounts,
			sub.ByOrganization[orgType],
			sub.ByInternational[intlKey],
			results.OrgTypeStats[orgType],
			results.InternationalStats[intlKey],
			&results.TotalStats,
		}

		switch classifyStatus(status) {
		case statusReject:
			for _, c := range counts {
				c.Rejects++
			}
		case statusAccept:
			for _, c := range counts {
				c.Accepts++
			}
		default:
			logger.Error("invalid review status for submission",
				slog.String("id", id),
				slog.String("status", status))
			results.Anomalies = append(results.Anomalies, domain.StatusAnomaly{
				Kind:   domain.AnomalyInvalidStatus,
				ID:     id,
				Status: status,
			})
		}

		// Totals always advance, so accepts+rejects can fall short of total
		// when a status was unrecognized.
		for _, c := range counts {
			c.Total++
		}
	}

	return results
}

type statusClass int

const (
	statusInvalid statusClass = iota
	statusAccept
	statusReject
)

// classifyStatus maps a status string onto accept or reject by substring
// match. "Reject" is checked before "Accept", so a value containing both
// classifies as a rejection.
func classifyStatus(status string) statusClass {
	switch {
	case strings.Contains(status, "Reject"):
		return statusReject
	case strings.Contains(status, "Accept"):
		return statusAccept
	default:
		return statusInvalid
	}
}
