package dataprocessing

import (
	"fmt"
	"math"
	"strings"

	"confpulse/pkg/contracts/domain"
)

// Canonical field names consumed by the pre-abstract review summarizer. The
// rating columns keep their spaces; the source spreadsheets never rename them.
const (
	fieldSubstanceRating   = "Substance Rating"
	fieldOriginalityRating = "Originality Rating"
	fieldSalesPitch        = "Sales Pitch"
)

// SummarizePreAbstractReviews groups reviewer rows by submission ID and
// produces one summary per distinct ID, in first-encounter order. Each
// summary carries the mean of the three numeric rating fields, the
// Accept/Reject/Discuss decision counts and the collected comments for the
// birddog and the subcommittee.
func SummarizePreAbstractReviews(records []domain.Record) []domain.PreAbstractReviewSummary {
	var order []string
	groups := make(map[string][]domain.Record)
	for _, record := range records {
		id := domain.CellString(record["ID"])
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], record)
	}

	summaries := make([]domain.PreAbstractReviewSummary, 0, len(order))
	for _, id := range order {
		group := groups[id]
		first := group[0]

		summaries = append(summaries, domain.PreAbstractReviewSummary{
			ID:                      id,
			Title:                   first.StringOr("Title"),
			BirddogVolunteer:        birddogVolunteers(group),
			AssignedSubcommittee:    first.StringOr("Assigned_Subcommittee"),
			MeanSubstanceRating:     round2(meanRating(group, fieldSubstanceRating)),
			MeanOriginalityRating:   round2(meanRating(group, fieldOriginalityRating)),
			MeanSalesPitch:          round2(meanRating(group, fieldSalesPitch)),
			NumAccept:               countDecision(group, "Accept"),
			NumReject:               countDecision(group, "Reject"),
			NumDiscuss:              countDecision(group, "Discuss"),
			CommentsForBirddog:      collectComments(group, "Comments_for_Birddog"),
			CommentsForSubcommittee: collectComments(group, "Comments_for_Subcommittee"),
		})
	}
	return summaries
}

// birddogVolunteers joins the "Lastname,Firstname" of every reviewer in the
// group who volunteered to birddog the submission.
func birddogVolunteers(group []domain.Record) string {
	var names []string
	for _, record := range group {
		if v, _ := record["Birddog_Volunteer"].(string); v != "Yes" {
			continue
		}
		names = append(names, fmt.Sprintf("%s,%s",
			record.StringOr("ReviewerLastname"),
			record.StringOr("ReviewerFirstname")))
	}
	return strings.Join(names, "; ")
}

// meanRating averages the rating field across the group. Absent and empty
// values coerce to 0, non-numeric values become NaN and are excluded, and
// the mean of an empty set is 0.
func meanRating(group []domain.Record, field string) float64 {
	var sum float64
	var n int
	for _, record := range group {
		v := record.Number(field)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// countDecision counts reviewers whose Acceptance field matches the decision
// exactly. Any other value contributes to none of the three counters.
func countDecision(group []domain.Record, decision string) int {
	n := 0
	for _, record := range group {
		if v, _ := record["Acceptance"].(string); v == decision {
			n++
		}
	}
	return n
}

// collectComments keeps the group's string comments that are not blank and
// not the literal "nan" left behind by earlier pandas exports, in row order.
func collectComments(group []domain.Record, field string) []string {
	var comments []string
	for _, record := range group {
		v, ok := record[field].(string)
		if !ok || v == "nan" || strings.TrimSpace(v) == "" {
			continue
		}
		comments = append(comments, v)
	}
	return comments
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
