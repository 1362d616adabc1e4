package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confpulse/pkg/contracts/domain"
)

func statusRow(id, sub, org, intl, status string) domain.Record {
	return domain.Record{
		"ID":                    id,
		"Assigned_Subcommittee": sub,
		"Org_Type":              org,
		"International(Y/N)":    intl,
		"Accept_Reject":         status,
	}
}

func TestAnalyzePaperReviewStatus(t *testing.T) {
	records := []domain.Record{
		statusRow("1", "ED", "Industry", "Yes", "Accept"),
		statusRow("2", "ED", "Academia", "No", "Reject"),
		statusRow("3", "TR", "Industry", "no", "Accept"),
	}

	results := AnalyzePaperReviewStatus(nil, records)

	assert.Equal(t, 2, results.TotalStats.Accepts)
	assert.Equal(t, 1, results.TotalStats.Rejects)
	assert.Equal(t, 3, results.TotalStats.Total)

	ed := results.SubcommitteeStats["ED"]
	require.NotNil(t, ed)
	assert.Equal(t, 1, ed.Accepts)
	assert.Equal(t, 1, ed.Rejects)
	assert.Equal(t, 1, ed.ByOrganization["Industry"].Accepts)
	assert.Equal(t, 1, ed.ByInternational[domain.BucketInternational].Accepts)
	assert.Equal(t, 1, ed.ByInternational[domain.BucketDomestic].Rejects)

	assert.Equal(t, 2, results.OrgTypeStats["Industry"].Accepts)
	assert.Equal(t, 1, results.InternationalStats[domain.BucketInternational].Total)
	assert.Equal(t, 2, results.InternationalStats[domain.BucketDomestic].Total)

	assert.Equal(t, 1, results.OrgTypeBySubcommitteeCrossTab["Industry"]["ED"])
	assert.Equal(t, 1, results.OrgTypeBySubcommitteeCrossTab["Industry"]["TR"])
	assert.Empty(t, results.Anomalies)
}

func TestAnalyzePaperReviewStatusDeduplicates(t *testing.T) {
	records := []domain.Record{
		statusRow("1", "ED", "Industry", "No", "Accept"),
		statusRow("1", "ED", "Industry", "No", "Accept"), // same ID, same status: silently skipped
	}

	results := AnalyzePaperReviewStatus(nil, records)
	assert.Equal(t, 1, results.TotalStats.Total)
	assert.Empty(t, results.Anomalies)
}

func TestAnalyzePaperReviewStatusConflict(t *testing.T) {
	records := []domain.Record{
		statusRow("1", "ED", "Industry", "No", "Accept"),
		statusRow("1", "ED", "Industry", "No", "Reject"),
	}

	results := AnalyzePaperReviewStatus(nil, records)

	// First-seen status wins; the conflicting row never touches the counts.
	assert.Equal(t, 1, results.TotalStats.Accepts)
	assert.Equal(t, 0, results.TotalStats.Rejects)
	assert.Equal(t, 1, results.TotalStats.Total)

	require.Len(t, results.Anomalies, 1)
	anomaly := results.Anomalies[0]
	assert.Equal(t, domain.AnomalyConflictingStatus, anomaly.Kind)
	assert.Equal(t, "1", anomaly.ID)
	assert.Equal(t, "Reject", anomaly.Status)
	assert.Equal(t, "Accept", anomaly.PreviousStatus)
}

func TestAnalyzePaperReviewStatusEmptyIDsNotDeduplicated(t *testing.T) {
	records := []domain.Record{
		statusRow("", "ED", "Industry", "No", "Accept"),
		statusRow("", "ED", "Industry", "No", "Accept"),
	}

	results := AnalyzePaperReviewStatus(nil, records)
	assert.Equal(t, 2, results.TotalStats.Accepts)
	assert.Equal(t, 2, results.TotalStats.Total)
}

func TestAnalyzePaperReviewStatusCommaSegment(t *testing.T) {
	records := []domain.Record{
		statusRow("1", "ED", "Industry", "No", "Accept, pending camera-ready"),
	}

	results := AnalyzePaperReviewStatus(nil, records)
	assert.Equal(t, 1, results.TotalStats.Accepts)
}

func TestAnalyzePaperReviewStatusRejectPrecedence(t *testing.T) {
	// A value carrying both words classifies as a rejection.
	records := []domain.Record{
		statusRow("1", "ED", "Industry", "No", "Reject (was Accept)"),
	}

	results := AnalyzePaperReviewStatus(nil, records)
	assert.Equal(t, 1, results.TotalStats.Rejects)
	assert.Equal(t, 0, results.TotalStats.Accepts)
}

func TestAnalyzePaperReviewStatusInvalidStatus(t *testing.T) {
	records := []domain.Record{
		statusRow("1", "ED", "Industry", "No", "Pending"),
		statusRow("2", "ED", "Industry", "No", "Accept"),
	}

	results := AnalyzePaperReviewStatus(nil, records)

	// Totals include the unclassifiable row, accepts+rejects do not.
	assert.Equal(t, 2, results.TotalStats.Total)
	assert.Equal(t, 1, results.TotalStats.Accepts)
	assert.Equal(t, 0, results.TotalStats.Rejects)

	require.Len(t, results.Anomalies, 1)
	assert.Equal(t, domain.AnomalyInvalidStatus, results.Anomalies[0].Kind)
	assert.Equal(t, "Pending", results.Anomalies[0].Status)
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected statusClass
	}{
		{"Accept", statusAccept},
		{"Final Accept", statusAccept},
		{"Reject", statusReject},
		{"Rejected after discussion", statusReject},
		{"Reject then Accept", statusReject},
		{"", statusInvalid},
		{"accept", statusInvalid}, // classification is case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyStatus(tt.status))
		})
	}
}
