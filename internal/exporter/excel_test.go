package exporter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"confpulse/pkg/contracts/domain"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		Validation: &domain.ValidationResult{
			TotalRows: 3,
			Issues: []domain.ValidationIssue{
				{RowIndex: 2, MissingColumns: []string{"Country", "Org_Type"}},
			},
		},
		Analytics: &domain.AnalyticsResultData{
			OrgTypeCrossTab: domain.CrossTabResult{
				"ED": {"Industry": 2, "Academia": 1},
				"TR": {"Industry": 1},
			},
			IntlCrossTab:                  domain.CrossTabResult{"Yes": {"ED": 1}},
			CountryCrossTab:               domain.CrossTabResult{"USA": {"ED": 2}},
			OrgTypePercentages:            map[string]float64{"Industry": 0.75, "Academia": 0.25},
			OrgTypeBySubcommitteeCrossTab: domain.CrossTabResult{"Industry": {"ED": 2}},
		},
		GeneratedAt: time.Now(),
	}
}

func TestBuildWorkbook(t *testing.T) {
	w := NewExcelWriter(nil)

	f, err := w.BuildWorkbook(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Validation")
	assert.Contains(t, sheets, "Subcommittee by Org Type")
	assert.Contains(t, sheets, "Org Type Percentages")
	assert.NotContains(t, sheets, "Sheet1")
	assert.NotContains(t, sheets, "Review Summaries")

	// Cross-tab matrix: sorted row keys down column A, sorted column keys
	// across row 1.
	rows, err := f.GetRows("Subcommittee by Org Type")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"", "Academia", "Industry"}, rows[0])
	assert.Equal(t, []string{"ED", "1", "2"}, rows[1])
	assert.Equal(t, "TR", rows[2][0])

	vrows, err := f.GetRows("Validation")
	require.NoError(t, err)
	assert.Equal(t, []string{"Row", "Missing Columns"}, vrows[0])
	assert.Equal(t, []string{"2", "Country, Org_Type"}, vrows[1])
}

func TestBuildWorkbookStatusSheet(t *testing.T) {
	report := &domain.AnalysisReport{
		PaperReviewStatus: &domain.PaperReviewStatusResults{
			SubcommitteeStats: map[string]*domain.SubcommitteeStats{
				"ED": {
					ReviewCounts:    domain.ReviewCounts{Accepts: 2, Rejects: 1, Total: 3},
					ByOrganization:  map[string]*domain.ReviewCounts{},
					ByInternational: map[string]*domain.ReviewCounts{},
				},
			},
			OrgTypeStats: map[string]*domain.ReviewCounts{
				"Industry": {Accepts: 2, Rejects: 1, Total: 3},
			},
			InternationalStats: map[string]*domain.ReviewCounts{
				domain.BucketInternational: {Accepts: 1, Total: 1},
				domain.BucketDomestic:      {Accepts: 1, Rejects: 1, Total: 2},
			},
			TotalStats: domain.ReviewCounts{Accepts: 2, Rejects: 1, Total: 3},
			Anomalies: []domain.StatusAnomaly{
				{Kind: domain.AnomalyInvalidStatus, ID: "9", Status: "Pending"},
			},
		},
		GeneratedAt: time.Now(),
	}

	w := NewExcelWriter(nil)
	f, err := w.BuildWorkbook(report)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Paper Review Status")
	require.NoError(t, err)
	assert.Equal(t, []string{"Subcommittee", "Accepts", "Rejects", "Total"}, rows[0])
	assert.Equal(t, []string{"ED", "2", "1", "3"}, rows[1])
}

func TestBuildWorkbookEmptyReport(t *testing.T) {
	w := NewExcelWriter(nil)

	f, err := w.BuildWorkbook(&domain.AnalysisReport{GeneratedAt: time.Now()})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report"}, f.GetSheetList())
}

func TestWriteWorkbook(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "report.xlsx")

	w := NewExcelWriter(nil)
	require.NoError(t, w.WriteWorkbook(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Validation")
}
