package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confpulse/pkg/contracts/domain"
)

func sampleSummaries() []domain.PreAbstractReviewSummary {
	return []domain.PreAbstractReviewSummary{
		{
			ID:                      "101",
			Title:                   "First Paper",
			BirddogVolunteer:        "Anderson,Alice",
			AssignedSubcommittee:    "ED",
			MeanSubstanceRating:     4.33,
			MeanOriginalityRating:   3.5,
			MeanSalesPitch:          1,
			NumAccept:               2,
			NumReject:               1,
			NumDiscuss:              0,
			CommentsForBirddog:      []string{"Tighten the abstract"},
			CommentsForSubcommittee: []string{"Solid", "Needs data"},
		},
		{
			ID:                   "102",
			Title:                "Second Paper",
			AssignedSubcommittee: "Human Performance",
		},
		{
			ID:                   "103",
			Title:                "Third Paper",
			AssignedSubcommittee: "ED",
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// Strip the BOM before parsing.
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteReviewSummaries(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewCSVWriter(tmpDir)

	require.NoError(t, w.WriteReviewSummaries("reviews.csv", sampleSummaries()))

	rows := readCSV(t, filepath.Join(tmpDir, "reviews.csv"))
	require.Len(t, rows, 4)

	assert.Equal(t, reviewSummaryHeaders, rows[0])
	assert.Equal(t, []string{
		"101", "First Paper", "Anderson,Alice",
		"4.33", "3.50", "1.00",
		"2", "1", "0",
		"Tighten the abstract", "Solid; Needs data",
	}, rows[1])
}

func TestWriteReviewSummariesQuoting(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewCSVWriter(tmpDir)

	summaries := []domain.PreAbstractReviewSummary{
		{
			ID:                      "201",
			Title:                   `A "quoted" title, with commas`,
			CommentsForSubcommittee: []string{`Reviewer said "reject"`, "line two"},
		},
	}
	require.NoError(t, w.WriteReviewSummaries("reviews.csv", summaries))

	rows := readCSV(t, filepath.Join(tmpDir, "reviews.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, `A "quoted" title, with commas`, rows[1][1])
	assert.Equal(t, `Reviewer said "reject"; line two`, rows[1][10])
}

func TestWriteReviewSummariesBOM(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewCSVWriter(tmpDir)

	require.NoError(t, w.WriteReviewSummaries("reviews.csv", nil))

	raw, err := os.ReadFile(filepath.Join(tmpDir, "reviews.csv"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))
}

func TestWriteReviewSummariesBySubcommittee(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewCSVWriter(tmpDir)

	require.NoError(t, w.WriteReviewSummariesBySubcommittee(sampleSummaries()))

	edRows := readCSV(t, filepath.Join(tmpDir, "ED_reviews.csv"))
	require.Len(t, edRows, 3)
	assert.Equal(t, "101", edRows[1][0])
	assert.Equal(t, "103", edRows[2][0])

	hpRows := readCSV(t, filepath.Join(tmpDir, "Human_Performance_reviews.csv"))
	require.Len(t, hpRows, 2)
	assert.Equal(t, "102", hpRows[1][0])
}

func TestSubcommitteeFileName(t *testing.T) {
	tests := []struct {
		subcommittee string
		expected     string
	}{
		{"ED", "ED_reviews.csv"},
		{"Human Performance", "Human_Performance_reviews.csv"},
		{"  spaced   out ", "spaced_out_reviews.csv"},
		{"", "unassigned_reviews.csv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, subcommitteeFileName(tt.subcommittee))
	}
}

func TestReviewSummariesCSVInMemory(t *testing.T) {
	data, err := ReviewSummariesCSV(sampleSummaries()[:1])
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "101", rows[1][0])
}

func TestWriteCSVAbsolutePath(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewCSVWriter(filepath.Join(tmpDir, "ignored"))

	abs := filepath.Join(tmpDir, "direct.csv")
	require.NoError(t, w.WriteCSV(abs, WriteOptions{
		Headers: []string{"A"},
		Records: [][]string{{"1"}},
	}))
	assert.FileExists(t, abs)
}
