package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"confpulse/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality rooted at a reports directory.
type CSVWriter struct {
	reportsDir string
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(reportsDir string) *CSVWriter {
	return &CSVWriter{reportsDir: reportsDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file under the reports directory.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteSimpleCSV writes a CSV file with headers and records and a BOM.
func (w *CSVWriter) WriteSimpleCSV(filePath string, headers []string, records [][]string) error {
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.reportsDir == "" {
		return filePath
	}
	return filepath.Join(w.reportsDir, filePath)
}

// reviewSummaryHeaders is the column layout of the review summary export,
// matching the spreadsheet the subcommittee chairs circulate.
var reviewSummaryHeaders = []string{
	"ID",
	"Title",
	"Birddog Volunteer",
	"Mean Substance Rating",
	"Mean Originality Rating",
	"Mean Sales Pitch",
	"Accept",
	"Reject",
	"Discuss",
	"Birddog Comments",
	"Committee Comments",
}

// reviewSummaryRow flattens one summary into CSV cells.
func reviewSummaryRow(s domain.PreAbstractReviewSummary) []string {
	return []string{
		s.ID,
		s.Title,
		s.BirddogVolunteer,
		formatRating(s.MeanSubstanceRating),
		formatRating(s.MeanOriginalityRating),
		formatRating(s.MeanSalesPitch),
		strconv.Itoa(s.NumAccept),
		strconv.Itoa(s.NumReject),
		strconv.Itoa(s.NumDiscuss),
		strings.Join(s.CommentsForBirddog, "; "),
		strings.Join(s.CommentsForSubcommittee, "; "),
	}
}

// WriteReviewSummaries writes all pre-abstract review summaries to one CSV.
func (w *CSVWriter) WriteReviewSummaries(filePath string, summaries []domain.PreAbstractReviewSummary) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, reviewSummaryRow(s))
	}
	return w.WriteSimpleCSV(filePath, reviewSummaryHeaders, records)
}

// WriteReviewSummariesBySubcommittee writes one CSV per subcommittee, named
// <subcommittee>_reviews.csv with spaces replaced by underscores. Summary
// order within each file follows the input order.
func (w *CSVWriter) WriteReviewSummariesBySubcommittee(summaries []domain.PreAbstractReviewSummary) error {
	var order []string
	groups := make(map[string][]domain.PreAbstractReviewSummary)
	for _, s := range summaries {
		if _, seen := groups[s.AssignedSubcommittee]; !seen {
			order = append(order, s.AssignedSubcommittee)
		}
		groups[s.AssignedSubcommittee] = append(groups[s.AssignedSubcommittee], s)
	}

	for _, subcommittee := range order {
		name := subcommitteeFileName(subcommittee)
		if err := w.WriteReviewSummaries(name, groups[subcommittee]); err != nil {
			return fmt.Errorf("write reviews for subcommittee %q: %w", subcommittee, err)
		}
	}
	return nil
}

func subcommitteeFileName(subcommittee string) string {
	name := strings.Join(strings.Fields(subcommittee), "_")
	if name == "" {
		name = "unassigned"
	}
	return name + "_reviews.csv"
}

// RenderCSV renders headers and records into an in-memory CSV document with
// a BOM, for HTTP downloads.
func RenderCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(&buf)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReviewSummariesCSV renders the review summary export in memory.
func ReviewSummariesCSV(summaries []domain.PreAbstractReviewSummary) ([]byte, error) {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, reviewSummaryRow(s))
	}
	return RenderCSV(reviewSummaryHeaders, records)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
