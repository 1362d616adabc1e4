package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"confpulse/pkg/contracts/domain"
)

// ExcelWriter builds downloadable workbooks from analysis reports.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// BuildWorkbook renders the result bundle into a workbook with one sheet
// per computed report. The caller owns closing the returned file.
func (w *ExcelWriter) BuildWorkbook(report *domain.AnalysisReport) (*excelize.File, error) {
	f := excelize.NewFile()
	first := true

	addSheet := func(name string) error {
		if first {
			// Rename the default sheet instead of leaving an empty Sheet1.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
			first = false
			return nil
		}
		_, err := f.NewSheet(name)
		return err
	}

	if report.Validation != nil {
		if err := addSheet("Validation"); err != nil {
			return nil, err
		}
		if err := writeValidationSheet(f, "Validation", report.Validation); err != nil {
			return nil, fmt.Errorf("write validation sheet: %w", err)
		}
	}

	if len(report.PreAbstractReview) > 0 {
		if err := addSheet("Review Summaries"); err != nil {
			return nil, err
		}
		if err := writeReviewSheet(f, "Review Summaries", report.PreAbstractReview); err != nil {
			return nil, fmt.Errorf("write review sheet: %w", err)
		}
	}

	if report.PaperReviewStatus != nil {
		if err := addSheet("Paper Review Status"); err != nil {
			return nil, err
		}
		if err := writeStatusSheet(f, "Paper Review Status", report.PaperReviewStatus); err != nil {
			return nil, fmt.Errorf("write status sheet: %w", err)
		}
	}

	if report.Analytics != nil {
		crossTabs := []struct {
			name string
			data domain.CrossTabResult
		}{
			{"Subcommittee by Org Type", report.Analytics.OrgTypeCrossTab},
			{"International by Subcommittee", report.Analytics.IntlCrossTab},
			{"Country by Subcommittee", report.Analytics.CountryCrossTab},
			{"Org Type by Subcommittee", report.Analytics.OrgTypeBySubcommitteeCrossTab},
		}
		for _, ct := range crossTabs {
			if err := addSheet(ct.name); err != nil {
				return nil, err
			}
			if err := writeCrossTabSheet(f, ct.name, ct.data); err != nil {
				return nil, fmt.Errorf("write cross-tab sheet %s: %w", ct.name, err)
			}
		}

		if err := addSheet("Org Type Percentages"); err != nil {
			return nil, err
		}
		if err := writePercentagesSheet(f, "Org Type Percentages", report.Analytics.OrgTypePercentages); err != nil {
			return nil, fmt.Errorf("write percentages sheet: %w", err)
		}
	}

	if report.Abstract != nil {
		if err := addSheet("Country Stats"); err != nil {
			return nil, err
		}
		if err := writeCountsSheet(f, "Country Stats", "Country", report.Abstract.CountryStats); err != nil {
			return nil, fmt.Errorf("write country sheet: %w", err)
		}
	}

	if first {
		// Nothing applied; still produce a valid workbook.
		if err := addSheet("Report"); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook builds the workbook and saves it at path.
func (w *ExcelWriter) WriteWorkbook(path string, report *domain.AnalysisReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := w.BuildWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("wrote analysis workbook", slog.String("path", path))
	return nil
}

func writeValidationSheet(f *excelize.File, sheet string, result *domain.ValidationResult) error {
	rows := [][]interface{}{
		{"Row", "Missing Columns"},
	}
	for _, issue := range result.Issues {
		rows = append(rows, []interface{}{issue.RowIndex, strings.Join(issue.MissingColumns, ", ")})
	}
	rows = append(rows, nil, []interface{}{"Total rows", result.TotalRows}, []interface{}{"Rows with issues", len(result.Issues)})
	return writeRows(f, sheet, rows)
}

func writeReviewSheet(f *excelize.File, sheet string, summaries []domain.PreAbstractReviewSummary) error {
	header := make([]interface{}, len(reviewSummaryHeaders))
	for i, h := range reviewSummaryHeaders {
		header[i] = h
	}
	rows := [][]interface{}{header}
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.ID,
			s.Title,
			s.BirddogVolunteer,
			s.MeanSubstanceRating,
			s.MeanOriginalityRating,
			s.MeanSalesPitch,
			s.NumAccept,
			s.NumReject,
			s.NumDiscuss,
			strings.Join(s.CommentsForBirddog, "; "),
			strings.Join(s.CommentsForSubcommittee, "; "),
		})
	}
	return writeRows(f, sheet, rows)
}

func writeStatusSheet(f *excelize.File, sheet string, results *domain.PaperReviewStatusResults) error {
	rows := [][]interface{}{
		{"Subcommittee", "Accepts", "Rejects", "Total"},
	}
	for _, name := range sortedKeys(results.SubcommitteeStats) {
		s := results.SubcommitteeStats[name]
		rows = append(rows, []interface{}{name, s.Accepts, s.Rejects, s.Total})
	}

	rows = append(rows, nil, []interface{}{"Org Type", "Accepts", "Rejects", "Total"})
	for _, name := range sortedKeys(results.OrgTypeStats) {
		s := results.OrgTypeStats[name]
		rows = append(rows, []interface{}{name, s.Accepts, s.Rejects, s.Total})
	}

	rows = append(rows, nil, []interface{}{"Origin", "Accepts", "Rejects", "Total"})
	for _, name := range []string{domain.BucketDomestic, domain.BucketInternational} {
		s := results.InternationalStats[name]
		rows = append(rows, []interface{}{name, s.Accepts, s.Rejects, s.Total})
	}

	rows = append(rows, nil, []interface{}{"Grand total", results.TotalStats.Accepts, results.TotalStats.Rejects, results.TotalStats.Total})

	if len(results.Anomalies) > 0 {
		rows = append(rows, nil, []interface{}{"Anomaly", "ID", "Status", "Previous Status"})
		for _, a := range results.Anomalies {
			rows = append(rows, []interface{}{string(a.Kind), a.ID, a.Status, a.PreviousStatus})
		}
	}

	return writeRows(f, sheet, rows)
}

// writeCrossTabSheet lays the cross-tab out as a matrix with sorted row and
// column keys, so the output is deterministic.
func writeCrossTabSheet(f *excelize.File, sheet string, crossTab domain.CrossTabResult) error {
	rowKeys := sortedKeys(crossTab)

	colSet := make(map[string]struct{})
	for _, inner := range crossTab {
		for col := range inner {
			colSet[col] = struct{}{}
		}
	}
	colKeys := sortedKeys(colSet)

	header := make([]interface{}, 0, len(colKeys)+1)
	header = append(header, "")
	for _, col := range colKeys {
		header = append(header, col)
	}
	rows := [][]interface{}{header}

	for _, rowKey := range rowKeys {
		row := make([]interface{}, 0, len(colKeys)+1)
		row = append(row, rowKey)
		for _, col := range colKeys {
			row = append(row, crossTab[rowKey][col])
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheet, rows)
}

func writePercentagesSheet(f *excelize.File, sheet string, percentages map[string]float64) error {
	rows := [][]interface{}{
		{"Value", "Share"},
	}
	for _, key := range sortedKeys(percentages) {
		rows = append(rows, []interface{}{key, percentages[key]})
	}
	return writeRows(f, sheet, rows)
}

func writeCountsSheet(f *excelize.File, sheet, label string, counts domain.GroupedStats) error {
	rows := [][]interface{}{
		{label, "Count"},
	}
	for _, key := range sortedKeys(counts) {
		rows = append(rows, []interface{}{key, counts[key]})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if row == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
