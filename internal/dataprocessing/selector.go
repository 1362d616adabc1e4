package dataprocessing

import (
	"log/slog"
	"slices"
	"time"

	"confpulse/internal/validation"
	"confpulse/pkg/contracts/domain"
)

// previewRows is how many raw data rows the result bundle echoes back for
// display.
const previewRows = 5

// Process runs the full analytics selection over decoded sheet data: map
// headers, build records, then compute whichever reports the canonical
// header set supports. Every call recomputes from scratch; nothing is
// carried over between uploads.
//
// Selection rules:
//   - ReviewerFirstname present: pre-abstract review summaries; validation
//     and the cross-tab reports are skipped.
//   - Accept_Reject present: paper review status statistics, regardless of
//     the other branches.
//   - Otherwise: field validation, then either the cross-tab/percentage
//     bundle (Assigned_Subcommittee present) or the country grouping.
func Process(logger *slog.Logger, sheet *domain.SheetData, mappings map[string]string) *domain.AnalysisReport {
	if logger == nil {
		logger = slog.Default()
	}

	headers := MapHeaders(sheet.Headers, mappings)
	records := BuildRecords(headers, sheet.Rows)

	report := &domain.AnalysisReport{
		Preview: &domain.SheetData{
			Headers: headers,
			Rows:    sheet.Rows[:min(previewRows, len(sheet.Rows))],
		},
		GeneratedAt: time.Now(),
	}

	hasSubcommittee := slices.Contains(headers, "Assigned_Subcommittee")
	hasReviewer := slices.Contains(headers, "ReviewerFirstname")
	hasReviewStatus := slices.Contains(headers, "Accept_Reject")

	logger.Info("processing submission data",
		slog.Int("rows", len(records)),
		slog.Bool("has_subcommittee", hasSubcommittee),
		slog.Bool("has_reviewer", hasReviewer),
		slog.Bool("has_review_status", hasReviewStatus))

	if hasReviewStatus {
		report.PaperReviewStatus = AnalyzePaperReviewStatus(logger, records)
	}

	if hasReviewer {
		report.PreAbstractReview = SummarizePreAbstractReviews(records)
		return report
	}

	report.Validation = validation.ValidateRecords(records, validation.RequiredColumns(hasSubcommittee))
	if hasSubcommittee {
		report.Analytics = Analyze(records)
	} else {
		report.Abstract = AnalyzeAbstractSubmissions(records)
	}
	return report
}
