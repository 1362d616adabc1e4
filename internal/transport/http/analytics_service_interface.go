package http

import (
	"context"
	"io"

	"confpulse/pkg/contracts/domain"
)

// AnalyticsServiceInterface defines the contract the analytics handler needs
// from the service layer. Kept as an interface so handler tests can use a
// mock service.
type AnalyticsServiceInterface interface {
	// ProcessUpload decodes and analyzes one uploaded spreadsheet and
	// installs it as the latest result bundle.
	ProcessUpload(ctx context.Context, r io.Reader, filename string, size int64) (*domain.AnalysisReport, error)

	// Latest returns the most recent result bundle, or nil.
	Latest() *domain.AnalysisReport

	// ExportReviewCSVs writes the latest review summaries to disk, one CSV
	// per subcommittee plus a combined file.
	ExportReviewCSVs(ctx context.Context) (int, error)

	// ExportWorkbook writes the latest result bundle as an Excel workbook.
	ExportWorkbook(name string) (string, error)

	// ExportJSON writes the latest result bundle as indented JSON.
	ExportJSON(name string) (string, error)
}
