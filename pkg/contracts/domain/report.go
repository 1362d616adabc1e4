package domain

import "time"

// SheetData is the raw decoder output: the first-row header strings and all
// subsequent data rows. Rows may be ragged.
type SheetData struct {
	Headers []string `json:"headers"`
	Rows    [][]Cell `json:"data"`
}

// AnalysisReport is the full result bundle for one processed upload. Only
// the reports applicable to the detected spreadsheet shape are non-nil.
type AnalysisReport struct {
	Validation        *ValidationResult             `json:"validationResult,omitempty"`
	Analytics         *AnalyticsResultData          `json:"analyticsResults,omitempty"`
	Abstract          *NonAbstractSubmissionResults `json:"abstractResults,omitempty"`
	PreAbstractReview []PreAbstractReviewSummary    `json:"preAbstractReviewResults,omitempty"`
	PaperReviewStatus *PaperReviewStatusResults     `json:"paperReviewStatusResults,omitempty"`

	// Preview echoes the canonical headers and the first rows of raw data
	// for display purposes only.
	Preview *SheetData `json:"excelData,omitempty"`

	SourceFile  string    `json:"source_file,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
