package domain

// ValidationIssue reports the required canonical fields missing on one row.
// RowIndex is 1-based for human-readable reporting.
type ValidationIssue struct {
	RowIndex       int      `json:"rowIndex"`
	MissingColumns []string `json:"missingColumns"`
	RowData        Record   `json:"rowData"`
}

// ValidationResult collects per-row issues; TotalRows is the full row count
// regardless of how many rows had issues.
type ValidationResult struct {
	Issues    []ValidationIssue `json:"issues"`
	TotalRows int               `json:"totalRows"`
}
