// Package validation checks submission records for required canonical
// fields and validates source files before they reach the decoder.
package validation

import "confpulse/pkg/contracts/domain"

// Required canonical columns for the analytics path (spreadsheets carrying
// Assigned_Subcommittee) and for the abstract-submission path.
var (
	analyticsRequiredColumns = []string{
		"ID",
		"Org_Type",
		"International(Y/N)",
		"Country",
		"Assigned_Subcommittee",
	}

	abstractRequiredColumns = []string{
		"ID",
		"Country",
		"International(Y/N)",
	}
)

// RequiredColumns returns the required canonical column set for the
// detected report type.
func RequiredColumns(hasAssignedSubcommittee bool) []string {
	if hasAssignedSubcommittee {
		return analyticsRequiredColumns
	}
	return abstractRequiredColumns
}

// ValidateRecords reports, per row, which required fields are absent, nil or
// the empty string. Row indexes are 1-based. Rows with no missing fields
// produce no issue; TotalRows always reflects the full record count.
func ValidateRecords(records []domain.Record, requiredColumns []string) *domain.ValidationResult {
	result := &domain.ValidationResult{TotalRows: len(records)}

	for i, record := range records {
		var missing []string
		for _, column := range requiredColumns {
			v, ok := record[column]
			if !ok || v == nil || v == "" {
				missing = append(missing, column)
			}
		}
		if len(missing) > 0 {
			result.Issues = append(result.Issues, domain.ValidationIssue{
				RowIndex:       i + 1,
				MissingColumns: missing,
				RowData:        record,
			})
		}
	}
	return result
}
