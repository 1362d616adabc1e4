package domain

// CrossTabResult is a two-level frequency count: outer key is the value of
// the first field, inner key the value of the second, cell the record count.
type CrossTabResult map[string]map[string]int

// GroupedStats counts records per stringified field value.
type GroupedStats map[string]int

// AnalyticsResultData bundles the cross-tabulations and percentage
// distributions computed for analytics-path spreadsheets (those carrying an
// Assigned_Subcommittee column).
type AnalyticsResultData struct {
	OrgTypeCrossTab               CrossTabResult     `json:"orgTypeCrossTab"`
	IntlCrossTab                  CrossTabResult     `json:"intlCrossTab"`
	CountryCrossTab               CrossTabResult     `json:"countryCrossTab"`
	OrgTypePercentages            map[string]float64 `json:"orgTypePercentages"`
	OrgTypeBySubcommitteeCrossTab CrossTabResult     `json:"orgTypeBySubcommitteeCrossTab"`
}

// NonAbstractSubmissionResults holds the country grouping computed for
// abstract-submission spreadsheets.
type NonAbstractSubmissionResults struct {
	CountryStats GroupedStats `json:"countryStats"`
}
