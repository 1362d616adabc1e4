package dataprocessing

import "confpulse/pkg/contracts/domain"

// categoryLabel normalizes a stringified cell into a category key. Values
// that stringify to "" are renamed so they never appear as empty map keys.
func categoryLabel(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// CrossTab counts records per (keyA, keyB) value pair. A record contributes
// only when both fields are present and non-nil. The result is an unordered
// mapping; consumers needing deterministic output sort the keys themselves.
func CrossTab(records []domain.Record, keyA, keyB string) domain.CrossTabResult {
	result := make(domain.CrossTabResult)
	for _, record := range records {
		a, okA := record.String(keyA)
		b, okB := record.String(keyB)
		if !okA || !okB {
			continue
		}
		a, b = categoryLabel(a), categoryLabel(b)
		inner := result[a]
		if inner == nil {
			inner = make(map[string]int)
			result[a] = inner
		}
		inner[b]++
	}
	return result
}

// Percentages computes the share of each value of the field among all
// records where the field is present, as fractions in [0,1]. With zero
// observations the result is empty.
func Percentages(records []domain.Record, key string) map[string]float64 {
	counts := make(map[string]int)
	total := 0
	for _, record := range records {
		s, ok := record.String(key)
		if !ok {
			continue
		}
		counts[categoryLabel(s)]++
		total++
	}

	percentages := make(map[string]float64, len(counts))
	for value, count := range counts {
		percentages[value] = float64(count) / float64(total)
	}
	return percentages
}

// GroupByKey counts records per stringified value of the field, skipping
// records where the field is absent or nil.
func GroupByKey(records []domain.Record, key string) domain.GroupedStats {
	result := make(domain.GroupedStats)
	for _, record := range records {
		if s, ok := record.String(key); ok {
			result[s]++
		}
	}
	return result
}

// Analyze runs the full cross-tab and percentage bundle for analytics-path
// spreadsheets.
func Analyze(records []domain.Record) *domain.AnalyticsResultData {
	return &domain.AnalyticsResultData{
		OrgTypeCrossTab:               CrossTab(records, "Assigned_Subcommittee", "Org_Type"),
		IntlCrossTab:                  CrossTab(records, "International(Y/N)", "Assigned_Subcommittee"),
		CountryCrossTab:               CrossTab(records, "Country", "Assigned_Subcommittee"),
		OrgTypePercentages:            Percentages(records, "Org_Type"),
		OrgTypeBySubcommitteeCrossTab: CrossTab(records, "Org_Type", "Assigned_Subcommittee"),
	}
}

// AnalyzeAbstractSubmissions computes the country grouping for
// abstract-submission spreadsheets.
func AnalyzeAbstractSubmissions(records []domain.Record) *domain.NonAbstractSubmissionResults {
	return &domain.NonAbstractSubmissionResults{
		CountryStats: GroupByKey(records, "Country"),
	}
}
