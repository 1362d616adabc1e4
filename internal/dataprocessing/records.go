package dataprocessing

import "confpulse/pkg/contracts/domain"

// BuildRecords zips each data row against the canonical header sequence.
// A row value beyond the header count is dropped; a header beyond the row's
// length stays absent from the record. No validation happens here.
func BuildRecords(headers []string, rows [][]domain.Cell) []domain.Record {
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		record := make(domain.Record, len(headers))
		for i, header := range headers {
			if i >= len(row) {
				break
			}
			record[header] = row[i]
		}
		records = append(records, record)
	}
	return records
}
