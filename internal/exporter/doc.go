// Package exporter renders computed analysis reports into downloadable
// artifacts: CSV files (with a UTF-8 BOM for Excel compatibility), a JSON
// dump of the full result bundle, and an Excel workbook with one sheet per
// report. It has no analytics logic of its own.
package exporter
