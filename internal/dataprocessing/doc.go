// Package dataprocessing implements the submission analytics core: header
// canonicalization, record building, the aggregation computations
// (cross-tabulation, percentage distribution, pre-abstract review summaries,
// paper review status statistics) and the report selector that decides which
// computations apply to an uploaded spreadsheet.
//
// Everything in this package is a pure in-memory transform over the decoder
// output; file I/O lives in parser.go and the exporter package.
package dataprocessing
