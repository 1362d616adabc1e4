// Command analyzer runs the submission analysis pipeline over a single
// spreadsheet and writes the result bundle to the reports directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"confpulse/internal/config"
	"confpulse/internal/infrastructure"
	"confpulse/internal/services"
	"confpulse/pkg/contracts"
)

func main() {
	inFile := flag.String("in", "", "input spreadsheet (.xlsx or .csv)")
	outDir := flag.String("out", "", "output directory for reports (defaults to data/reports)")
	writeCSV := flag.Bool("csv", true, "write review summary CSVs when the input is a review sheet")
	writeJSON := flag.Bool("json", true, "write the full result bundle as JSON")
	writeXLSX := flag.Bool("xlsx", false, "write the full result bundle as an Excel workbook")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: analyzer -in <file.xlsx|file.csv> [-out <dir>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}
	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("failed to create directories", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	service := services.NewAnalyticsService(cfg, logger)

	report, err := service.ProcessFile(*inFile)
	if err != nil {
		logger.Error("analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("analysis complete",
		slog.String("source_file", report.SourceFile),
		slog.Bool("has_analytics", report.Analytics != nil),
		slog.Bool("has_abstract", report.Abstract != nil),
		slog.Int("review_summaries", len(report.PreAbstractReview)),
		slog.Bool("has_review_status", report.PaperReviewStatus != nil))

	if *writeCSV && len(report.PreAbstractReview) > 0 {
		count, err := service.ExportReviewCSVs(context.Background())
		if err != nil {
			logger.Error("review CSV export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("wrote review summary CSVs", slog.Int("summaries", count))
	}

	if *writeJSON {
		path, err := service.ExportJSON("analysis_report.json")
		if err != nil {
			logger.Error("JSON export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("wrote JSON report", slog.String("path", path))
	}

	if *writeXLSX {
		path, err := service.ExportWorkbook("analysis_report.xlsx")
		if err != nil {
			logger.Error("workbook export failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("wrote workbook", slog.String("path", path))
	}
}
