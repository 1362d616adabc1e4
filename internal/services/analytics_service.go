package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"confpulse/internal/config"
	"confpulse/internal/dataprocessing"
	"confpulse/internal/exporter"
	"confpulse/internal/validation"
	"confpulse/pkg/contracts/domain"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confpulse_uploads_total",
		Help: "Number of spreadsheet uploads processed, by outcome",
	}, []string{"status"})

	rowsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confpulse_rows_processed_total",
		Help: "Number of data rows processed across all uploads",
	})

	anomaliesDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confpulse_status_anomalies_total",
		Help: "Number of review-status anomalies detected across all uploads",
	})

	processingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "confpulse_processing_duration_seconds",
		Help:    "Time spent decoding and analyzing one upload",
		Buckets: prometheus.DefBuckets,
	})
)

// AnalyticsService decodes uploaded submission spreadsheets, runs the report
// selection over them, and retains the most recent result bundle. A failed
// decode leaves the prior bundle intact.
type AnalyticsService struct {
	logger        *slog.Logger
	fileValidator *validation.FileValidator
	csvWriter     *exporter.CSVWriter
	excelWriter   *exporter.ExcelWriter
	mappings      map[string]string
	reportsDir    string

	mu     sync.RWMutex
	latest *domain.AnalysisReport
}

// NewAnalyticsService creates the analytics service from application config.
func NewAnalyticsService(cfg *config.Config, logger *slog.Logger) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("analytics service initialized",
		slog.String("reports_dir", cfg.Paths.ReportsDir),
		slog.Int64("max_file_size", cfg.Upload.MaxFileSize))

	return &AnalyticsService{
		logger:        logger,
		fileValidator: validation.NewFileValidator(logger, cfg.Upload.MaxFileSize),
		csvWriter:     exporter.NewCSVWriter(cfg.Paths.ReportsDir),
		excelWriter:   exporter.NewExcelWriter(logger),
		mappings:      dataprocessing.DefaultColumnMappings(),
		reportsDir:    cfg.Paths.ReportsDir,
	}
}

// ProcessUpload validates, decodes and analyzes one uploaded spreadsheet and
// installs the resulting bundle as the latest. size is the declared upload
// size in bytes.
func (s *AnalyticsService) ProcessUpload(ctx context.Context, r io.Reader, filename string, size int64) (*domain.AnalysisReport, error) {
	start := time.Now()

	if err := s.fileValidator.ValidateFilename(filename); err != nil {
		uploadsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.fileValidator.ValidateSize(size); err != nil {
		uploadsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sheet, err := dataprocessing.ParseReader(r, filename)
	if err != nil {
		uploadsTotal.WithLabelValues("decode_failed").Inc()
		s.logger.Error("failed to decode upload",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	report := dataprocessing.Process(s.logger, sheet, s.mappings)
	report.SourceFile = filepath.Base(filename)

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	s.observe(report, time.Since(start))

	select {
	case <-ctx.Done():
		return report, ctx.Err()
	default:
	}
	return report, nil
}

// ProcessFile analyzes a spreadsheet on disk and installs the result bundle
// as the latest. Used by the CLI entrypoint.
func (s *AnalyticsService) ProcessFile(path string) (*domain.AnalysisReport, error) {
	start := time.Now()

	if err := s.fileValidator.ValidateInputFile(path); err != nil {
		uploadsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sheet, err := dataprocessing.ParseFile(path)
	if err != nil {
		uploadsTotal.WithLabelValues("decode_failed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	report := dataprocessing.Process(s.logger, sheet, s.mappings)
	report.SourceFile = filepath.Base(path)

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()

	s.observe(report, time.Since(start))
	return report, nil
}

func (s *AnalyticsService) observe(report *domain.AnalysisReport, elapsed time.Duration) {
	uploadsTotal.WithLabelValues("ok").Inc()
	processingDuration.Observe(elapsed.Seconds())

	rows := 0
	if report.Validation != nil {
		rows = report.Validation.TotalRows
	} else if report.Preview != nil {
		rows = len(report.Preview.Rows)
	}
	rowsProcessed.Add(float64(rows))

	if report.PaperReviewStatus != nil {
		anomaliesDetected.Add(float64(len(report.PaperReviewStatus.Anomalies)))
	}

	s.logger.Info("upload analyzed",
		slog.String("source_file", report.SourceFile),
		slog.Duration("elapsed", elapsed),
		slog.Bool("has_analytics", report.Analytics != nil),
		slog.Bool("has_review_summaries", len(report.PreAbstractReview) > 0),
		slog.Bool("has_review_status", report.PaperReviewStatus != nil))
}

// Latest returns the most recent result bundle, or nil when nothing has been
// processed yet.
func (s *AnalyticsService) Latest() *domain.AnalysisReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// ExportReviewCSVs writes the latest review summaries to the reports
// directory, one CSV per subcommittee plus a combined file. Returns the
// number of summaries exported.
func (s *AnalyticsService) ExportReviewCSVs(ctx context.Context) (int, error) {
	report := s.Latest()
	if report == nil || len(report.PreAbstractReview) == 0 {
		return 0, ErrNoReviewSummaries
	}

	if err := s.csvWriter.WriteReviewSummaries("review_summaries.csv", report.PreAbstractReview); err != nil {
		return 0, err
	}
	if err := s.csvWriter.WriteReviewSummariesBySubcommittee(report.PreAbstractReview); err != nil {
		return 0, err
	}
	return len(report.PreAbstractReview), ctx.Err()
}

// ExportWorkbook writes the latest result bundle as an Excel workbook under
// the reports directory and returns its path.
func (s *AnalyticsService) ExportWorkbook(name string) (string, error) {
	report := s.Latest()
	if report == nil {
		return "", ErrNoResults
	}
	path := filepath.Join(s.reportsDir, name)
	if err := s.excelWriter.WriteWorkbook(path, report); err != nil {
		return "", err
	}
	return path, nil
}

// ExportJSON writes the latest result bundle as indented JSON under the
// reports directory and returns its path.
func (s *AnalyticsService) ExportJSON(name string) (string, error) {
	report := s.Latest()
	if report == nil {
		return "", ErrNoResults
	}
	path := filepath.Join(s.reportsDir, name)
	if err := exporter.WriteJSON(path, report); err != nil {
		return "", err
	}
	return path, nil
}
