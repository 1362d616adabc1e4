package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "confpulse/internal/errors"
	"confpulse/internal/exporter"
	"confpulse/internal/services"
)

// uploadFormField is the multipart form field carrying the spreadsheet.
const uploadFormField = "file"

// AnalyticsHandler handles spreadsheet upload and result retrieval requests
type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxFileSize  int64
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxFileSize int64) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "analytics_handler")),
		errorHandler: errorHandler,
		maxFileSize:  maxFileSize,
	}
}

// Routes returns the analytics routes
func (h *AnalyticsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/upload", h.Upload)
	r.Get("/results", h.GetResults)
	r.Get("/results/reviews.csv", h.DownloadReviewCSV)

	r.Route("/exports", func(r chi.Router) {
		r.Post("/reviews", h.ExportReviews)
		r.Post("/workbook", h.ExportWorkbook)
		r.Post("/json", h.ExportJSON)
	})

	return r
}

// Upload handles POST /api/analytics/upload. It accepts one spreadsheet in
// the "file" multipart field, runs the full analysis, and responds with the
// new result bundle.
func (h *AnalyticsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation(uploadFormField,
			fmt.Sprintf("missing or unreadable %q form field", uploadFormField)))
		return
	}
	defer file.Close()

	h.logger.InfoContext(r.Context(), "upload received",
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size))

	report, err := h.service.ProcessUpload(r.Context(), file, header.Filename, header.Size)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, report)
}

// GetResults handles GET /api/analytics/results and returns the latest
// result bundle.
func (h *AnalyticsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	report := h.service.Latest()
	if report == nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrNoResults)
		return
	}
	render.JSON(w, r, report)
}

// DownloadReviewCSV handles GET /api/analytics/results/reviews.csv and
// streams the latest review summaries as a CSV attachment.
func (h *AnalyticsHandler) DownloadReviewCSV(w http.ResponseWriter, r *http.Request) {
	report := h.service.Latest()
	if report == nil || len(report.PreAbstractReview) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.ErrNoResults)
		return
	}

	data, err := exporter.ReviewSummariesCSV(report.PreAbstractReview)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrExportFailed(err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="review_summaries.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportReviews handles POST /api/analytics/exports/reviews and writes the
// per-subcommittee review CSVs to the reports directory.
func (h *AnalyticsHandler) ExportReviews(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.ExportReviewCSVs(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"success":   true,
		"summaries": count,
	})
}

// ExportWorkbook handles POST /api/analytics/exports/workbook.
func (h *AnalyticsHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.ExportWorkbook("analysis_report.xlsx")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"path":    path,
	})
}

// ExportJSON handles POST /api/analytics/exports/json.
func (h *AnalyticsHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.ExportJSON("analysis_report.json")
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"path":    path,
	})
}

// handleServiceError maps service-layer sentinel errors onto API errors.
func (h *AnalyticsHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNoResults), errors.Is(err, services.ErrNoReviewSummaries):
		h.errorHandler.HandleError(w, r, apierrors.ErrNoResults)
	case errors.Is(err, services.ErrInvalidInput):
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation(uploadFormField, err.Error()))
	case errors.Is(err, services.ErrDecode):
		h.errorHandler.HandleError(w, r, apierrors.ErrDecodeFailed(err))
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}
