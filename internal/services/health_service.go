package services

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"confpulse/internal/config"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	paths     config.PathsConfig
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(version string, paths config.PathsConfig, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		paths:     paths,
		startTime: time.Now(),
		logger:    logger,
	}
}

// Check reports overall service health. The service degrades rather than
// fails when the reports directory is unavailable: analysis still works,
// only disk exports would fail.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   s.version,
		Runtime: map[string]interface{}{
			"go_version":     runtime.Version(),
			"os":             runtime.GOOS,
			"arch":           runtime.GOARCH,
			"goroutines":     runtime.NumGoroutine(),
			"uptime_seconds": time.Since(s.startTime).Seconds(),
		},
		Services: map[string]interface{}{},
	}

	if _, err := os.Stat(s.paths.ReportsDir); err != nil {
		status.Status = "degraded"
		status.Services["reports_dir"] = map[string]string{
			"status":  "unavailable",
			"message": err.Error(),
		}
		s.logger.WarnContext(ctx, "reports directory unavailable",
			slog.String("reports_dir", s.paths.ReportsDir),
			slog.String("error", err.Error()))
	} else {
		status.Services["reports_dir"] = map[string]string{"status": "ok"}
	}

	return status
}

// Ready reports whether the service can accept uploads.
func (s *HealthService) Ready(ctx context.Context) bool {
	return true
}
