package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"confpulse/pkg/contracts/domain"
)

// WriteJSON dumps the full result bundle as indented JSON at path.
// The file is written atomically via a temp file rename.
func WriteJSON(path string, report *domain.AnalysisReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize report: %w", err)
	}
	return nil
}
