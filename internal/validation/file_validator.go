package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the spreadsheet formats the decoder accepts.
var SupportedExtensions = []string{".xlsx", ".csv"}

// FileValidator provides source-file validation shared by the CLI and the
// upload handler.
type FileValidator struct {
	logger      *slog.Logger
	maxFileSize int64
}

// NewFileValidator creates a new file validator. maxFileSize of 0 disables
// the size check.
func NewFileValidator(logger *slog.Logger, maxFileSize int64) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// ValidateFilename checks that the name has a supported spreadsheet
// extension and no path traversal.
func (v *FileValidator) ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename is empty")
	}
	if strings.Contains(name, "..") || filepath.Base(name) != name {
		return fmt.Errorf("filename %s contains path separators", name)
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported file extension %s (want one of %s)",
		ext, strings.Join(SupportedExtensions, ", "))
}

// ValidateSize checks an upload's declared size against the configured cap.
func (v *FileValidator) ValidateSize(size int64) error {
	if v.maxFileSize > 0 && size > v.maxFileSize {
		return fmt.Errorf("file size %d exceeds maximum %d bytes", size, v.maxFileSize)
	}
	return nil
}

// ValidateInputFile checks that a local path exists, is a regular file with
// a supported extension, and fits the size cap.
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("input file does not exist", slog.String("path", path))
		return fmt.Errorf("input file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if err := v.ValidateFilename(filepath.Base(path)); err != nil {
		return err
	}
	if err := v.ValidateSize(info.Size()); err != nil {
		return err
	}

	v.logger.Info("input file validated",
		slog.String("path", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists or can be
// created, and is writable.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)
	return nil
}
