package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/report"
)

const reportTimestampLayout = "20060102_150405"

// FileReportWriter writes the JSON and text reports of a run into a directory.
type FileReportWriter struct {
	dir string
}

func NewFileReportWriter(dir string) *FileReportWriter {
	return &FileReportWriter{dir: dir}
}

// WriteReports writes both reports, returning the paths written. A failure
// of one report does not prevent the other.
func (w *FileReportWriter) WriteReports(ctx context.Context, result *domain.ReconciliationResult) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report dir %s: %w", w.dir, err)
	}

	base := filepath.Join(w.dir, "reconciliation_"+result.ProcessedAt.Format(reportTimestampLayout))

	var (
		paths []string
		errs  *multierror.Error
	)

	jsonPath := base + ".json"
	if b, err := report.JSON(result); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to write %s: %w", jsonPath, err))
	} else {
		paths = append(paths, jsonPath)
	}

	textPath := base + ".txt"
	if err := os.WriteFile(textPath, []byte(report.RenderText(result)), 0o644); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("failed to write %s: %w", textPath, err))
	} else {
		paths = append(paths, textPath)
	}

	return paths, errs.ErrorOrNil()
}
