package gateway

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payment-reconciler/internal/domain"
)

func TestFileReportWriter_WriteReports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	result := &domain.ReconciliationResult{
		ProcessedAt:   time.Date(2026, 2, 9, 18, 30, 5, 0, time.Local),
		TotalPayments: 1,
		TotalRejected: 1,
		Items:         []domain.ReconciledItem{{BranchCode: "10", OrderNumber: "200", Customer: "B", Status: domain.StatusRejected}},
	}

	paths, err := NewFileReportWriter(dir).WriteReports(context.Background(), result)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "reconciliation_20260209_183005.json"),
		filepath.Join(dir, "reconciliation_20260209_183005.txt"),
	}, paths)

	b, err := os.ReadFile(paths[0])
	assert.NoError(t, err)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, float64(1), decoded["totalRejected"])

	text, err := os.ReadFile(paths[1])
	assert.NoError(t, err)
	assert.Contains(t, string(text), "REJECTED ORDERS")
}

func TestFileReportWriter_WriteReportsCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	result := &domain.ReconciliationResult{ProcessedAt: time.Date(2026, 2, 9, 18, 30, 5, 0, time.Local)}

	// Directories squatting on the report names make both writes fail.
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "reconciliation_20260209_183005.json"), 0o755))
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "reconciliation_20260209_183005.txt"), 0o755))

	paths, err := NewFileReportWriter(dir).WriteReports(context.Background(), result)
	assert.Error(t, err)
	assert.Empty(t, paths)
	assert.Contains(t, err.Error(), "2 errors occurred")
}
