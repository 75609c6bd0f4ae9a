package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"order-analytics-service/internal/analytics/core/domain"
)

// Result describes one written report file.
type Result struct {
	ReportID string `json:"report_id"`
	Path     string `json:"path"`
}

// JSONExporter writes a dashboard report as an indented JSON file with
// a uuid report id and a timestamped filename.
type JSONExporter struct {
	dir string
	now func() time.Time
}

func NewJSONExporter(dir string) *JSONExporter {
	return &JSONExporter{dir: dir, now: time.Now}
}

func (e *JSONExporter) ExportReport(report *domain.DashboardReport) (Result, error) {
	id := uuid.NewString()
	name := fmt.Sprintf("dashboard_%s_%s.json", e.now().Format("20060102_150405"), id[:8])
	path := filepath.Join(e.dir, name)

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create export folder: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	payload := struct {
		ReportID string                  `json:"report_id"`
		Report   *domain.DashboardReport `json:"report"`
	}{ReportID: id, Report: report}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return Result{}, fmt.Errorf("failed to write export JSON: %w", err)
	}

	return Result{ReportID: id, Path: path}, nil
}
