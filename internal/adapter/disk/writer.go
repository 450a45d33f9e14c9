// Package disk persists the run artifacts: the date-stamped PDF, its
// fixed-name latest copy, and the JSON summary record the dashboard polls.
package disk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rcolinpr/arecibo-weather-monitor/internal/domain"
)

// Fixed artifact names. The dashboard and the report archive link both
// paths, so they never change between runs.
const (
	latestName  = "reporte_mas_reciente.pdf"
	summaryName = "reporte_info.json"
)

// Writer writes report artifacts under a single output directory.
// It implements pipeline.ArtifactWriter.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter creates an artifact writer rooted at dir. The directory is
// created on first write if absent.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// WriteDocument writes the dated PDF archive file.
func (w *Writer) WriteDocument(name string, data []byte) error {
	if err := w.ensureDir(); err != nil {
		return err
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	w.logger.Info("document written", "path", path, "bytes", len(data))
	return nil
}

// CopyLatest duplicates the named document to the fixed latest path. It is
// a copy, not a move: the dated archive stays behind as history.
func (w *Writer) CopyLatest(name string) error {
	data, err := os.ReadFile(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("read document for copy: %w", err)
	}
	path := filepath.Join(w.dir, latestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("copy latest: %w", err)
	}
	w.logger.Info("latest copy written", "path", path)
	return nil
}

// WriteSummary writes the dashboard summary record. The write goes through
// a temp file and a rename because the dashboard polls the fixed path and
// must never observe a partial file.
func (w *Writer) WriteSummary(rec domain.ReportRecord) error {
	if err := w.ensureDir(); err != nil {
		return err
	}

	data, err := encodeSummary(rec)
	if err != nil {
		return err
	}

	path := filepath.Join(w.dir, summaryName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write summary tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename summary: %w", err)
	}
	w.logger.Info("summary written", "path", path)
	return nil
}

// encodeSummary marshals the record with HTML escaping off so URLs in the
// record stay readable, matching what the dashboard parser expects.
func encodeSummary(rec domain.ReportRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) ensureDir() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
