// Package export writes a rendered listing table to a downloadable CSV
// file: the currently visible rows, in their current display order.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"careboard/internal/domain"
)

// WriteTable writes columns plus rows to a timestamped CSV file in dir and
// returns the file path and its size in bytes.
func WriteTable(dir string, t domain.Table, rows []domain.Row) (string, int64, error) {
	name := fmt.Sprintf("careboard_%ss_%s.csv", t.Entity, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Cells); err != nil {
			f.Close()
			return "", 0, fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("failed to flush export: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close export file: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat export file: %w", err)
	}

	return path, st.Size(), nil
}
