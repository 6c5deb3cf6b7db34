package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sadopc/pomotask/internal/focuslog"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Result describes a written export file.
type Result struct {
	Path  string
	Bytes int64
	Count int
}

// FileName is pomotask-<timestamp>.<ext>.
func FileName(format Format, now time.Time) string {
	return fmt.Sprintf("pomotask-%s.%s", now.Format("20060102-150405"), format)
}

// Write exports logs into dir and reports the file it created.
func Write(format Format, dir string, logs []focuslog.FocusLog, titles map[string]string, now time.Time) (Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(format, now))

	var err error
	switch format {
	case FormatCSV:
		err = ToCSV(logs, titles, path)
	case FormatJSON:
		err = ToJSON(logs, titles, path)
	default:
		return Result{}, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return Result{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat export file: %w", err)
	}
	return Result{Path: path, Bytes: info.Size(), Count: len(logs)}, nil
}
