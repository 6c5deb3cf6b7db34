package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/stats"
)

type jsonExport struct {
	ExportedAt   string      `json:"exported_at"`
	Count        int         `json:"count"`
	TotalMinutes int         `json:"total_minutes"`
	Logs         []jsonEntry `json:"logs"`
}

type jsonEntry struct {
	ID          string `json:"id"`
	TaskID      string `json:"task_id,omitempty"`
	Task        string `json:"task,omitempty"`
	CompletedAt string `json:"completed_at"`
	DurationMin int    `json:"duration_minutes"`
	Duration    string `json:"duration"`
	Visibility  string `json:"visibility"`
	Message     string `json:"message,omitempty"`
}

func ToJSON(logs []focuslog.FocusLog, titles map[string]string, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(logs),
	}

	for _, l := range logs {
		export.TotalMinutes += l.DurationMinutes
		export.Logs = append(export.Logs, jsonEntry{
			ID:          l.ID,
			TaskID:      l.TaskID,
			Task:        taskTitle(l.TaskID, titles),
			CompletedAt: l.CompletedAt.Local().Format(time.RFC3339),
			DurationMin: l.DurationMinutes,
			Duration:    stats.FormatDuration(l.DurationMinutes),
			Visibility:  string(l.Visibility),
			Message:     l.Message,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
