package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/pomotask/internal/focuslog"
	"github.com/sadopc/pomotask/internal/stats"
)

// ToCSV writes one row per focus log. titles maps task ids to titles.
func ToCSV(logs []focuslog.FocusLog, titles map[string]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Task", "Completed", "Duration (min)", "Duration", "Visibility", "Message"}); err != nil {
		return err
	}

	for _, l := range logs {
		row := []string{
			l.ID,
			taskTitle(l.TaskID, titles),
			l.CompletedAt.Local().Format(time.RFC3339),
			strconv.Itoa(l.DurationMinutes),
			stats.FormatDuration(l.DurationMinutes),
			string(l.Visibility),
			l.Message,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func taskTitle(id string, titles map[string]string) string {
	if id == "" {
		return ""
	}
	if t, ok := titles[id]; ok {
		return t
	}
	return "Unknown"
}
