package adapters

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hireboard/internal/logging/types"
)

// FormatEntry renders a log entry in the requested format. Unknown formats
// fall back to JSON.
func FormatEntry(entry *types.LogEntry, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text":
		return formatText(entry), nil
	default:
		return formatJSON(entry)
	}
}

func formatJSON(entry *types.LogEntry) (string, error) {
	logData := map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Timestamp.Format(time.RFC3339),
	}

	for k, v := range entry.Fields {
		logData[k] = v
	}

	data, err := json.Marshal(logData)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func formatText(entry *types.LogEntry) string {
	timestamp := entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00")
	level := strings.ToUpper(entry.Level.String())

	output := fmt.Sprintf("%s [%s] %s", timestamp, level, entry.Message)

	if len(entry.Fields) > 0 {
		var fields []string
		for k, v := range entry.Fields {
			fields = append(fields, fmt.Sprintf("%s=%v", k, v))
		}
		output += " " + strings.Join(fields, " ")
	}

	return output
}
