package memory

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

// TaskRecord is a minimal persisted view of one completed task.
type TaskRecord struct {
	Task       string `json:"task"`
	Result     string `json:"result"`
	FinishedAt string `json:"finished_at,omitempty"`
}

func LoadTranscript(path string) ([]TaskRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var records []TaskRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func SaveTranscript(path string, records []TaskRecord) error {
	b, err := json.MarshalIndent(records, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppendTask loads the transcript, appends one record stamped with the
// current time, and saves it back.
func AppendTask(path, task, result string) error {
	records, err := LoadTranscript(path)
	if err != nil {
		return err
	}
	records = append(records, TaskRecord{
		Task:       task,
		Result:     result,
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return SaveTranscript(path, records)
}
