package memory

import (
	"path/filepath"
	"testing"
)

func TestTranscript_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")

	if err := AppendTask(path, "list files", "3 files found"); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}
	if err := AppendTask(path, "read config", "done"); err != nil {
		t.Fatalf("AppendTask: %v", err)
	}

	records, err := LoadTranscript(path)
	if err != nil {
		t.Fatalf("LoadTranscript: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count: %d", len(records))
	}
	if records[0].Task != "list files" || records[1].Result != "done" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if records[0].FinishedAt == "" {
		t.Fatal("missing timestamp")
	}
}

func TestLoadTranscript_MissingFileIsEmpty(t *testing.T) {
	records, err := LoadTranscript(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records, got %+v", records)
	}
}
