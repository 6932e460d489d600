// Package audit persists an append-only record of reasoning-engine responses
// and capability invocations for one task.
//
// Records are addressed by a source name (agent or capability) plus a
// store-wide monotonically increasing sequence number, so interleaved
// activity from concurrent tool calls stays globally ordered on disk.
//
// Scope limitation: one Store serves one task at a time. Reset discards
// everything under the store root, so two tasks sharing a Store would
// clobber each other; the process runs a single task end to end.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultRoot is where cmd/agent keeps task records.
const DefaultRoot = ".agent/messages"

// Store is a per-session append-only sink with an explicit sequence counter.
type Store struct {
	mu   sync.Mutex
	root string
	seq  int
}

// NewStore returns a Store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultRoot
	}
	return &Store{root: dir}
}

// Reset wipes the store root and restarts the sequence at 1. Called at the
// start of every new task.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("audit: clear %s: %w", s.root, err)
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("audit: recreate %s: %w", s.root, err)
	}
	s.seq = 0
	return nil
}

// Write persists one record under source, assigning it the next sequence
// number. Filenames sort in write order: NNNNN_<source>_message.json; five
// digits keeps lexical order intact for a full 100-round task with
// multi-call batches.
func (s *Store) Write(source string, record any) error {
	b, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("audit: marshal record for %s: %w", source, err)
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	dir := filepath.Join(s.root, source)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("audit: mkdir %s: %w", dir, err)
	}

	name := fmt.Sprintf("%05d_%s_message.json", seq, source)
	if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
		return fmt.Errorf("audit: write %s: %w", name, err)
	}
	return nil
}

// Seq returns the last assigned sequence number.
func (s *Store) Seq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}
