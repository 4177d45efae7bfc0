package leaderboard

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store abstracts where a level's leaderboard lives. Boards receive a
// Store through their constructor, never a global path.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
	Clear() error
}

// FileStore persists the leaderboard in a level file's trailer: the
// lines after the two header lines and the R board rows. Save and
// Clear rewrite only the trailer and leave the level itself untouched.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given level file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the trailer entries from the level file.
func (s *FileStore) Load() ([]Entry, error) {
	_, trailer, err := s.readSplit()
	if err != nil {
		return nil, err
	}
	return ParseEntries(trailer)
}

// Save rewrites the trailer with the given entries.
func (s *FileStore) Save(entries []Entry) error {
	head, _, err := s.readSplit()
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(head)+len(entries))
	lines = append(lines, head...)
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}

	return s.write(lines)
}

// Clear truncates the trailer, keeping only the level itself.
func (s *FileStore) Clear() error {
	head, _, err := s.readSplit()
	if err != nil {
		return err
	}
	return s.write(head)
}

// readSplit returns the level head (headers plus board rows) and the
// trailer lines.
func (s *FileStore) readSplit() (head, trailer []string, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read level file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 1 {
		return nil, nil, fmt.Errorf("level file %s is empty", s.path)
	}

	rows, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, nil, fmt.Errorf("level file %s has a non-integer row count: %w", s.path, err)
	}

	headLen := rows + 2
	if len(lines) < headLen {
		return nil, nil, fmt.Errorf("level file %s is truncated: expected %d header and board lines, got %d", s.path, headLen, len(lines))
	}

	return lines[:headLen], lines[headLen:], nil
}

func (s *FileStore) write(lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write level file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	entries []Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(entries ...Entry) *MemoryStore {
	return &MemoryStore{entries: entries}
}

func (s *MemoryStore) Load() ([]Entry, error) {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) Save(entries []Entry) error {
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.entries = nil
	return nil
}
