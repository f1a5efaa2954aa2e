// Package backup reads and writes goal collections as portable JSON
// files, for moving data between machines or keeping snapshots outside
// the database.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FileVersion is written into every export and checked on import.
const FileVersion = 1

// File is the top-level JSON structure of a backup.
type File struct {
	Version    int                         `json:"version"`
	ExportedAt string                      `json:"exported_at"`
	Goals      []GoalExport                `json:"goals"`
	History    map[string][]SnapshotExport `json:"history,omitempty"`
}

// GoalExport mirrors the stored goal shape: deadlines as calendar
// dates, progress on the 0-100 scale.
type GoalExport struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Target      float64  `json:"target"`
	Current     float64  `json:"current"`
	Deadline    string   `json:"deadline"`
	Progress    float64  `json:"progress"`
	Category    string   `json:"category"`
	Notes       string   `json:"notes,omitempty"`
	Comments    []string `json:"comments,omitempty"`
}

// SnapshotExport is one history point of a goal.
type SnapshotExport struct {
	Date     string  `json:"date"`
	Progress float64 `json:"progress"`
}

// ReadFile loads and parses a backup file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &f, nil
}

// WriteFile serializes a backup to disk with indentation so exports
// stay diffable.
func WriteFile(path string, f *File) error {
	f.Version = FileVersion
	if f.ExportedAt == "" {
		f.ExportedAt = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing backup file: %w", err)
	}
	return nil
}
