package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/quiltmoor/passgit/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Random entry id.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	Operation string `json:"op"`   // Operation name: add, remove, rename, sync, init, clone.
	Store     string `json:"root"` // Store root the operation ran against.

	// Optional fields depending on operation.
	Name    string `json:"name,omitempty"`    // Entry name for add/remove.
	OldName string `json:"old,omitempty"`     // Rename source.
	NewName string `json:"new,omitempty"`     // Rename destination.
	Remote  string `json:"remote,omitempty"`  // Remote involved in sync/clone.
	Outcome string `json:"outcome,omitempty"` // Failure classification for sync.
}

// Log appends an entry to the audit log.
// If logging fails it is silently skipped; operations must not fail just
// because audit logging failed. The log lives under the user config
// directory, never inside the synced store repository.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	path := LogPath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file, or empty string when the
// config directory cannot be resolved.
func LogPath() string {
	dir, err := configs.ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "audit.jsonl")
}
