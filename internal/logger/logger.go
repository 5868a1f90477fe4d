// Package logger appends hook decisions to a JSONL audit trail.
// Entries are redacted before hitting disk. Audit failures must never
// fail a hook; callers log a warning and move on.
package logger

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/askeland/hookgate/internal/redact"
)

// AuditEvent is one logged hook decision.
type AuditEvent struct {
	Timestamp string   `json:"timestamp"`
	Hook      string   `json:"hook"`
	ToolName  string   `json:"tool_name,omitempty"`
	Command   string   `json:"command,omitempty"`
	Paths     []string `json:"paths,omitempty"`
	Decision  string   `json:"decision"`
	Reason    string   `json:"reason,omitempty"`
	Allowlist bool     `json:"allowlist,omitempty"`
}

// AuditLogger appends events to a file, one JSON object per line.
type AuditLogger struct {
	file *os.File
	mu   sync.Mutex
}

// New opens (or creates) the audit log for appending. An empty path
// returns a nil logger, on which Log and Close are no-ops.
func New(path string) (*AuditLogger, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return &AuditLogger{file: file}, nil
}

// Log redacts and appends one event.
func (l *AuditLogger) Log(event AuditEvent) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	event.Command = redact.String(event.Command)
	event.Paths = redact.Strings(event.Paths)
	if event.Reason != "" {
		event.Reason = redact.String(event.Reason)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

// Close releases the underlying file.
func (l *AuditLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
