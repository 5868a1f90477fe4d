// Package hookio handles the host boundary of a hook invocation:
// reading the tool event from the environment or stdin, and signaling
// the decision back through stdout and the process exit status.
//
// The host contract: exit 0 allows the tool call, exit 2 together with
// a {"decision":"block","reason":...} object on stdout blocks it, and
// exit 1 reports a hook misconfiguration.
package hookio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit statuses recognized by the host.
const (
	ExitAllow = 0
	ExitError = 1
	ExitBlock = 2
)

// Event is one tool invocation to gate. RawPayload keeps the tool
// input's original JSON bytes so extraction can preserve document
// order.
type Event struct {
	ToolName   string
	RawPayload []byte
}

// stdinEvent is the Claude Code PreToolUse stdin form.
type stdinEvent struct {
	HookEventName string          `json:"hook_event_name"`
	ToolName      string          `json:"tool_name"`
	ToolInput     json.RawMessage `json:"tool_input"`
}

// ErrNoEvent means neither stdin nor the environment carried an event
// descriptor.
var ErrNoEvent = errors.New("no tool event: TOOL_INPUT not set and stdin empty")

// ReadEvent reads the tool event for this invocation. A piped stdin
// carrying the Claude Code JSON form wins; otherwise the
// TOOL_NAME/TOOL_INPUT environment form is used.
func ReadEvent() (*Event, error) {
	if ev, ok := readStdinEvent(); ok {
		return ev, nil
	}

	toolInput, ok := os.LookupEnv("TOOL_INPUT")
	if !ok {
		return nil, ErrNoEvent
	}
	if !json.Valid([]byte(toolInput)) {
		return nil, fmt.Errorf("TOOL_INPUT is not valid JSON")
	}

	return &Event{
		ToolName:   os.Getenv("TOOL_NAME"),
		RawPayload: []byte(toolInput),
	}, nil
}

func readStdinEvent() (*Event, bool) {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil, false
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var in stdinEvent
	if err := json.Unmarshal(data, &in); err != nil || in.ToolName == "" {
		return nil, false
	}

	return &Event{ToolName: in.ToolName, RawPayload: in.ToolInput}, true
}

// Command returns the "command" string field of a Bash tool payload,
// or "" when absent.
func (e *Event) Command() string {
	var payload struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(e.RawPayload, &payload); err != nil {
		return ""
	}
	return payload.Command
}

// FilePath returns the top-level "file_path" field of a file-oriented
// tool payload, or "" when absent.
func (e *Event) FilePath() string {
	var payload struct {
		FilePath string `json:"file_path"`
	}
	if err := json.Unmarshal(e.RawPayload, &payload); err != nil {
		return ""
	}
	return payload.FilePath
}

// blockResponse is the machine-readable block object.
type blockResponse struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// Block writes the block object to stdout and exits with the block
// status. It does not return.
func Block(reason string) {
	data, _ := json.Marshal(blockResponse{Decision: "block", Reason: reason})
	fmt.Println(string(data))
	os.Exit(ExitBlock)
}

// Fatal writes a diagnostic to stderr and exits with the error status.
// It does not return.
func Fatal(hook, format string, args ...any) {
	Errorf(hook, format, args...)
	os.Exit(ExitError)
}

// Errorf writes a hook-prefixed error line to stderr.
func Errorf(hook, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[hookgate:%s] ERROR: %s\n", hook, fmt.Sprintf(format, args...))
}

// Infof writes a hook-prefixed info line to stderr.
func Infof(hook, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[hookgate:%s] INFO: %s\n", hook, fmt.Sprintf(format, args...))
}

// Warnf writes a hook-prefixed warning line to stderr.
func Warnf(hook, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[hookgate:%s] WARN: %s\n", hook, fmt.Sprintf(format, args...))
}
