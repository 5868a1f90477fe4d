package hookio

import (
	"testing"
)

func TestEvent_Command(t *testing.T) {
	ev := &Event{ToolName: "Bash", RawPayload: []byte(`{"command": "ls -la"}`)}

	if got := ev.Command(); got != "ls -la" {
		t.Errorf("Command() = %q, want %q", got, "ls -la")
	}
}

func TestEvent_CommandAbsent(t *testing.T) {
	ev := &Event{ToolName: "Bash", RawPayload: []byte(`{"other": 1}`)}

	if got := ev.Command(); got != "" {
		t.Errorf("Command() = %q, want empty", got)
	}
}

func TestEvent_FilePath(t *testing.T) {
	ev := &Event{ToolName: "Edit", RawPayload: []byte(`{"file_path": "a.txt", "old_string": "x"}`)}

	if got := ev.FilePath(); got != "a.txt" {
		t.Errorf("FilePath() = %q, want %q", got, "a.txt")
	}
}

func TestReadEvent_EnvForm(t *testing.T) {
	t.Setenv("TOOL_NAME", "Write")
	t.Setenv("TOOL_INPUT", `{"file_path": "b.txt", "content": "hi"}`)

	ev, err := ReadEvent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.ToolName != "Write" {
		t.Errorf("ToolName = %q, want Write", ev.ToolName)
	}
	if ev.FilePath() != "b.txt" {
		t.Errorf("FilePath() = %q, want b.txt", ev.FilePath())
	}
}

func TestReadEvent_InvalidEnvJSON(t *testing.T) {
	t.Setenv("TOOL_NAME", "Bash")
	t.Setenv("TOOL_INPUT", "{not json")

	if _, err := ReadEvent(); err == nil {
		t.Fatal("expected error for invalid TOOL_INPUT")
	}
}
