package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestPaths_TopLevelAndNested(t *testing.T) {
	raw := []byte(`{"file_path": "a.txt", "nested": {"target_file": "b.txt"}}`)

	got := Paths(raw)

	want := []string{"a.txt", "b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestPaths_CaseInsensitiveKeys(t *testing.T) {
	raw := []byte(`{"File_Path": "a.txt", "FILENAME": "b.txt"}`)

	got := Paths(raw)

	want := []string{"a.txt", "b.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestPaths_ListOfEdits(t *testing.T) {
	raw := []byte(`{"edits": [{"path": "x.go", "old": "a"}, {"path": "y.go", "old": "b"}]}`)

	got := Paths(raw)

	want := []string{"x.go", "y.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestPaths_IgnoresUnrecognizedKeysAndNonStrings(t *testing.T) {
	raw := []byte(`{"command": "ls", "count": 3, "file_path": 42, "content": "not a path"}`)

	if got := Paths(raw); len(got) != 0 {
		t.Errorf("expected no paths, got %v", got)
	}
}

func TestPaths_Deduplicates(t *testing.T) {
	raw := []byte(`{"file_path": "a.txt", "nested": {"path": "a.txt"}}`)

	got := Paths(raw)

	if !reflect.DeepEqual(got, []string{"a.txt"}) {
		t.Errorf("Paths() = %v, want [a.txt]", got)
	}
}

func TestPaths_DepthGuard(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString(`{"nested":`)
	}
	sb.WriteString(`{"file_path":"deep.txt"}`)
	for i := 0; i < 200; i++ {
		sb.WriteString(`}`)
	}

	// Must terminate without panicking; the over-deep path is dropped.
	if got := Paths([]byte(sb.String())); len(got) != 0 {
		t.Errorf("expected over-deep path to be dropped, got %v", got)
	}
}

func TestPaths_MalformedJSON(t *testing.T) {
	raw := []byte(`{"file_path": "a.txt", "broken": `)

	got := Paths(raw)

	if !reflect.DeepEqual(got, []string{"a.txt"}) {
		t.Errorf("expected partial results, got %v", got)
	}
}

func TestCommandPaths_SeparatorsAndPrefixes(t *testing.T) {
	got := CommandPaths("cat /etc/hosts ~/.ssh/config ./local.txt $HOME/x -v", nil)

	want := []string{"/etc/hosts", "~/.ssh/config", "./local.txt", "$HOME/x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommandPaths() = %v, want %v", got, want)
	}
}

func TestCommandPaths_SkipsFlagsAndBareWords(t *testing.T) {
	got := CommandPaths("grep -r pattern src/main.go", nil)

	want := []string{"src/main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommandPaths() = %v, want %v", got, want)
	}
}

func TestCommandPaths_SensitiveBareWord(t *testing.T) {
	isKey := func(tok string) bool { return tok == "id_rsa" }

	got := CommandPaths("cat id_rsa", isKey)

	want := []string{"id_rsa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommandPaths() = %v, want %v", got, want)
	}
}

func TestCommandPaths_QuotedTokenStaysWhole(t *testing.T) {
	got := CommandPaths(`cat "/tmp/with space/file.txt"`, nil)

	want := []string{"/tmp/with space/file.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommandPaths() = %v, want %v", got, want)
	}
}

func TestCommandPaths_UnbalancedQuotesFallback(t *testing.T) {
	// Lexing fails on the unclosed quote; whitespace splitting still
	// surfaces the path token.
	got := CommandPaths(`cat /etc/passwd "unclosed`, nil)

	if len(got) == 0 || got[0] != "/etc/passwd" {
		t.Errorf("expected fallback to find /etc/passwd, got %v", got)
	}
}

func TestCommandPaths_Deduplicates(t *testing.T) {
	got := CommandPaths("cp ./a.txt ./a.txt", nil)

	if !reflect.DeepEqual(got, []string{"./a.txt"}) {
		t.Errorf("CommandPaths() = %v, want [./a.txt]", got)
	}
}
