package obfuscate

import "testing"

func TestInspect_CleanASCII(t *testing.T) {
	res := Inspect("ls -la /tmp")
	if res.Obfuscated {
		t.Errorf("expected clean result for ASCII command, got findings: %v", res.Findings)
	}
	if res.Plain != "ls -la /tmp" {
		t.Errorf("expected plain = original, got %q", res.Plain)
	}
}

func TestInspect_ZeroWidthSplitsFlag(t *testing.T) {
	// "rm -<ZWSP>rf /" hides the rf flag from naive matching
	res := Inspect("rm -\u200Brf /")

	if !res.Obfuscated {
		t.Fatal("expected finding for zero-width space")
	}
	if res.Findings[0].Kind != KindInvisible {
		t.Errorf("expected KindInvisible, got %q", res.Findings[0].Kind)
	}
	if !res.Severe() {
		t.Error("invisible characters should be severe")
	}
	if res.Plain != "rm -rf /" {
		t.Errorf("expected plain 'rm -rf /', got %q", res.Plain)
	}
}

func TestInspect_BOM(t *testing.T) {
	res := Inspect("\uFEFFecho hello")

	if !res.Obfuscated {
		t.Fatal("expected finding for BOM")
	}
	if res.Plain != "echo hello" {
		t.Errorf("expected plain without BOM, got %q", res.Plain)
	}
}

func TestInspect_BidiOverride(t *testing.T) {
	// RTL override makes displayed text differ from executed text
	res := Inspect("echo \u202Erm -rf /\u202C safe")

	if !res.Obfuscated {
		t.Fatal("expected findings for bidi override")
	}
	foundBidi := false
	for _, f := range res.Findings {
		if f.Kind == KindBidi {
			foundBidi = true
		}
	}
	if !foundBidi {
		t.Error("expected at least one bidi finding")
	}
	if !res.Severe() {
		t.Error("bidi overrides should be severe")
	}
}

func TestInspect_CyrillicHomoglyphFolds(t *testing.T) {
	// "cаt" where а is Cyrillic U+0430, not Latin 'a'
	res := Inspect("c\u0430t secrets.txt")

	if !res.Obfuscated {
		t.Fatal("expected finding for Cyrillic homoglyph")
	}
	if res.Findings[0].Kind != KindHomoglyph {
		t.Errorf("expected KindHomoglyph, got %q", res.Findings[0].Kind)
	}
	if res.Severe() {
		t.Error("a bare homoglyph should not be severe")
	}
	if res.Plain != "cat secrets.txt" {
		t.Errorf("expected homoglyph folded to Latin, got %q", res.Plain)
	}
}

func TestInspect_GreekHomoglyph(t *testing.T) {
	// Greek omicron U+03BF instead of Latin 'o'
	res := Inspect("ech\u03BF hello")

	if !res.Obfuscated {
		t.Fatal("expected finding for Greek homoglyph")
	}
	if res.Plain != "echo hello" {
		t.Errorf("expected plain 'echo hello', got %q", res.Plain)
	}
}

func TestInspect_TagCharacters(t *testing.T) {
	res := Inspect("echo \U000E0001hello\U000E007F")

	if !res.Obfuscated {
		t.Fatal("expected findings for tag characters")
	}
	foundTag := false
	for _, f := range res.Findings {
		if f.Kind == KindTag {
			foundTag = true
		}
	}
	if !foundTag {
		t.Error("expected a tag-character finding")
	}
}

func TestInspect_ControlCharacter(t *testing.T) {
	res := Inspect("ls\x00 -la")

	if !res.Obfuscated {
		t.Fatal("expected finding for control character")
	}
	if res.Findings[0].Kind != KindControl {
		t.Errorf("expected KindControl, got %q", res.Findings[0].Kind)
	}
}

func TestInspect_AllowsTabAndNewline(t *testing.T) {
	res := Inspect("echo\thello\nworld")
	if res.Obfuscated {
		t.Errorf("tab and newline should be allowed, got findings: %v", res.Findings)
	}
}

func TestInspect_PlainNonLatinTextUnflagged(t *testing.T) {
	// Letters with no Latin look-alike are ordinary text, not findings.
	res := Inspect("echo Grüße")
	if res.Obfuscated {
		t.Errorf("expected no findings for plain non-Latin text, got %v", res.Findings)
	}
	if res.Plain != "echo Grüße" {
		t.Errorf("expected text preserved, got %q", res.Plain)
	}
}

func TestDescribe(t *testing.T) {
	res := Inspect("rm -\u200Brf\u200B /")
	got := res.Describe()
	if got != "invisible character U+200B at offset 4 (+1 more)" {
		t.Errorf("unexpected description: %q", got)
	}
}
