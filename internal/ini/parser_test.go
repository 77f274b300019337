package ini

import (
	"strings"
	"testing"
)

func TestParseGlobalAndSections(t *testing.T) {
	src := `
root = true
; a comment before any section

[*.go]
indent_style = tab
indent_size = 4

[*.md]
trim_trailing_whitespace = false
`
	f, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !f.IsRoot {
		t.Fatalf("expected IsRoot true")
	}
	if len(f.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(f.Sections))
	}
	if f.Sections[0].Name != "*.go" {
		t.Fatalf("expected first section *.go, got %q", f.Sections[0].Name)
	}
	p, ok := f.Sections[0].Get("indent_size")
	if !ok || p.Value != "4" {
		t.Fatalf("expected indent_size=4, got %+v", p)
	}
}

func TestParseLineNumbersAdvanceOnSkippedLines(t *testing.T) {
	src := "not a valid line without equals or brackets\n[*.js]\nkey=value\n"
	f, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(f.Sections))
	}
	section := f.Sections[0]
	if len(section.Lines) != 2 {
		t.Fatalf("expected 2 recorded lines, got %d", len(section.Lines))
	}
	if section.Lines[0].Number != 2 {
		t.Fatalf("expected section header on line 2, got %d", section.Lines[0].Number)
	}
	if section.Lines[1].Number != 3 {
		t.Fatalf("expected property on line 3, got %d", section.Lines[1].Number)
	}
}

func TestParseColonSeparator(t *testing.T) {
	f, err := Parse(strings.NewReader("[*]\nkey : value with spaces\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, ok := f.Sections[0].Get("key")
	if !ok || p.Value != "value with spaces" {
		t.Fatalf("expected key=%q, got %+v", "value with spaces", p)
	}
}

func TestParseInlineCommentStrippedFromValue(t *testing.T) {
	f, err := Parse(strings.NewReader("[*]\nindent_size = 2 # two spaces\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, ok := f.Sections[0].Get("indent_size")
	if !ok || p.Value != "2" {
		t.Fatalf("expected indent_size=2, got %+v", p)
	}
}

func TestParseRootFalse(t *testing.T) {
	f, err := Parse(strings.NewReader("root = false\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.IsRoot {
		t.Fatalf("expected IsRoot false")
	}
}

func TestParseLastPropertyWinsWithinSection(t *testing.T) {
	f, err := Parse(strings.NewReader("[*]\nindent_size = 2\nindent_size = 4\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, _ := f.Sections[0].Get("indent_size")
	if p.Value != "4" {
		t.Fatalf("expected last value to win, got %q", p.Value)
	}
	if len(f.Sections[0].Keys()) != 1 {
		t.Fatalf("expected a single key retained, got %v", f.Sections[0].Keys())
	}
}
