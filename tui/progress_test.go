package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressWriter_SilentWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	pw := NewProgressWriter(&buf, false)

	pw.Update("waiting for checks... (%s)", "09:30:00")
	pw.Clear()

	if got := buf.String(); got != "" {
		t.Fatalf("expected no output on non-terminal writer, got %q", got)
	}
}

func TestProgressWriter_UpdateRewritesLine(t *testing.T) {
	var buf bytes.Buffer
	pw := &ProgressWriter{w: &buf, color: NewColorizer(false), isTerminal: true}

	pw.Update("waiting for checks... (%s)", "09:30:00")

	got := buf.String()
	if !strings.HasPrefix(got, clearLineReturn) {
		t.Fatalf("expected update to clear the line first, got %q", got)
	}
	if !strings.Contains(got, "waiting for checks... (09:30:00)") {
		t.Fatalf("expected progress text in output, got %q", got)
	}
}

func TestProgressWriter_Clear(t *testing.T) {
	var buf bytes.Buffer
	pw := &ProgressWriter{w: &buf, color: NewColorizer(false), isTerminal: true}

	pw.Update("working")
	buf.Reset()
	pw.Clear()

	if got := buf.String(); got != clearLineReturn {
		t.Fatalf("expected clear sequence, got %q", got)
	}
}
