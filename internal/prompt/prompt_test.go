package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDecorate(t *testing.T) {
	dir := t.TempDir()

	decorated, err := Decorate(dir, "Draft chapter 1")
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}

	date := time.Now().Format("2006-01-02")
	if !strings.Contains(decorated, date) {
		t.Errorf("decorated = %q, want today's date", decorated)
	}
	if !strings.HasSuffix(decorated, "\n\nDraft chapter 1") {
		t.Errorf("decorated = %q, want original prompt at the end", decorated)
	}
}

func TestDecorate_AppendsToLog(t *testing.T) {
	dir := t.TempDir()

	if _, err := Decorate(dir, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := Decorate(dir, "second"); err != nil {
		t.Fatal(err)
	}

	entries, err := History(dir)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].OriginalPrompt != "first" || entries[1].OriginalPrompt != "second" {
		t.Errorf("entries = %+v, want oldest first", entries)
	}
	if entries[0].Date != time.Now().Format("2006-01-02") {
		t.Errorf("Date = %q", entries[0].Date)
	}

	if _, err := os.Stat(filepath.Join(dir, LogFile)); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}

func TestHistory_MissingLog(t *testing.T) {
	entries, err := History(t.TempDir())
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}
