package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"On the Nature of Widgets", "on-the-nature-of-widgets"},
		{"  Trim Me  ", "trim-me"},
		{"C++ & Go: 2 Languages!", "c-go-2-languages"},
		{"---", ""},
		{"already-slugged", "already-slugged"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSaveReference(t *testing.T) {
	dir := t.TempDir()

	ref := Reference{
		Title:  "On Widgets",
		Source: "https://example.com/widgets",
		Text:   "Widgets are small.\n",
	}
	path, err := SaveReference(dir, ref)
	if err != nil {
		t.Fatalf("SaveReference: %v", err)
	}
	if got, want := path, filepath.Join(dir, BibliographyDir, "on-widgets.md"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "# On Widgets\n") {
		t.Errorf("note should open with the title, got %q", out)
	}
	if !strings.Contains(out, "_Source: https://example.com/widgets_") {
		t.Error("note missing source line")
	}
	if !strings.Contains(out, "Widgets are small.") {
		t.Error("note missing extracted text")
	}
}

func TestSaveReference_EmptyText(t *testing.T) {
	_, err := SaveReference(t.TempDir(), Reference{Title: "Empty", Source: "x", Text: "  \n "})
	if err == nil {
		t.Fatal("expected error for reference without text")
	}
}

func TestSaveReference_UntitledFallback(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveReference(dir, Reference{Title: "!!!", Source: "x", Text: "body"})
	if err != nil {
		t.Fatalf("SaveReference: %v", err)
	}
	if got, want := filepath.Base(path), "reference.md"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}
