package consolidate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeTranslator struct {
	calls int
}

func (f *fakeTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	f.calls++
	return fmt.Sprintf("[%s->%s] %s", fromLang, toLang, text), nil
}

func writeChapters(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	chapters := filepath.Join(dir, "chapters")
	if err := os.MkdirAll(chapters, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(chapters, name), []byte("content of "+name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestBook_Ordering(t *testing.T) {
	dir := writeChapters(t,
		"chapter-10.md", "chapter-2.md", "chapter-1.md",
		"epilogue.md", "cover.md", "back-cover.md", "notes.txt",
	)

	path, err := Book(context.Background(), dir, Options{PrimaryLanguage: "en"})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if got, want := filepath.Base(path), "book-en.md"; got != want {
		t.Errorf("output file = %q, want %q", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	order := []string{
		"content of cover.md",
		"content of back-cover.md",
		"content of chapter-1.md",
		"content of chapter-2.md",
		"content of chapter-10.md",
		"content of epilogue.md",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx < 0 {
			t.Fatalf("output missing %q", marker)
		}
		if idx < last {
			t.Errorf("%q appears out of order", marker)
		}
		last = idx
	}
	if strings.Contains(out, "notes.txt") {
		t.Error("non-chapter file leaked into output")
	}
	if got := strings.Count(out, "\\newpage"); got != len(order) {
		t.Errorf("found %d page breaks, want %d", got, len(order))
	}
}

func TestBook_Translation(t *testing.T) {
	dir := writeChapters(t, "chapter-1.md", "chapter-2.md")
	tr := &fakeTranslator{}

	path, err := Book(context.Background(), dir, Options{
		PrimaryLanguage: "en",
		TranslateTo:     "es",
		Translator:      tr,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if got, want := filepath.Base(path), "book-es.md"; got != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
	if tr.calls != 2 {
		t.Errorf("translator called %d times, want once per chapter", tr.calls)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "[en->es] content of chapter-1.md") {
		t.Errorf("output = %q, want translated chapters", string(data))
	}
}

func TestBook_NoChapters(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "chapters"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Book(context.Background(), dir, Options{PrimaryLanguage: "en"}); err == nil {
		t.Fatal("expected error for empty chapters directory")
	}
}

func TestChapterIndex(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"chapter-1.md", 1},
		{"chapter-42.md", 42},
		{"chapter-x.md", -1},
		{"cover.md", -1},
		{"chapter-1.txt", -1},
	}
	for _, tc := range cases {
		if got := ChapterIndex(tc.name); got != tc.want {
			t.Errorf("ChapterIndex(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}
