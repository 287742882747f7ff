package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func previewServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "mybook")
	chapters := filepath.Join(dir, "chapters")
	if err := os.MkdirAll(chapters, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(chapters, "chapter-1.md"), []byte("# Chapter One\n\nSome *emphasis*."), 0o644); err != nil {
		t.Fatal(err)
	}
	// A file outside the served project, to probe traversal.
	if err := os.WriteFile(filepath.Join(root, "secret.md"), []byte("do not serve"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(NewHandler(dir))
	t.Cleanup(srv.Close)
	return srv, dir
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	srv, _ := previewServer(t)
	code, body := get(t, srv.URL+"/health")
	if code != http.StatusOK {
		t.Errorf("status = %d", code)
	}
	if !strings.Contains(body, `"ok"`) {
		t.Errorf("body = %q", body)
	}
}

func TestIndex_ListsMarkdownFiles(t *testing.T) {
	srv, _ := previewServer(t)
	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if !strings.Contains(body, "chapters/chapter-1.md") {
		t.Errorf("index missing chapter link: %s", body)
	}
}

func TestIndex_LinksSurviveAwkwardFileNames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes & ideas.md"), []byte("# Found"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(NewHandler(dir))
	defer srv.Close()

	code, body := get(t, srv.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	want := `href="/view?path=notes+%26+ideas.md"`
	if !strings.Contains(body, want) {
		t.Fatalf("index missing query-escaped link %q in %s", want, body)
	}

	// The emitted link must resolve to the file.
	code, body = get(t, srv.URL+"/view?path=notes+%26+ideas.md")
	if code != http.StatusOK {
		t.Fatalf("escaped link broken: status = %d, body %s", code, body)
	}
	if !strings.Contains(body, "<h1>Found</h1>") {
		t.Errorf("body = %s", body)
	}
}

func TestView_RendersMarkdown(t *testing.T) {
	srv, _ := previewServer(t)
	code, body := get(t, srv.URL+"/view?path=chapters/chapter-1.md")
	if code != http.StatusOK {
		t.Fatalf("status = %d, body %s", code, body)
	}
	if !strings.Contains(body, "<h1>Chapter One</h1>") {
		t.Errorf("body missing rendered heading: %s", body)
	}
	if !strings.Contains(body, "<em>emphasis</em>") {
		t.Errorf("body missing rendered emphasis: %s", body)
	}
}

func TestView_MissingPathParam(t *testing.T) {
	srv, _ := previewServer(t)
	code, _ := get(t, srv.URL+"/view")
	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
}

func TestView_UnknownFile(t *testing.T) {
	srv, _ := previewServer(t)
	code, _ := get(t, srv.URL+"/view?path=chapters/nope.md")
	if code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestView_TraversalDoesNotEscape(t *testing.T) {
	srv, _ := previewServer(t)
	code, body := get(t, srv.URL+"/view?path=..%2Fsecret.md")
	if code == http.StatusOK && strings.Contains(body, "do not serve") {
		t.Fatal("traversal served a file outside the project")
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	path, ok := resolve(root, "../../etc/passwd")
	if !ok {
		return
	}
	if !strings.HasPrefix(path, root) {
		t.Errorf("resolved path %q escapes root %q", path, root)
	}
}
