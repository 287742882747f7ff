// Package preview serves a read-only HTML rendering of a project's markdown
// files on localhost, for proofreading consolidated output in a browser.
package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/kalambet/scriv/internal/agent"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title>
<style>body{max-width:48rem;margin:2rem auto;font-family:Georgia,serif;line-height:1.6;padding:0 1rem}a{color:#2a6}</style>
</head>
<body>
<p><a href="/">index</a></p>
{{.Body}}
</body>
</html>`))

type pageData struct {
	Title string
	Body  template.HTML
}

// NewHandler returns an http.Handler serving the project at projectPath.
func NewHandler(projectPath string) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Get("/", handleIndex(projectPath))
	r.Get("/view", handleView(projectPath))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleIndex(projectPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := agent.ListMarkdownFiles(projectPath)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "listing files: %v", err)
			return
		}

		var sb strings.Builder
		sb.WriteString("<h1>" + template.HTMLEscapeString(filepath.Base(projectPath)) + "</h1>\n<ul>\n")
		for _, f := range files {
			rel, err := filepath.Rel(projectPath, f)
			if err != nil {
				continue
			}
			href := template.HTMLEscapeString(url.QueryEscape(rel))
			fmt.Fprintf(&sb, `<li><a href="/view?path=%s">%s</a></li>`+"\n", href, template.HTMLEscapeString(rel))
		}
		sb.WriteString("</ul>\n")

		renderPage(w, filepath.Base(projectPath), template.HTML(sb.String()))
	}
}

func handleView(projectPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel := r.URL.Query().Get("path")
		if rel == "" {
			httpError(w, http.StatusBadRequest, "path query parameter is required")
			return
		}

		path, ok := resolve(projectPath, rel)
		if !ok {
			httpError(w, http.StatusBadRequest, "path escapes the project directory")
			return
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				httpError(w, http.StatusNotFound, "no such file: %s", rel)
				return
			}
			httpError(w, http.StatusInternalServerError, "reading file: %v", err)
			return
		}

		var buf bytes.Buffer
		if err := goldmark.Convert(data, &buf); err != nil {
			httpError(w, http.StatusInternalServerError, "rendering markdown: %v", err)
			return
		}

		renderPage(w, rel, template.HTML(buf.String()))
	}
}

// resolve joins rel onto root and rejects paths that escape it.
func resolve(root, rel string) (string, bool) {
	path := filepath.Join(root, filepath.Clean("/"+rel))
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if absPath != absRoot && !strings.HasPrefix(absPath, absRoot+string(os.PathSeparator)) {
		return "", false
	}
	return path, true
}

func renderPage(w http.ResponseWriter, title string, body template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, pageData{Title: title, Body: body}); err != nil {
		// Headers are already written; nothing sensible to do but log.
		fmt.Fprintf(os.Stderr, "rendering page: %v\n", err)
	}
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": fmt.Sprintf(format, args...),
		},
	})
}
