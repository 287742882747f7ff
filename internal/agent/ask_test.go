package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kalambet/scriv/internal/openai"
)

// askServer drives a single message/run/reply exchange and records the
// message content it received.
func askServer(t *testing.T, reply string) (*httptest.Server, *string) {
	t.Helper()
	var gotContent string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /threads", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"thread_1"}`)
	})
	mux.HandleFunc("POST /threads/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotContent = req.Content
		fmt.Fprint(w, `{"id":"msg_1"}`)
	})
	mux.HandleFunc("POST /threads/{id}/runs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"run_1","status":"queued"}`)
	})
	mux.HandleFunc("GET /threads/{id}/runs/{run}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"run_1","status":"completed"}`)
	})
	mux.HandleFunc("GET /threads/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data": []map[string]any{{
				"id":   "msg_2",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "text", "text": map[string]string{"value": reply}},
				},
			}},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &gotContent
}

func TestAsk(t *testing.T) {
	srv, gotContent := askServer(t, "Here is your chapter.")

	m := NewManager(openai.NewClientWithBaseURL("k", srv.URL), "gpt-4o")
	reply, err := m.Ask(context.Background(), openai.Assistant{ID: "asst_1"}, "thread_1", "Draft chapter 3", "")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply != "Here is your chapter." {
		t.Errorf("reply = %q", reply)
	}
	if *gotContent != "Draft chapter 3" {
		t.Errorf("message content = %q, want bare prompt", *gotContent)
	}
}

func TestAsk_ImproveAppendsExistingContent(t *testing.T) {
	srv, gotContent := askServer(t, "Improved.")

	path := filepath.Join(t.TempDir(), "chapter-3.md")
	if err := os.WriteFile(path, []byte("# Chapter 3\n\nOld draft."), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(openai.NewClientWithBaseURL("k", srv.URL), "gpt-4o")
	if _, err := m.Ask(context.Background(), openai.Assistant{ID: "asst_1"}, "thread_1", "Tighten the pacing", path); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !strings.Contains(*gotContent, "Here is the existing content to improve:") {
		t.Errorf("message content missing improvement marker: %q", *gotContent)
	}
	if !strings.Contains(*gotContent, "Old draft.") {
		t.Errorf("message content missing existing file text: %q", *gotContent)
	}
	if !strings.HasPrefix(*gotContent, "Tighten the pacing") {
		t.Errorf("message content should start with the prompt: %q", *gotContent)
	}
}

func TestAsk_ImproveMissingFileIgnored(t *testing.T) {
	srv, gotContent := askServer(t, "Fresh draft.")

	m := NewManager(openai.NewClientWithBaseURL("k", srv.URL), "gpt-4o")
	if _, err := m.Ask(context.Background(), openai.Assistant{ID: "asst_1"}, "thread_1", "Draft it", filepath.Join(t.TempDir(), "missing.md")); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if *gotContent != "Draft it" {
		t.Errorf("message content = %q, want bare prompt when improve file is absent", *gotContent)
	}
}
