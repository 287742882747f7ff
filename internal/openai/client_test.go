package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestDoJSON_Headers(t *testing.T) {
	var gotAuth, gotBeta string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBeta = r.Header.Get("OpenAI-Beta")
		fmt.Fprint(w, `{"id":"thread_1"}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	if _, err := c.CreateThread(context.Background()); err != nil {
		t.Fatalf("CreateThread: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer test-key")
	}
	if gotBeta != "assistants=v2" {
		t.Errorf("OpenAI-Beta = %q, want %q", gotBeta, "assistants=v2")
	}
}

func TestDoJSON_RateLimitRetry(t *testing.T) {
	var attempt atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempt.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"id":"thread_1"}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	thread, err := c.CreateThread(context.Background())
	if err != nil {
		t.Fatalf("CreateThread after rate limit: %v", err)
	}
	if thread.ID != "thread_1" {
		t.Errorf("thread.ID = %q, want %q", thread.ID, "thread_1")
	}
	if got := attempt.Load(); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestDoJSON_RateLimitExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.CreateThread(context.Background())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error = %v, want rate limited", err)
	}
}

func TestDoJSON_ErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"invalid model"}}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.CreateThread(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid model") {
		t.Errorf("error = %v, want to contain provider message", err)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error = %v, want to contain status code", err)
	}
}

func TestDoJSON_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClientWithBaseURL("test-key", srv.URL)
	if _, err := c.CreateThread(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestMessageText(t *testing.T) {
	raw := `{"id":"msg_1","role":"assistant","content":[{"type":"image_file"},{"type":"text","text":{"value":"Hello, world"}}]}`
	var m Message
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := m.Text(); got != "Hello, world" {
		t.Errorf("Text() = %q, want %q", got, "Hello, world")
	}

	empty := Message{}
	if got := empty.Text(); got != "" {
		t.Errorf("Text() on empty message = %q, want \"\"", got)
	}
}

func TestPending(t *testing.T) {
	for _, status := range []string{"queued", "in_progress"} {
		if !Pending(status) {
			t.Errorf("Pending(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"completed", "failed", "cancelled", "expired", ""} {
		if Pending(status) {
			t.Errorf("Pending(%q) = true, want false", status)
		}
	}
}
