package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const runPollInterval = 500 * time.Millisecond

// CreateThread creates a new empty conversation thread.
func (c *Client) CreateThread(ctx context.Context) (Thread, error) {
	var t Thread
	if err := c.doJSON(ctx, http.MethodPost, "/threads", struct{}{}, &t); err != nil {
		return Thread{}, fmt.Errorf("creating thread: %w", err)
	}
	return t, nil
}

// CreateMessage appends a user message to a thread.
func (c *Client) CreateMessage(ctx context.Context, threadID, content string) (Message, error) {
	req := struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{Role: "user", Content: content}

	var m Message
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/messages", req, &m); err != nil {
		return Message{}, fmt.Errorf("creating message: %w", err)
	}
	return m, nil
}

// LatestMessage returns the newest message in the thread.
func (c *Client) LatestMessage(ctx context.Context, threadID string) (Message, error) {
	var list MessageList
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/messages?order=desc&limit=1", nil, &list); err != nil {
		return Message{}, fmt.Errorf("listing messages: %w", err)
	}
	if len(list.Data) == 0 {
		return Message{}, fmt.Errorf("thread %s has no messages", threadID)
	}
	return list.Data[0], nil
}

// CreateRun starts an assistant run against the thread.
func (c *Client) CreateRun(ctx context.Context, threadID, assistantID string) (Run, error) {
	req := struct {
		AssistantID string `json:"assistant_id"`
	}{AssistantID: assistantID}

	var r Run
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/runs", req, &r); err != nil {
		return Run{}, fmt.Errorf("creating run: %w", err)
	}
	return r, nil
}

// GetRun retrieves the current state of a run.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (Run, error) {
	var r Run
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID, nil, &r); err != nil {
		return Run{}, fmt.Errorf("retrieving run %s: %w", runID, err)
	}
	return r, nil
}

// WaitForRun polls the run until it leaves the queued/in_progress states or
// ctx is cancelled. A terminal status other than "completed" is an error.
func (c *Client) WaitForRun(ctx context.Context, threadID, runID string) (Run, error) {
	for {
		r, err := c.GetRun(ctx, threadID, runID)
		if err != nil {
			return Run{}, err
		}
		if !Pending(r.Status) {
			if r.Status != "completed" {
				msg := ""
				if r.LastError != nil {
					msg = ": " + r.LastError.Message
				}
				return r, fmt.Errorf("run %s finished with status %q%s", runID, r.Status, msg)
			}
			return r, nil
		}

		select {
		case <-ctx.Done():
			return Run{}, ctx.Err()
		case <-time.After(runPollInterval):
		}
	}
}
