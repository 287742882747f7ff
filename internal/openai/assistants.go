package openai

import (
	"context"
	"fmt"
	"net/http"
)

// ListAssistants returns the assistants visible to the API key. The provider
// pages at 100 entries; callers scanning by name rarely own more than that,
// so a single page is fetched.
func (c *Client) ListAssistants(ctx context.Context) ([]Assistant, error) {
	var list AssistantList
	if err := c.doJSON(ctx, http.MethodGet, "/assistants?limit=100", nil, &list); err != nil {
		return nil, fmt.Errorf("listing assistants: %w", err)
	}
	if list.Data == nil {
		return []Assistant{}, nil
	}
	return list.Data, nil
}

// CreateAssistant creates a new assistant.
func (c *Client) CreateAssistant(ctx context.Context, req CreateAssistantRequest) (Assistant, error) {
	var a Assistant
	if err := c.doJSON(ctx, http.MethodPost, "/assistants", req, &a); err != nil {
		return Assistant{}, fmt.Errorf("creating assistant: %w", err)
	}
	return a, nil
}

// UpdateAssistant modifies an existing assistant, returning the updated copy.
func (c *Client) UpdateAssistant(ctx context.Context, id string, req UpdateAssistantRequest) (Assistant, error) {
	var a Assistant
	if err := c.doJSON(ctx, http.MethodPost, "/assistants/"+id, req, &a); err != nil {
		return Assistant{}, fmt.Errorf("updating assistant %s: %w", id, err)
	}
	return a, nil
}

// DeleteAssistant removes an assistant by ID.
func (c *Client) DeleteAssistant(ctx context.Context, id string) error {
	var d deleted
	if err := c.doJSON(ctx, http.MethodDelete, "/assistants/"+id, nil, &d); err != nil {
		return fmt.Errorf("deleting assistant %s: %w", id, err)
	}
	if !d.Deleted {
		return fmt.Errorf("provider did not confirm deletion of assistant %s", id)
	}
	return nil
}
