package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const batchPollInterval = time.Second

// CreateVectorStore creates a named vector store.
func (c *Client) CreateVectorStore(ctx context.Context, name string) (VectorStore, error) {
	req := struct {
		Name string `json:"name"`
	}{Name: name}

	var vs VectorStore
	if err := c.doJSON(ctx, http.MethodPost, "/vector_stores", req, &vs); err != nil {
		return VectorStore{}, fmt.Errorf("creating vector store: %w", err)
	}
	return vs, nil
}

// DeleteVectorStore removes a vector store by ID.
func (c *Client) DeleteVectorStore(ctx context.Context, id string) error {
	var d deleted
	if err := c.doJSON(ctx, http.MethodDelete, "/vector_stores/"+id, nil, &d); err != nil {
		return fmt.Errorf("deleting vector store %s: %w", id, err)
	}
	return nil
}

// CreateFileBatch attaches previously uploaded files to a vector store for
// indexing. Indexing is asynchronous; see WaitForFileBatch.
func (c *Client) CreateFileBatch(ctx context.Context, vectorStoreID string, fileIDs []string) (FileBatch, error) {
	req := struct {
		FileIDs []string `json:"file_ids"`
	}{FileIDs: fileIDs}

	var b FileBatch
	if err := c.doJSON(ctx, http.MethodPost, "/vector_stores/"+vectorStoreID+"/file_batches", req, &b); err != nil {
		return FileBatch{}, fmt.Errorf("creating file batch: %w", err)
	}
	return b, nil
}

// GetFileBatch retrieves the current state of a file batch.
func (c *Client) GetFileBatch(ctx context.Context, vectorStoreID, batchID string) (FileBatch, error) {
	var b FileBatch
	if err := c.doJSON(ctx, http.MethodGet, "/vector_stores/"+vectorStoreID+"/file_batches/"+batchID, nil, &b); err != nil {
		return FileBatch{}, fmt.Errorf("retrieving file batch %s: %w", batchID, err)
	}
	return b, nil
}

// WaitForFileBatch polls the batch until it leaves the queued/in_progress
// states or ctx is cancelled, returning the terminal batch state.
func (c *Client) WaitForFileBatch(ctx context.Context, vectorStoreID, batchID string) (FileBatch, error) {
	for {
		b, err := c.GetFileBatch(ctx, vectorStoreID, batchID)
		if err != nil {
			return FileBatch{}, err
		}
		if !Pending(b.Status) {
			if b.Status != "completed" {
				return b, fmt.Errorf("file batch %s finished with status %q (%d of %d files failed)",
					batchID, b.Status, b.FileCounts.Failed, b.FileCounts.Total)
			}
			return b, nil
		}

		select {
		case <-ctx.Done():
			return FileBatch{}, ctx.Err()
		case <-time.After(batchPollInterval):
		}
	}
}
