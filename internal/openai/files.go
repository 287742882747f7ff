package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// UploadFile uploads a file for the assistants purpose and returns the
// provider file handle. Uploads are multipart, not JSON, so they bypass
// the doJSON path.
func (c *Client) UploadFile(ctx context.Context, name string, content io.Reader) (File, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("purpose", "assistants"); err != nil {
		return File{}, fmt.Errorf("writing purpose field: %w", err)
	}
	fw, err := mw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return File{}, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(fw, content); err != nil {
		return File{}, fmt.Errorf("copying file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return File{}, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &buf)
	if err != nil {
		return File{}, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return File{}, fmt.Errorf("uploading %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return File{}, fmt.Errorf("unexpected status %d uploading %s: %s", resp.StatusCode, name, strings.TrimSpace(string(respBody)))
	}

	var f File
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decoding file response: %w", err)
	}
	return f, nil
}

// DeleteFile removes an uploaded file by ID.
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	var d deleted
	if err := c.doJSON(ctx, http.MethodDelete, "/files/"+id, nil, &d); err != nil {
		return fmt.Errorf("deleting file %s: %w", id, err)
	}
	return nil
}
