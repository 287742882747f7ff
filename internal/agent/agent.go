// Package agent manages the provider-side resources backing a project:
// one assistant per project, found by name, with a vector store holding the
// project's markdown files as retrieval knowledge.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/kalambet/scriv/internal/openai"
)

const uploadConcurrency = 4

// defaultInstructions is used when the project ships no behaviors file.
const defaultInstructions = `You are a writing assistant for long-form books and academic papers.
Use the attached project files as the source of truth for characters, plot,
terminology, and prior sections. Respond with publication-ready markdown and
preserve the author's voice and formatting conventions.`

// Manager owns assistant/vector-store lifecycle for a project directory.
type Manager struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewManager creates a Manager that provisions assistants with the given model.
func NewManager(client *openai.Client, model string) *Manager {
	return &Manager{client: client, model: model, logger: slog.Default()}
}

// Name derives the assistant name from the project path. Relative paths
// (".", "..") are resolved first so the name is the actual directory name
// rather than the flag spelling.
func Name(projectPath string) string {
	if abs, err := filepath.Abs(projectPath); err == nil {
		projectPath = abs
	}
	return filepath.Base(filepath.Clean(projectPath))
}

// Find returns the assistant named after the project, or false if absent.
func (m *Manager) Find(ctx context.Context, projectPath string) (openai.Assistant, bool, error) {
	name := Name(projectPath)
	assistants, err := m.client.ListAssistants(ctx)
	if err != nil {
		return openai.Assistant{}, false, err
	}
	for _, a := range assistants {
		if a.Name == name {
			return a, true, nil
		}
	}
	return openai.Assistant{}, false, nil
}

// CreateOrGet returns the project's assistant, creating it (with a populated
// vector store) if it does not exist yet.
func (m *Manager) CreateOrGet(ctx context.Context, projectPath string) (openai.Assistant, error) {
	name := Name(projectPath)

	if a, ok, err := m.Find(ctx, projectPath); err != nil {
		return openai.Assistant{}, err
	} else if ok {
		m.logger.Debug("assistant already exists", "name", name, "id", a.ID)
		return a, nil
	}

	m.logger.Info("creating vector store", "project", name)
	vs, err := m.client.CreateVectorStore(ctx, name+" Docs")
	if err != nil {
		return openai.Assistant{}, err
	}

	if err := m.uploadKnowledge(ctx, projectPath, vs.ID); err != nil {
		return openai.Assistant{}, err
	}

	instructions := m.loadInstructions(projectPath)

	m.logger.Info("creating assistant", "name", name, "model", m.model)
	a, err := m.client.CreateAssistant(ctx, openai.CreateAssistantRequest{
		Model:        m.model,
		Name:         name,
		Instructions: instructions,
		Tools: []openai.Tool{
			{Type: "code_interpreter"},
			{Type: "file_search"},
		},
	})
	if err != nil {
		return openai.Assistant{}, err
	}

	a, err = m.client.UpdateAssistant(ctx, a.ID, openai.UpdateAssistantRequest{
		ToolResources: &openai.ToolResources{
			FileSearch: &openai.FileSearchResources{
				VectorStoreIDs: []string{vs.ID},
			},
		},
	})
	if err != nil {
		return openai.Assistant{}, fmt.Errorf("attaching vector store: %w", err)
	}

	return a, nil
}

// Delete removes the project's assistant if it exists. Missing assistants
// are not an error.
func (m *Manager) Delete(ctx context.Context, projectPath string) error {
	a, ok, err := m.Find(ctx, projectPath)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	m.logger.Info("deleting assistant", "name", a.Name, "id", a.ID)
	return m.client.DeleteAssistant(ctx, a.ID)
}

// Refresh re-provisions the assistant so its knowledge reflects the current
// project files: delete then recreate.
func (m *Manager) Refresh(ctx context.Context, projectPath string) (openai.Assistant, error) {
	if err := m.Delete(ctx, projectPath); err != nil {
		return openai.Assistant{}, err
	}
	return m.CreateOrGet(ctx, projectPath)
}

// uploadKnowledge uploads every markdown file under projectPath and indexes
// the batch into the vector store, waiting for indexing to finish.
func (m *Manager) uploadKnowledge(ctx context.Context, projectPath, vectorStoreID string) error {
	files, err := ListMarkdownFiles(projectPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		m.logger.Warn("no markdown files found for knowledge upload", "project", projectPath)
		return nil
	}
	m.logger.Info("uploading knowledge files", "count", len(files))

	fileIDs := make([]string, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)

	for i, path := range files {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			uploaded, err := m.client.UploadFile(gCtx, path, f)
			if err != nil {
				return err
			}
			fileIDs[i] = uploaded.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	batch, err := m.client.CreateFileBatch(ctx, vectorStoreID, fileIDs)
	if err != nil {
		return err
	}
	if _, err := m.client.WaitForFileBatch(ctx, vectorStoreID, batch.ID); err != nil {
		return err
	}
	return nil
}

// loadInstructions reads behaviors/default.txt from the project, falling
// back to the built-in default.
func (m *Manager) loadInstructions(projectPath string) string {
	path := filepath.Join(projectPath, "behaviors", "default.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		m.logger.Debug("using built-in instructions", "reason", err)
		return defaultInstructions
	}
	return string(data)
}
