package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kalambet/scriv/internal/agent"
	"github.com/kalambet/scriv/internal/config"
	"github.com/kalambet/scriv/internal/history"
	"github.com/kalambet/scriv/internal/openai"
)

// session bundles everything a provider-backed command needs.
type session struct {
	cfg     config.Config
	project config.Project
	path    string
	manager *agent.Manager
	ledger  *history.Store
	model   string
}

// newSession loads tool and project config and wires the agent manager and
// the generation ledger. Project-level model/base URL settings override the
// tool config.
func newSession() (*session, error) {
	path, project, err := loadProject()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	baseURL := cfg.OpenAI.BaseURL
	if project.OpenAIBaseURL != "" {
		baseURL = project.OpenAIBaseURL
	}
	model := cfg.OpenAI.Model
	if project.OpenAIModel != "" {
		model = project.OpenAIModel
	}

	client := openai.NewClientWithBaseURL(cfg.OpenAI.APIKey, baseURL)

	ledger, err := history.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		project: project,
		path:    path,
		manager: agent.NewManager(client, model),
		ledger:  ledger,
		model:   model,
	}, nil
}

func (s *session) Close() {
	if err := s.ledger.Close(); err != nil {
		slog.Warn("closing ledger", "error", err)
	}
}

// record writes a generation to the ledger; ledger failures are logged, not
// fatal, so a bad local database never loses a finished generation.
func (s *session) record(kind, prompt, response, assistantID, threadID string, started time.Time, genErr error) {
	g := history.Generation{
		ID:          uuid.New().String(),
		CreatedAt:   started,
		Project:     agent.Name(s.path),
		Kind:        kind,
		Prompt:      prompt,
		Response:    response,
		Model:       s.model,
		AssistantID: assistantID,
		ThreadID:    threadID,
		DurationMs:  time.Since(started).Milliseconds(),
		Status:      "completed",
	}
	if genErr != nil {
		g.Status = "failed"
		g.LastError = genErr.Error()
	}
	if err := s.ledger.Save(g); err != nil {
		slog.Warn("recording generation", "error", err)
	}
}
