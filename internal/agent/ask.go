package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/kalambet/scriv/internal/openai"
)

// NewThread creates a fresh conversation thread.
func (m *Manager) NewThread(ctx context.Context) (openai.Thread, error) {
	return m.client.CreateThread(ctx)
}

// Ask submits content as a user message on the thread, runs the assistant,
// waits for completion, and returns the assistant's reply text.
//
// If improvePath names an existing file, its content is appended to the
// prompt so the assistant revises it instead of drafting from scratch.
func (m *Manager) Ask(ctx context.Context, assistant openai.Assistant, threadID, content, improvePath string) (string, error) {
	if improvePath != "" {
		data, err := os.ReadFile(improvePath)
		if err == nil {
			m.logger.Debug("including existing content for improvement", "path", improvePath)
			content = fmt.Sprintf("%s\n\nHere is the existing content to improve:\n%s", content, string(data))
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading %s: %w", improvePath, err)
		}
	}

	if _, err := m.client.CreateMessage(ctx, threadID, content); err != nil {
		return "", err
	}

	run, err := m.client.CreateRun(ctx, threadID, assistant.ID)
	if err != nil {
		return "", err
	}

	if _, err := m.client.WaitForRun(ctx, threadID, run.ID); err != nil {
		return "", err
	}

	msg, err := m.client.LatestMessage(ctx, threadID)
	if err != nil {
		return "", err
	}
	return msg.Text(), nil
}
