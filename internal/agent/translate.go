package agent

import (
	"context"

	"github.com/kalambet/scriv/internal/consolidate"
	"github.com/kalambet/scriv/internal/openai"
)

// ThreadTranslator translates text by running the project assistant on a
// dedicated thread. It satisfies consolidate.Translator.
type ThreadTranslator struct {
	manager   *Manager
	assistant openai.Assistant
	threadID  string
}

// NewTranslator provisions the project's assistant and a fresh thread for a
// translation session.
func (m *Manager) NewTranslator(ctx context.Context, projectPath string) (*ThreadTranslator, error) {
	assistant, err := m.CreateOrGet(ctx, projectPath)
	if err != nil {
		return nil, err
	}
	thread, err := m.NewThread(ctx)
	if err != nil {
		return nil, err
	}
	return &ThreadTranslator{manager: m, assistant: assistant, threadID: thread.ID}, nil
}

// Translate sends one unit of text through the assistant with the canonical
// translation instruction.
func (t *ThreadTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	prompt := consolidate.TranslationPrompt(text, fromLang, toLang)
	return t.manager.Ask(ctx, t.assistant, t.threadID, prompt, "")
}
