// Package prompt decorates outgoing prompts and keeps a per-project log of
// what was sent to the provider.
package prompt

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LogFile is the per-project prompt log name.
const LogFile = "prompts.yaml"

// datePhrases are interchangeable prompt prefixes mentioning the current
// date. Varying the opening line keeps provider-side caching from collapsing
// repeated requests for the same section.
var datePhrases = []string{
	"Today is %s.",
	"The current date is %s.",
	"As of %s, please continue.",
	"Writing session dated %s.",
	"For context, today's date is %s.",
}

// LogEntry records one decorated prompt.
type LogEntry struct {
	Date           string `yaml:"date"`
	OriginalPrompt string `yaml:"original_prompt"`
}

// Decorate prefixes the prompt with a randomly chosen date phrase and
// appends a log entry to prompts.yaml in the project directory. Logging
// failures are returned so callers can surface them, but the decorated
// prompt is still usable.
func Decorate(projectPath, original string) (string, error) {
	date := time.Now().Format("2006-01-02")
	decorated := fmt.Sprintf(pickPhrase(), date) + "\n\n" + original

	if err := appendLog(projectPath, LogEntry{Date: date, OriginalPrompt: original}); err != nil {
		return decorated, fmt.Errorf("logging prompt: %w", err)
	}
	return decorated, nil
}

func pickPhrase() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(datePhrases))))
	if err != nil {
		return datePhrases[0]
	}
	return datePhrases[n.Int64()]
}

func appendLog(projectPath string, entry LogEntry) error {
	path := filepath.Join(projectPath, LogFile)

	var entries []LogEntry
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	entries = append(entries, entry)

	out, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// History returns all logged prompt entries for the project, oldest first.
// A missing log is an empty history.
func History(projectPath string) ([]LogEntry, error) {
	path := filepath.Join(projectPath, LogFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []LogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}
