package config

import (
	"strings"
	"testing"
)

// memBackend is an in-memory Backend for tests.
type memBackend struct {
	strings map[string]string
	ints    map[string]int
}

func newMemBackend() *memBackend {
	return &memBackend{strings: make(map[string]string), ints: make(map[string]int)}
}

func (m *memBackend) GetString(key string) (string, bool, error) {
	v, ok := m.strings[key]
	return v, ok, nil
}

func (m *memBackend) GetInt(key string) (int, bool, error) {
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *memBackend) SetString(key, val string) error { m.strings[key] = val; return nil }
func (m *memBackend) SetInt(key string, val int) error { m.ints[key] = val; return nil }
func (m *memBackend) Delete(key string) error {
	delete(m.strings, key)
	delete(m.ints, key)
	return nil
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SCRIV_OPENAI_API_KEY", "sk-test")

	cfg, err := loadWith(newMemBackend())
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
}

func TestLoad_BackendValues(t *testing.T) {
	t.Setenv("SCRIV_OPENAI_API_KEY", "sk-test")

	b := newMemBackend()
	b.strings["openai.model"] = "gpt-4o-mini"
	b.strings["openai.base_url"] = "http://localhost:8080/v1"

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want backend value", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("BaseURL = %q, want backend value", cfg.OpenAI.BaseURL)
	}
}

func TestLoad_EnvOverridesBackend(t *testing.T) {
	t.Setenv("SCRIV_OPENAI_API_KEY", "sk-test")
	t.Setenv("SCRIV_OPENAI_MODEL", "gpt-4.1")

	b := newMemBackend()
	b.strings["openai.model"] = "gpt-4o-mini"

	cfg, err := loadWith(b)
	if err != nil {
		t.Fatalf("loadWith: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4.1" {
		t.Errorf("Model = %q, want env override to win", cfg.OpenAI.Model)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("SCRIV_OPENAI_API_KEY", "")

	_, err := loadWith(newMemBackend())
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if !strings.Contains(err.Error(), "SCRIV_OPENAI_API_KEY") {
		t.Errorf("error = %v, want mention of the env var", err)
	}
}

func TestLoad_SecretIgnoredFromBackend(t *testing.T) {
	t.Setenv("SCRIV_OPENAI_API_KEY", "")

	b := newMemBackend()
	b.strings["openai.api_key"] = "sk-from-file"

	if _, err := loadWith(b); err == nil {
		t.Fatal("API key from the file backend should not be accepted")
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("SCRIV_LOG_LEVEL", "")

	b := newMemBackend()
	if got := logLevelWith(b); got != "info" {
		t.Errorf("default level = %q, want info", got)
	}

	b.strings["log.level"] = "debug"
	if got := logLevelWith(b); got != "debug" {
		t.Errorf("level = %q, want stored backend value", got)
	}

	t.Setenv("SCRIV_LOG_LEVEL", "warn")
	if got := logLevelWith(b); got != "warn" {
		t.Errorf("level = %q, want env override to win", got)
	}
}

func TestShowAll_HidesSecrets(t *testing.T) {
	cfg := defaults()
	cfg.OpenAI.APIKey = "sk-secret"

	for _, info := range ShowAll(cfg) {
		if info.Key == "openai.api_key" {
			t.Error("ShowAll should skip secret keys")
		}
		if info.Value == "sk-secret" {
			t.Errorf("secret value leaked under key %s", info.Key)
		}
	}
}

func TestValidKeys(t *testing.T) {
	keys := ValidKeys()
	want := map[string]bool{
		"openai.base_url":  false,
		"openai.model":     false,
		"storage.data_dir": false,
		"log.level":        false,
	}
	for _, k := range keys {
		if k == "openai.api_key" {
			t.Error("secret key listed as settable")
		}
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("key %s missing from ValidKeys", k)
		}
	}
}
