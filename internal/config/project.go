package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectFile is the per-project configuration file name.
const ProjectFile = "scriv.json"

// ErrNoProject is returned when the given directory holds no project config.
var ErrNoProject = errors.New("no project configuration found")

// Project types.
const (
	TypeBook  = "book"
	TypePaper = "paper"
)

// Project is the per-project configuration stored in scriv.json at the
// project root.
type Project struct {
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Authors            []string `json:"authors,omitempty"`
	PrimaryLanguage    string   `json:"primary_language"`
	AlternateLanguages []string `json:"alternate_languages,omitempty"`
	DefaultAuthor      string   `json:"default_author,omitempty"`
	Genre              string   `json:"genre,omitempty"`
	License            string   `json:"license,omitempty"`
	ReferenceAuthor    string   `json:"reference_author,omitempty"`
	Keywords           []string `json:"keywords,omitempty"`
	OpenAIBaseURL      string   `json:"openai_base_url,omitempty"`
	OpenAIModel        string   `json:"openai_model,omitempty"`
}

func projectDefaults() Project {
	return Project{
		Name:            "Untitled",
		Type:            TypeBook,
		PrimaryLanguage: "en",
		DefaultAuthor:   "Unknown Author",
		Genre:           "fiction",
		License:         "CC BY",
		OpenAIModel:     "gpt-4o",
	}
}

// LoadProject reads scriv.json from projectPath, filling missing fields with
// defaults. Returns ErrNoProject when the file does not exist.
func LoadProject(projectPath string) (Project, error) {
	if projectPath == "" {
		return Project{}, ErrNoProject
	}

	path := filepath.Join(projectPath, ProjectFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Project{}, fmt.Errorf("%w in %s", ErrNoProject, projectPath)
		}
		return Project{}, fmt.Errorf("reading project config: %w", err)
	}

	p := projectDefaults()
	if err := json.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if p.Type != TypeBook && p.Type != TypePaper {
		return Project{}, fmt.Errorf("invalid project type %q in %s", p.Type, path)
	}
	return p, nil
}

// SaveProject writes the project config to scriv.json under projectPath.
func SaveProject(projectPath string, p Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project config: %w", err)
	}
	path := filepath.Join(projectPath, ProjectFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}
