// Package scaffold creates the conventional folder/template structure for
// new book and paper projects.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kalambet/scriv/internal/config"
)

// Init creates the project directory tree for the project's type and writes
// scriv.json. Existing files are left untouched so Init is safe to re-run
// on a partially scaffolded directory.
func Init(projectPath string, project config.Project) error {
	var seeds []seedFile
	switch project.Type {
	case config.TypePaper:
		seeds = paperSeeds
	case config.TypeBook:
		seeds = bookSeeds
	default:
		return fmt.Errorf("unknown project type %q", project.Type)
	}

	if err := os.MkdirAll(projectPath, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	for _, seed := range seeds {
		dir := filepath.Join(projectPath, seed.folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		path := filepath.Join(dir, seed.filename)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", path, err)
		}

		if err := os.WriteFile(path, []byte(seed.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return config.SaveProject(projectPath, project)
}
