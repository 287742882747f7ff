package agent

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ListMarkdownFiles walks the project tree and returns all .md files in a
// deterministic order. Hidden directories and backup files are skipped.
func ListMarkdownFiles(projectPath string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(projectPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != projectPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", projectPath, err)
	}
	sort.Strings(files)
	return files, nil
}
