// Package markdown persists generated document content to the project tree.
// Writes that would overwrite an existing file first copy the prior content
// to a sibling file with a ".back" suffix.
package markdown

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a read or append targets a missing file.
var ErrNotFound = errors.New("file not found")

// BackupSuffix is appended to a file name to form its backup path.
const BackupSuffix = ".back"

// Save writes "# header\n\ncontent" to fileName under projectPath. If the
// file already exists its previous content is copied to <file>.back before
// the overwrite. Parent directories are created as needed. Returns the path
// of the written file.
func Save(projectPath, fileName, header, content string) (string, error) {
	path := filepath.Join(projectPath, fileName)

	if _, err := os.Stat(path); err == nil {
		if err := backup(path); err != nil {
			return "", err
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}

	body := fmt.Sprintf("# %s\n\n%s", header, content)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func backup(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s for backup: %w", path, err)
	}
	defer src.Close()

	dst, err := os.Create(path + BackupSuffix)
	if err != nil {
		return fmt.Errorf("creating backup of %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copying %s to backup: %w", path, err)
	}
	return nil
}

// Append adds content to an existing markdown file, separated by a blank
// line. Returns ErrNotFound if the file does not exist.
func Append(projectPath, folder, fileName, content string) error {
	path := filepath.Join(projectPath, folder, fileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n\n%s", content); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return nil
}

// Read returns the content of a markdown file. Returns ErrNotFound if the
// file does not exist.
func Read(projectPath, folder, fileName string) (string, error) {
	path := filepath.Join(projectPath, folder, fileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// HasMoreThanLines reports whether the file at path contains more than n
// lines. Missing files report false.
func HasMoreThanLines(path string, n int) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
			if lines > n {
				return true
			}
		}
	}
	// A trailing partial line still counts.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		lines++
	}
	return lines > n
}
