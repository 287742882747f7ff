package consolidate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var chapterPattern = regexp.MustCompile(`^chapter-(\d+)\.md$`)

// pageBreak separates consolidated units; pandoc turns it into a real page
// break when rendering to PDF.
const pageBreak = "\n\\newpage\n"

// Book concatenates a book project's chapters into book/book-<lang>.md.
//
// Ordering: cover.md and back-cover.md first (when present), then
// chapter-N.md sorted by numeric index, then epilogue.md (when present).
// Returns the output file path.
func Book(ctx context.Context, projectPath string, opts Options) (string, error) {
	chaptersDir := filepath.Join(projectPath, "chapters")
	outputPath := filepath.Join(projectPath, "book", fmt.Sprintf("book-%s.md", opts.outputLanguage()))

	files, err := bookFiles(chaptersDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no chapters found in %s", chaptersDir)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		content := string(data)

		if opts.TranslateTo != "" {
			slog.Info("translating chapter", "file", filepath.Base(file), "to", opts.TranslateTo)
			content, err = opts.Translator.Translate(ctx, content, opts.PrimaryLanguage, opts.TranslateTo)
			if err != nil {
				return "", fmt.Errorf("translating %s: %w", filepath.Base(file), err)
			}
		}

		if _, err := out.WriteString(content); err != nil {
			return "", fmt.Errorf("writing %s: %w", outputPath, err)
		}
		if _, err := out.WriteString(pageBreak); err != nil {
			return "", fmt.Errorf("writing %s: %w", outputPath, err)
		}
	}

	return outputPath, nil
}

// bookFiles collects the chapter files to consolidate, in reading order.
func bookFiles(chaptersDir string) ([]string, error) {
	var files []string

	for _, name := range []string{"cover.md", "back-cover.md"} {
		path := filepath.Join(chaptersDir, name)
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}

	entries, err := os.ReadDir(chaptersDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", chaptersDir, err)
	}

	type chapter struct {
		index int
		path  string
	}
	var chapters []chapter
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := chapterPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		chapters = append(chapters, chapter{index: idx, path: filepath.Join(chaptersDir, e.Name())})
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].index < chapters[j].index })
	for _, c := range chapters {
		files = append(files, c.path)
	}

	epilogue := filepath.Join(chaptersDir, "epilogue.md")
	if _, err := os.Stat(epilogue); err == nil {
		files = append(files, epilogue)
	}

	return files, nil
}

// ChapterIndex extracts the numeric index from a chapter file name, or -1
// if the name does not match the chapter pattern.
func ChapterIndex(name string) int {
	m := chapterPattern.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	idx, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return -1
	}
	return idx
}
