package consolidate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kalambet/scriv/internal/config"
)

// leadingTitle matches a single markdown title line at the start of a
// section; it is stripped so the consolidated paper carries one title only.
var leadingTitle = regexp.MustCompile(`^#.*\n`)

// translationPrompt is the instruction wrapped around a unit of text when
// translating during consolidation.
const translationPrompt = "Translate the following text from %s to %s. " +
	"Maintain all formatting, including markdown syntax, LaTeX formulas, and code blocks. " +
	"Only translate the actual text content:\n\n%s"

// TranslationPrompt renders the canonical translation instruction for a
// unit of text.
func TranslationPrompt(text, fromLang, toLang string) string {
	return fmt.Sprintf(translationPrompt, fromLang, toLang, text)
}

// Paper concatenates a paper project's sections into output/paper-<lang>.md.
//
// Sections are taken in the fixed order abstract, introduction, custom_*
// (sorted), related_work, methodology, results, discussion, conclusion;
// missing sections are skipped. The output opens with a title/authors/
// keywords header derived from the project config.
func Paper(ctx context.Context, projectPath string, project config.Project, opts Options) (string, error) {
	outputDir := filepath.Join(projectPath, "output")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	outputPath := filepath.Join(outputDir, fmt.Sprintf("paper-%s.md", opts.outputLanguage()))

	var sb strings.Builder
	writeHeader(&sb, project)

	for _, section := range paperSections(projectPath) {
		path := filepath.Join(projectPath, section)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("reading %s: %w", path, err)
		}

		content := leadingTitle.ReplaceAllString(string(data), "")

		if opts.TranslateTo != "" {
			content, err = opts.Translator.Translate(ctx, content, opts.PrimaryLanguage, opts.TranslateTo)
			if err != nil {
				return "", fmt.Errorf("translating %s: %w", section, err)
			}
		}

		sb.WriteString(strings.TrimSpace(content))
		sb.WriteString("\n\n")
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return outputPath, nil
}

func writeHeader(sb *strings.Builder, project config.Project) {
	fmt.Fprintf(sb, "# %s\n\n", project.Name)

	if len(project.Authors) > 0 {
		sb.WriteString("## Authors\n\n")
		for _, author := range project.Authors {
			fmt.Fprintf(sb, "- %s\n", author)
		}
		sb.WriteString("\n")
	}

	if len(project.Keywords) > 0 {
		sb.WriteString("## Keywords\n\n")
		sb.WriteString(strings.Join(project.Keywords, ", "))
		sb.WriteString("\n\n")
	}
}

// paperSections returns the ordered relative paths of the sections to
// consolidate. Sections named custom_*.md slot in after the introduction.
func paperSections(projectPath string) []string {
	order := []string{
		"sections/abstract.md",
		"sections/introduction.md",
	}

	sectionsDir := filepath.Join(projectPath, "sections")
	var custom []string
	if entries, err := os.ReadDir(sectionsDir); err == nil {
		for _, e := range entries {
			name := e.Name()
			if !e.IsDir() && strings.HasPrefix(name, "custom_") && strings.HasSuffix(name, ".md") {
				custom = append(custom, "sections/"+name)
			}
		}
	}
	sort.Strings(custom)
	order = append(order, custom...)

	order = append(order,
		"sections/related_work.md",
		"sections/methodology.md",
		"sections/results.md",
		"sections/discussion.md",
		"sections/conclusion.md",
	)
	return order
}
