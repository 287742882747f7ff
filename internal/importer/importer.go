// Package importer pulls external reference material (PDFs, web pages) into
// a project's bibliography as markdown notes, so it becomes part of the
// assistant's knowledge on the next refresh.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kalambet/scriv/internal/markdown"
)

// BibliographyDir is where imported references land, relative to the
// project root.
const BibliographyDir = "bibliography"

// Reference is extracted text plus provenance for one imported source.
type Reference struct {
	Title  string
	Source string
	Text   string
}

// SaveReference writes the reference as a markdown note under
// bibliography/. The file name is derived from the title. Returns the
// written path.
func SaveReference(projectPath string, ref Reference) (string, error) {
	if strings.TrimSpace(ref.Text) == "" {
		return "", fmt.Errorf("reference %q has no extractable text", ref.Source)
	}

	name := slugify(ref.Title)
	if name == "" {
		name = "reference"
	}

	body := fmt.Sprintf("_Source: %s_\n\n%s", ref.Source, strings.TrimSpace(ref.Text))
	return markdown.Save(projectPath, filepath.Join(BibliographyDir, name+".md"), ref.Title, body)
}

// slugify reduces a title to a safe lowercase file name.
func slugify(title string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}
