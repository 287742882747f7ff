package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts the plain text of a PDF file into a Reference. The title
// defaults to the file name without extension when not provided.
func FromPDF(path, title string) (Reference, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return Reference{}, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return Reference{}, fmt.Errorf("extracting text from %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return Reference{}, fmt.Errorf("reading extracted text: %w", err)
	}

	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Reference{
		Title:  title,
		Source: path,
		Text:   buf.String(),
	}, nil
}
