// Package consolidate concatenates a project's markdown units into a single
// output document, optionally translating each unit first.
package consolidate

import "context"

// Translator converts a unit of markdown text into the target language.
// Implementations must preserve markdown syntax, LaTeX formulas, and code
// blocks.
type Translator interface {
	Translate(ctx context.Context, text, fromLang, toLang string) (string, error)
}

// Options controls a consolidation pass.
type Options struct {
	// PrimaryLanguage is the language the sources are written in.
	PrimaryLanguage string
	// TranslateTo, when non-empty, is the target language; each unit is
	// translated before being written.
	TranslateTo string
	// Translator performs per-unit translation. Required when TranslateTo
	// is set.
	Translator Translator
}

// outputLanguage returns the language code used in the output file name.
func (o Options) outputLanguage() string {
	if o.TranslateTo != "" {
		return o.TranslateTo
	}
	return o.PrimaryLanguage
}
