package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	fetchTimeout    = 15 * time.Second
	maxPageSize     = 4 << 20 // 4MB
	defaultWebTitle = "Imported Page"
)

// FromURL fetches a web page and extracts its visible text into a
// Reference. The page <title> is used when no title is given.
func FromURL(ctx context.Context, client *http.Client, url, title string) (Reference, error) {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Reference{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Reference{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reference{}, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	pageTitle, text, err := extractText(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return Reference{}, fmt.Errorf("parsing %s: %w", url, err)
	}

	if title == "" {
		title = pageTitle
	}
	if title == "" {
		title = defaultWebTitle
	}

	return Reference{
		Title:  title,
		Source: url,
		Text:   text,
	}, nil
}

// extractText tokenizes HTML and collects text outside script/style, plus
// the document title.
func extractText(r io.Reader) (title, text string, err error) {
	z := html.NewTokenizer(r)

	var sb strings.Builder
	var inTitle, skip bool

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return title, sb.String(), nil
			}
			return "", "", z.Err()

		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "title":
				inTitle = true
			case "script", "style", "noscript":
				skip = true
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "title":
				inTitle = false
			case "script", "style", "noscript":
				skip = false
			}

		case html.TextToken:
			t := strings.TrimSpace(string(z.Text()))
			if t == "" {
				continue
			}
			if inTitle {
				if title == "" {
					title = t
				}
				continue
			}
			if skip {
				continue
			}
			sb.WriteString(t)
			sb.WriteString("\n\n")
		}
	}
}
