// Package extract turns uploaded documents into raw text for the analyzer.
// It is a thin collaborator: PDF and HTML parsing live here so no document
// format leaks into the analysis pipeline.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Error marks a document whose text could not be extracted.
type Error struct {
	Filename string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %q: %v", e.Filename, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Text extracts the raw text of an uploaded document, dispatching on the
// filename extension. Supported formats: .pdf, .html/.htm, .txt, .md.
func Text(filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &Error{Filename: filename, Err: err}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", &Error{Filename: filename, Err: err}
		}
		return text, nil
	case ".html", ".htm":
		text, err := htmlText(data)
		if err != nil {
			return "", &Error{Filename: filename, Err: err}
		}
		return text, nil
	case ".txt", ".md", "":
		return string(data), nil
	default:
		return "", &Error{Filename: filename, Err: fmt.Errorf("unsupported document format %q", filepath.Ext(filename))}
	}
}

// htmlText strips markup and scripting from an HTML document, returning the
// visible text.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	body := doc.Find("body")
	text := body.Text()
	if body.Length() == 0 {
		text = doc.Text()
	}

	text = strings.TrimSpace(strings.Join(strings.Fields(text), " "))
	if text == "" {
		return "", fmt.Errorf("no text content found in document")
	}
	return text, nil
}
