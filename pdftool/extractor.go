package pdftool

import (
	"log/slog"
	"strings"
)

const NoText = "No text could be extracted from the PDF."

type PageReader interface {
	ReadPages(path string) ([]string, error)
}

type Extractor struct {
	log    *slog.Logger
	reader PageReader
}

func NewExtractor(log *slog.Logger, reader PageReader) *Extractor {
	return &Extractor{
		log:    log,
		reader: reader,
	}
}

// Extract joins the text of all pages in order, without separators. Empty
// pages are skipped with a warning; a document with no text at all yields NoText.
func (e *Extractor) Extract(path string) (string, error) {
	pages, err := e.reader.ReadPages(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	var sb strings.Builder
	for i, p := range pages {
		if p == "" {
			e.log.Warn("no text found on page", "file", path, "page", i+1)
			continue
		}

		sb.WriteString(p)
	}

	if sb.Len() == 0 {
		return NoText, nil
	}

	return sb.String(), nil
}
