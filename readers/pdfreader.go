package readers

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PdfFileReader extracts text page by page.
type PdfFileReader struct {
}

// ReadPages returns the text of every page in document order. Pages without a
// content object come back as empty strings.
func (r *PdfFileReader) ReadPages(path string) (pages []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			pages, err = nil, fmt.Errorf("malformed pdf document: %v", p)
		}
	}()

	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n := doc.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		pages = append(pages, text)
	}

	return pages, nil
}
