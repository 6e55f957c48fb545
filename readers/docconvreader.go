package readers

import (
	"fmt"
	"strings"

	"code.sajari.com/docconv/v2"
)

// DocconvFileReader converts the whole document in one pass. docconv does not
// expose page boundaries, so the document is reported as a single page.
// pdftotext emits line breaks even for blank pages; surrounding whitespace is
// dropped so a document without text reads as an empty page.
type DocconvFileReader struct {
}

func (r *DocconvFileReader) ReadPages(path string) ([]string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to convert pdf document: %w", err)
	}

	return []string{strings.TrimSpace(res.Body)}, nil
}
