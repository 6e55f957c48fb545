package readers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gamma-omg/pdf-tools-mcp/pdftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PdfFileReader_ReadPages(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "test.pdf", "hello", "", "world")

	r := PdfFileReader{}
	pages, err := r.ReadPages(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "", "world"}, pages)
}

func Test_PdfFileReader_ReadPages_NoPages(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "empty.pdf")

	r := PdfFileReader{}
	pages, err := r.ReadPages(path)
	require.NoError(t, err)

	assert.Empty(t, pages)
}

func Test_PdfFileReader_ReadPages_Missing(t *testing.T) {
	r := PdfFileReader{}
	_, err := r.ReadPages(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_PdfFileReader_ReadPages_NotPdf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	r := PdfFileReader{}
	_, err := r.ReadPages(path)
	assert.Error(t, err)
}
