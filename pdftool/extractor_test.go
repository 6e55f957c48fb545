package pdftool

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPageReader struct {
	mock.Mock
}

func (m *mockPageReader) ReadPages(path string) ([]string, error) {
	args := m.Called(path)
	pages, _ := args.Get(0).([]string)
	return pages, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_Extract_ConcatenatesPages(t *testing.T) {
	reader := new(mockPageReader)
	reader.On("ReadPages", "doc.pdf").Return([]string{"first ", "second", "third"}, nil)

	text, err := NewExtractor(discardLogger(), reader).Extract("doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, "first secondthird", text)
	reader.AssertExpectations(t)
}

func Test_Extract_EmptyPagesWarn(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	reader := new(mockPageReader)
	reader.On("ReadPages", "doc.pdf").Return([]string{"", "text", ""}, nil)

	text, err := NewExtractor(log, reader).Extract("doc.pdf")
	require.NoError(t, err)

	assert.Equal(t, "text", text)
	assert.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("no text found on page")))
	assert.Contains(t, logs.String(), "file=doc.pdf")
	assert.Contains(t, logs.String(), "page=1")
	assert.Contains(t, logs.String(), "page=3")
}

func Test_Extract_NoText(t *testing.T) {
	var cases = map[string][]string{
		"all_empty": {"", ""},
		"no_pages":  {},
	}

	for name, pages := range cases {
		t.Run(name, func(t *testing.T) {
			reader := new(mockPageReader)
			reader.On("ReadPages", "doc.pdf").Return(pages, nil)

			text, err := NewExtractor(discardLogger(), reader).Extract("doc.pdf")
			require.NoError(t, err)
			assert.Equal(t, NoText, text)
		})
	}
}

func Test_Extract_ReadError(t *testing.T) {
	cause := errors.New("broken xref")
	reader := new(mockPageReader)
	reader.On("ReadPages", "doc.pdf").Return(nil, cause)

	_, err := NewExtractor(discardLogger(), reader).Extract("doc.pdf")

	var re *ReadError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "doc.pdf", re.Path)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error reading PDF file doc.pdf: broken xref", err.Error())
}
