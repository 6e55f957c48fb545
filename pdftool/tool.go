package pdftool

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gamma-omg/pdf-tools-mcp/source"
)

const (
	Name        = "pdf_reader"
	Description = "A tool that reads PDF files and extracts the text from them. " +
		"Input can be a local file path or a URL to a PDF."
	ArgName        = "file_path_or_url"
	ArgDescription = "The path or URL to the PDF file"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Tool struct {
	log       *slog.Logger
	fetcher   Fetcher
	extractor *Extractor
	dir       string
	unique    bool
}

// NewTool creates the pdf reading tool. Remote documents are stored under dir
// for the duration of a call; an empty dir means the working directory.
func NewTool(log *slog.Logger, fetcher Fetcher, reader PageReader, dir string) *Tool {
	return &Tool{
		log:       log,
		fetcher:   fetcher,
		extractor: NewExtractor(log, reader),
		dir:       dir,
	}
}

// WithUniqueNames stores remote documents under a random name instead of the
// last segment of their URL, so concurrent calls never share a file.
func (t *Tool) WithUniqueNames(unique bool) *Tool {
	t.unique = unique
	return t
}

// Run never fails: every error is turned into a message for the caller.
func (t *Tool) Run(ctx context.Context, ref string) (result string) {
	defer func() {
		if p := recover(); p != nil {
			t.log.Error("pdf extraction panicked", "ref", ref, "panic", p)
			result = Format("", fmt.Errorf("%v", p))
		}
	}()

	return Format(t.Extract(ctx, ref))
}

// RunAsync is not supported; use Run.
func (t *Tool) RunAsync(ctx context.Context, ref string) (string, error) {
	return "", errors.ErrUnsupported
}

// Extract resolves ref to a local file and returns its text. A remote
// document is downloaded to a temporary file that is removed before Extract
// returns, whatever the outcome.
func (t *Tool) Extract(ctx context.Context, ref string) (string, error) {
	path := ref
	if source.Classify(ref) == source.Remote {
		name := t.localName(ref)
		path = filepath.Join(t.dir, name)
		if isFileName(name) {
			defer t.release(path)
		}

		if err := t.materialize(ctx, ref, name, path); err != nil {
			return "", err
		}
	}

	return t.extractor.Extract(path)
}

// Format converts the result of Extract into the tool output.
func Format(text string, err error) string {
	var unreachable *UnreachableError
	switch {
	case err == nil:
		return text
	case errors.As(err, &unreachable):
		return unreachable.Error()
	default:
		return fmt.Sprintf("Error processing PDF: %s", err)
	}
}

// localName is the URL's last segment taken verbatim unless unique names are
// enabled. Calls sharing that segment share the file.
func (t *Tool) localName(url string) string {
	if t.unique {
		return source.TempName(url)
	}

	return source.FileName(url)
}

// isFileName rejects names that would resolve to the download directory or
// one of its parents.
func isFileName(name string) bool {
	return name != "" && name != "." && name != ".."
}

func (t *Tool) materialize(ctx context.Context, url, name, path string) error {
	payload, err := t.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	if payload == nil {
		return &UnreachableError{URL: url}
	}

	if !isFileName(name) {
		return fmt.Errorf("unable to derive a file name from %s", url)
	}

	err = os.WriteFile(path, payload, 0o644)
	if err != nil {
		return fmt.Errorf("failed to store downloaded pdf: %w", err)
	}

	t.log.Debug("remote pdf stored", "url", url, "file", path)
	return nil
}

// release removes a downloaded file. Failures are logged and otherwise ignored
// so they never replace the result of the call.
func (t *Tool) release(path string) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.log.Debug("failed to remove downloaded pdf", "file", path, "error", err)
	}
}
