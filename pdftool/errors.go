package pdftool

import "fmt"

// ReadError means the file could not be opened or parsed as a PDF.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("Error reading PDF file %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// UnreachableError is the soft outcome of a remote fetch that returned no payload.
type UnreachableError struct {
	URL string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("Unable to access the PDF at %s. Please check the URL.", e.URL)
}
