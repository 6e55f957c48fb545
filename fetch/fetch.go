package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchError reports a transport failure; a non-200 status is not one.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Error while downloading the PDF: %s", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Fetcher struct {
	log    *slog.Logger
	client *resty.Client
}

// NewFetcher creates a fetcher. A zero timeout keeps the client default.
func NewFetcher(log *slog.Logger, timeout time.Duration) *Fetcher {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Fetcher{
		log:    log,
		client: client,
	}
}

// Fetch performs a single GET. It returns a nil payload without error when the
// server answers with anything but 200 or with an empty body.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		f.log.Warn("remote document unavailable", "url", url, "status", resp.StatusCode())
		return nil, nil
	}

	body := resp.Body()
	if len(body) == 0 {
		f.log.Warn("remote document is empty", "url", url)
		return nil, nil
	}

	f.log.Info("remote document fetched", "url", url, "bytes", len(body))
	return body, nil
}
