package plan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/taskboard/pkg/errors"
	"github.com/matzehuels/taskboard/pkg/httputil"
)

// fetchTimeout bounds a single planfile download attempt.
const fetchTimeout = 30 * time.Second

// Fetch downloads and validates a planfile from an http(s) URL. The codec
// is picked from the URL's path extension. Transient failures (network
// errors, 5xx responses) are retried with exponential backoff; 4xx
// responses fail immediately.
//
// If client is nil, a default client with a 30 second timeout is used.
func Fetch(ctx context.Context, client *http.Client, url string) (*Plan, error) {
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}
	format, err := DetectFormat(url)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}

	var data []byte
	err = httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return &httputil.RetryableError{Err: fmt.Errorf("fetch %s: status %s", url, resp.Status)}
		case resp.StatusCode != http.StatusOK:
			return errors.New(errors.ErrCodeNetwork, "fetch %s: status %s", url, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		return nil
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch plan %s", url)
	}

	return Unmarshal(data, format)
}
