package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goliatone/go-mapsvg/pkg/imagemap"
)

func loadHTTP(ctx context.Context, client *http.Client, rawURL string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("imagemap loader: http client is not configured")
	}
	if rawURL == "" {
		return nil, errors.New("imagemap loader: url is required")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("imagemap loader: build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagemap loader: %w: fetch %s: %v", imagemap.ErrUnreadable, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("imagemap loader: %w: %s", imagemap.ErrNotFound, rawURL)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("imagemap loader: %w: fetch %s: status %d", imagemap.ErrUnreadable, rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imagemap loader: %w: read %s: %v", imagemap.ErrUnreadable, rawURL, err)
	}
	return data, nil
}
