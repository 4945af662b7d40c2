package external

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sicproject/backend/internal/pkg/apperrors"
)

// DefaultFetchTimeout bounds one outbound fetch.
const DefaultFetchTimeout = 5 * time.Second

// HTTPFetcher retrieves URL content with a bounded budget.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher creates a new HTTPFetcher.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{},
		timeout: DefaultFetchTimeout,
	}
}

// Fetch retrieves the bytes behind url. The whole request shares one
// fixed wall-clock budget; a timeout surfaces as ExternalCallTimeout.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: fetch exceeded %s", apperrors.ErrExternalCallTimeout, f.timeout)
		}
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return body, fmt.Errorf("%w: fetch exceeded %s", apperrors.ErrExternalCallTimeout, f.timeout)
		}
		return body, fmt.Errorf("failed to read fetch response: %w", err)
	}

	return body, nil
}
