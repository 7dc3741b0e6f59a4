// File: internal/avatar/avatar.go
package avatar

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// randInt picks the random variant; tests override it.
var randInt = rand.Intn

// Fetcher retrieves random avatar URLs from an image-placeholder service.
// No retries; a transport failure or non-200 surfaces as an upstream error.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewFetcher(baseURL string) *Fetcher {
	return &Fetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Random requests a random avatar from the upstream service and returns its
// URL after any redirects.
func (f *Fetcher) Random(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s?shape=circle&n=%d", f.BaseURL, randInt(1_000_000))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("avatar request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("avatar fetch: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar service returned %d", resp.StatusCode)
	}
	return resp.Request.URL.String(), nil
}
