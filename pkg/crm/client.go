package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// requestTimeout bounds every external CRM call. A timed-out call fails the
// affected link only, never the whole sync.
const requestTimeout = 30 * time.Second

// apiClient wraps an http.Client with a per-provider rate limiter and the
// shared response classification every adapter uses.
type apiClient struct {
	http    *http.Client
	limiter *rate.Limiter
}

func newAPIClient() *apiClient {
	return &apiClient{
		http: &http.Client{
			Timeout: requestTimeout,
		},
		// Conservative default well under every provider's burst limits.
		limiter: rate.NewLimiter(rate.Limit(8), 16),
	}
}

// doJSON sends a JSON request and decodes a JSON response into out (may be
// nil). Responses are classified: 401/403 -> ErrUnauthenticated, 404 ->
// ErrNotFound, timeouts and 5xx -> ErrProviderUnavailable.
func (c *apiClient) doJSON(ctx context.Context, method, rawurl, bearer string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.do(req, out)
}

// postForm sends a form-encoded request (OAuth token endpoints) and decodes
// the JSON response into out.
func (c *apiClient) postForm(ctx context.Context, rawurl string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawurl, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

func (c *apiClient) do(req *http.Request, out interface{}) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		return fmt.Errorf("CRM request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthenticated, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("CRM request rejected: status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// refreshError classifies a token endpoint failure. Outages and timeouts
// pass through unchanged so callers retry later instead of discarding a
// refresh token that is still good; only an actual rejection becomes
// ErrRefreshFailed.
func refreshError(err error) error {
	if errors.Is(err, ErrProviderUnavailable) || isTimeout(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
