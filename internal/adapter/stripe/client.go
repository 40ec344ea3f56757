package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/iho/paydash/internal/domain"
)

const (
	defaultBaseURL   = "https://api.stripe.com"
	defaultPageLimit = 100
)

// Config holds Stripe client configuration.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	PageLimit       int
	RetryMaxElapsed time.Duration
}

// Client is a minimal Stripe API client covering the two read-only
// endpoints the reporting pipeline consumes. Pagination is strictly
// sequential: the next page is requested only after the previous one has
// been decoded.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	pageLimit       int
	retryMaxElapsed time.Duration
}

// NewClient creates a new Client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = defaultPageLimit
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = 10 * time.Second
	}

	return &Client{
		baseURL:         cfg.BaseURL,
		httpClient:      &http.Client{Timeout: cfg.Timeout},
		pageLimit:       cfg.PageLimit,
		retryMaxElapsed: cfg.RetryMaxElapsed,
	}
}

// listEnvelope is Stripe's list wrapper.
type listEnvelope struct {
	Object  string          `json:"object"`
	Data    json.RawMessage `json:"data"`
	HasMore bool            `json:"has_more"`
}

// getPage fetches one page. Transport failures, 429 and 5xx responses are
// retried with exponential backoff; every other failure is permanent. All
// failures surface as ErrSourceUnavailable.
func (c *Client) getPage(ctx context.Context, apiKey, path string, query url.Values, out *listEnvelope) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return backoff.Permanent(fmt.Errorf("decode %s response: %w", path, err))
			}
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("%s returned status %d", path, resp.StatusCode))
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = c.retryMaxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	return nil
}

// requiredString unwraps a required string field of a record.
func requiredString(v *string, object, id, field string) (string, error) {
	if v == nil {
		return "", missingField(object, id, field)
	}
	return *v, nil
}

// requiredInt unwraps a required integer field of a record. A missing
// numeric field is a fetch error, never a zero.
func requiredInt(v *int64, object, id, field string) (int64, error) {
	if v == nil {
		return 0, missingField(object, id, field)
	}
	return *v, nil
}

func missingField(object, id, field string) error {
	if id == "" {
		id = "<unknown>"
	}
	return fmt.Errorf("%w: %s %s missing field %q", domain.ErrMalformedRecord, object, id, field)
}
