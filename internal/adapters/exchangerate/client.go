// Package exchangerate fetches live exchange rate tables over HTTP.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quickconvert/quickconvert/internal/apperrors"
	"github.com/quickconvert/quickconvert/internal/models"
)

const (
	// DefaultBaseURL is the rate endpoint; the base currency code is appended
	// as the final path segment.
	DefaultBaseURL = "https://open.er-api.com/v6/latest"

	// DefaultTimeout bounds a single rate fetch.
	DefaultTimeout = 5 * time.Second
)

// ClientOptions configures a Client. Zero values fall back to defaults.
type ClientOptions struct {
	BaseURL      string
	BaseCurrency string
	Codes        []string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Client fetches a full rate table against a base currency and filters it to
// the configured currency codes. It implements ports.RateSource.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	baseCurrency string
	codes        []string
	logger       *slog.Logger
}

// NewClient creates a rate client for the given options.
func NewClient(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		endpoint:     strings.TrimSuffix(baseURL, "/") + "/" + opts.BaseCurrency,
		baseCurrency: opts.BaseCurrency,
		codes:        opts.Codes,
		logger:       logger,
	}
}

// ratesResponse mirrors the relevant fields of the provider's JSON body.
type ratesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// FetchRates performs one GET against the rate endpoint and returns the rates
// for every configured currency code. Any transport or payload problem wraps
// apperrors.ErrExchangeRateUnavailable; the fetch is all-or-nothing, so a
// single missing code fails the whole table.
func (c *Client) FetchRates(ctx context.Context) (models.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building rate request: %v", apperrors.ErrExchangeRateUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("exchange rate fetch failed", slog.String("error", err.Error()))
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: request timed out, check the network connection", apperrors.ErrExchangeRateUnavailable)
		}
		return nil, fmt.Errorf("%w: could not reach the exchange rate service, check the network connection", apperrors.ErrExchangeRateUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: exchange rate service returned status %d", apperrors.ErrExchangeRateUnavailable, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: malformed exchange rate payload: %v", apperrors.ErrExchangeRateUnavailable, err)
	}

	if body.Result != "success" {
		return nil, fmt.Errorf("%w: exchange rate service reported result %q", apperrors.ErrExchangeRateUnavailable, body.Result)
	}

	var missing []string
	table := make(models.RateTable, len(c.codes))
	for _, code := range c.codes {
		rate, ok := body.Rates[code]
		if !ok {
			missing = append(missing, code)
			continue
		}
		table[code] = rate
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: response is missing rates for: %s", apperrors.ErrExchangeRateUnavailable, strings.Join(missing, ", "))
	}

	return table, nil
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
