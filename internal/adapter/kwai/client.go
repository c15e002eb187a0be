// Package kwai is the outbound adapter for the Kwai Ads marketing API.
package kwai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"kwai-ads/internal/config/configs"
	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/core/port"
	"kwai-ads/internal/metrics"
)

const maxBodySize = 10 << 20

// ErrUnitNotFound is returned when a unit lookup yields no rows.
var ErrUnitNotFound = errors.New("kwai unit not found")

// Client implements port.AdsPlatform. All calls go through do, which
// authenticates the request, throttles it and retries once after the
// platform rejects the access token.
type Client struct {
	cfg     configs.Kwai
	baseURL string
	http    *http.Client
	tokens  port.TokenSource
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient builds a client. The http.Client should carry a timeout; each
// request is additionally bounded by cfg.RequestTimeout.
func NewClient(cfg configs.Kwai, httpClient *http.Client, tokens port.TokenSource, logger *slog.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// NewHTTPClient returns the http.Client shared by the token manager and
// the API client.
func NewHTTPClient(cfg configs.Kwai) *http.Client {
	return &http.Client{Timeout: cfg.RequestTimeout}
}

// envelope is the response shape of every marketing API endpoint.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do posts body to path and decodes the data field of a successful
// response into out, which may be nil. A 401 status triggers one token
// refresh and one retry; a second 401 is returned as a PlatformError.
func (c *Client) do(ctx context.Context, op, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.PlatformRequests.WithLabelValues(op, metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("kwai %s: encode request: %w", op, err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("kwai %s: %w", op, err)
		}

		env, err := c.post(ctx, path, token, payload)
		if err != nil {
			return fmt.Errorf("kwai %s: %w", op, err)
		}

		switch env.Status {
		case http.StatusOK:
			if out == nil || len(env.Data) == 0 {
				return nil
			}
			if err = json.Unmarshal(env.Data, out); err != nil {
				return fmt.Errorf("kwai %s: decode data: %w", op, err)
			}
			return nil
		case http.StatusUnauthorized:
			if attempt > 0 {
				break
			}
			c.logger.Info("kwai rejected access token, refreshing", slog.String("op", op))
			if _, err = c.tokens.Refresh(ctx, token); err != nil {
				return fmt.Errorf("kwai %s: %w", op, err)
			}
			continue
		default:
			return &domain.PlatformError{Op: op, Status: env.Status, Message: env.Message}
		}
	}
	return &domain.PlatformError{Op: op, Status: http.StatusUnauthorized, Message: "access token rejected after refresh"}
}

func (c *Client) post(ctx context.Context, path, token string, payload []byte) (*envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Access-Token", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode == http.StatusUnauthorized {
			return &envelope{Status: http.StatusUnauthorized}, nil
		}
		return nil, fmt.Errorf("unexpected response (http %d): %w", resp.StatusCode, err)
	}
	if env.Status == 0 {
		env.Status = resp.StatusCode
	}
	return &env, nil
}
