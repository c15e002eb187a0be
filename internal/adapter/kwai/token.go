package kwai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"kwai-ads/internal/config/configs"
	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/metrics"
)

// TokenManager holds the access token of the Kwai marketing API and
// refreshes it with the long lived refresh token. Concurrent refreshes are
// coalesced: every caller waiting while a refresh is in flight receives the
// result of that single call.
type TokenManager struct {
	cfg    configs.Kwai
	client *http.Client
	logger *slog.Logger

	mu           sync.RWMutex
	token        string
	refreshToken string

	group singleflight.Group

	// joined, when set, is called once a caller waits on the shared
	// refresh.
	joined func()
}

// NewTokenManager returns a manager seeded with cfg.AccessToken, which may
// be empty.
func NewTokenManager(cfg configs.Kwai, client *http.Client, logger *slog.Logger) *TokenManager {
	return &TokenManager{
		cfg:          cfg,
		client:       client,
		logger:       logger,
		token:        cfg.AccessToken,
		refreshToken: cfg.RefreshToken,
	}
}

// Token returns the current access token. When no token is held yet it
// performs a refresh first.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if token := m.current(); token != "" {
		return token, nil
	}
	return m.Refresh(ctx, "")
}

// Refresh exchanges the refresh token for a new access token. rejected is
// the token the platform refused; if another caller has already replaced it
// the current token is returned without an exchange. If a refresh is
// already in flight the caller waits for it instead of issuing another
// request. The exchange runs detached from the caller's cancellation so that
// one waiter giving up does not fail the others; it is still bounded by the
// configured request timeout. Errors match domain.ErrAuthRefreshFailed.
func (m *TokenManager) Refresh(ctx context.Context, rejected string) (string, error) {
	if current := m.current(); current != "" && current != rejected {
		return current, nil
	}

	ch := m.group.DoChan("refresh", func() (any, error) {
		if current := m.current(); current != "" && current != rejected {
			return current, nil
		}

		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.cfg.RequestTimeout)
		defer cancel()

		token, err := m.exchange(rctx)
		metrics.TokenRefreshes.WithLabelValues(metrics.Outcome(err)).Inc()
		if err != nil {
			m.logger.Error("kwai token refresh failed", slog.Any("error", err))
			return "", &domain.AuthRefreshError{Err: err}
		}

		m.mu.Lock()
		m.token = token
		m.mu.Unlock()
		m.logger.Info("kwai access token refreshed")
		return token, nil
	})

	if m.joined != nil {
		m.joined()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (m *TokenManager) current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	Status       int    `json:"status"`
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (m *TokenManager) exchange(ctx context.Context) (string, error) {
	m.mu.RLock()
	refreshToken := m.refreshToken
	m.mu.RUnlock()

	payload, err := json.Marshal(tokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
		ClientID:     m.cfg.ClientID,
		ClientSecret: m.cfg.ClientSecret,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.AuthURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}

	var out tokenResponse
	if err = json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode token response (http %d): %w", resp.StatusCode, err)
	}
	if out.Status != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", out.Status, out.Message)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}

	// The platform may rotate the refresh token.
	if out.RefreshToken != "" {
		m.mu.Lock()
		m.refreshToken = out.RefreshToken
		m.mu.Unlock()
	}
	return out.AccessToken, nil
}
