package port

import (
	"context"
	"time"

	"kwai-ads/internal/core/domain"
)

// AdsPlatform is the outbound port to the Kwai Ads marketing API. Every
// method retries once after an authorization failure and surfaces any
// other failure without retrying.
type AdsPlatform interface {
	// QueryAdSetsByCampaign returns every ad set of a campaign, following
	// pagination.
	QueryAdSetsByCampaign(ctx context.Context, accountID, campaignID int64) ([]domain.AdSet, error)
	// QueryAdSet returns a single ad set.
	QueryAdSet(ctx context.Context, accountID, unitID int64) (domain.AdSet, error)
	// QueryMetric returns the event values of an ad set over [start, end].
	QueryMetric(ctx context.Context, accountID, unitID int64, start, end time.Time) (domain.MetricSnapshot, error)
	// UpdateBid sets the bid of an ad set in micro-units.
	UpdateBid(ctx context.Context, accountID, unitID, bid int64) error
	// SetOpenStatus switches delivery of an ad set on or off.
	SetOpenStatus(ctx context.Context, accountID, unitID int64, status domain.OpenStatus) error
	// DuplicateAdSet creates count copies of an ad set and returns them.
	DuplicateAdSet(ctx context.Context, accountID, unitID int64, count int) ([]domain.AdSet, error)
}

// TokenSource hands out bearer tokens for the ads platform.
type TokenSource interface {
	// Token returns the current access token, refreshing when none is held.
	Token(ctx context.Context) (string, error)
	// Refresh replaces rejected with a new access token. When the held
	// token already differs from rejected it is returned without a new
	// exchange. Concurrent callers share one refresh.
	Refresh(ctx context.Context, rejected string) (string, error)
}
