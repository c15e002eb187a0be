package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"kwai-ads/internal/core/domain"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRule(event domain.Event, cond domain.Condition, threshold float64, kind domain.ActionKind, magnitude float64) domain.AutomationRule {
	return domain.AutomationRule{
		ID:         uuid.New(),
		Title:      "rule " + string(kind),
		UserID:     uuid.New(),
		AccountID:  10,
		CampaignID: 99,
		Event:      event,
		Condition:  cond,
		Threshold:  threshold,
		Action:     domain.Action{Kind: kind, Magnitude: magnitude},
	}
}

func snapshot(unitID int64, values map[domain.Event]float64) domain.MetricSnapshot {
	return domain.MetricSnapshot{
		UnitID:      unitID,
		WindowStart: testNow.Add(-24 * time.Hour),
		WindowEnd:   testNow,
		Values:      values,
	}
}
