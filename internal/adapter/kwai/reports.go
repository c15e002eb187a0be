package kwai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"kwai-ads/internal/core/domain"
)

const (
	pathUnitEffect = "/report/dspUnitEffectQuery"

	granularitySummary = 3
)

type effectQuery struct {
	AccountID     int64   `json:"accountId"`
	UnitIDList    []int64 `json:"unitIdList"`
	Granularity   int     `json:"granularity"`
	DataBeginTime int64   `json:"dataBeginTime"`
	DataEndTime   int64   `json:"dataEndTime"`
	TimeZoneIana  string  `json:"timeZoneIana"`
}

// QueryMetric fetches the effect report of a unit between start and end.
// Only events present in the first report row end up in the snapshot.
func (c *Client) QueryMetric(ctx context.Context, accountID, unitID int64, start, end time.Time) (domain.MetricSnapshot, error) {
	snap := domain.MetricSnapshot{
		UnitID:      unitID,
		WindowStart: start,
		WindowEnd:   end,
		Values:      make(map[domain.Event]float64),
	}

	var report struct {
		Data []map[string]json.RawMessage `json:"data"`
	}
	err := c.do(ctx, "query unit effect", pathUnitEffect, effectQuery{
		AccountID:     accountID,
		UnitIDList:    []int64{unitID},
		Granularity:   granularitySummary,
		DataBeginTime: start.UnixMilli(),
		DataEndTime:   end.UnixMilli(),
		TimeZoneIana:  c.cfg.TimeZone,
	}, &report)
	if err != nil {
		return snap, err
	}
	if len(report.Data) == 0 {
		return snap, nil
	}

	row := report.Data[0]
	for _, event := range domain.Events() {
		raw, ok := row[event.ReportField()]
		if !ok {
			continue
		}
		v, present, err := parseNumber(raw)
		if err != nil {
			return snap, fmt.Errorf("kwai unit %d %s: %w", unitID, event, err)
		}
		if present {
			snap.Values[event] = v
		}
	}
	return snap, nil
}

// parseNumber reads a JSON number or numeric string. null and "" are
// reported as absent.
func parseNumber(raw json.RawMessage) (float64, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false, err
		}
		if s == "" {
			return 0, false, nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false, err
	}
	return d.InexactFloat64(), true, nil
}
