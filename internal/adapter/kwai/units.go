package kwai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"kwai-ads/internal/core/domain"
)

const (
	pathUnitQuery        = "/unit/dspUnitPageQueryPerformance"
	pathUnitUpdate       = "/unit/dspUnitUpdatePerformance"
	pathUnitUpdateStatus = "/unit/dspUnitUpdateOpenStatusPerformance"
	pathUnitAdd          = "/unit/dspUnitAddPerformance"

	maxPages = 1000
)

type unitQuery struct {
	AccountID      int64   `json:"accountId"`
	CampaignIDList []int64 `json:"campaignIdList,omitempty"`
	UnitIDList     []int64 `json:"unitIdList,omitempty"`
	PageNo         int     `json:"pageNo,omitempty"`
	PageSize       int     `json:"pageSize,omitempty"`
}

type unitPage struct {
	Total int               `json:"total"`
	Data  []json.RawMessage `json:"data"`
}

// unitFields are the unit attributes modelled by domain.AdSet. Bid may be
// sent as a number or a numeric string.
type unitFields struct {
	UnitID     int64       `json:"unitId"`
	UnitName   string      `json:"unitName"`
	CampaignID int64       `json:"campaignId"`
	Bid        json.Number `json:"bid"`
	OpenStatus int         `json:"openStatus"`
}

func decodeUnit(accountID int64, raw json.RawMessage) (domain.AdSet, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.AdSet{}, fmt.Errorf("decode unit: %w", err)
	}
	var f unitFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.AdSet{}, fmt.Errorf("decode unit: %w", err)
	}
	bid := int64(0)
	if f.Bid != "" {
		d, err := decimal.NewFromString(f.Bid.String())
		if err != nil {
			return domain.AdSet{}, fmt.Errorf("decode unit %d bid: %w", f.UnitID, err)
		}
		bid = d.Round(0).IntPart()
	}
	return domain.AdSet{
		ID:         f.UnitID,
		Name:       f.UnitName,
		CampaignID: f.CampaignID,
		AccountID:  accountID,
		Bid:        bid,
		OpenStatus: domain.OpenStatus(f.OpenStatus),
		Raw:        doc,
	}, nil
}

// QueryAdSetsByCampaign returns every unit of a campaign. Pages are
// requested until the reported total is reached or a short page arrives.
func (c *Client) QueryAdSetsByCampaign(ctx context.Context, accountID, campaignID int64) ([]domain.AdSet, error) {
	var sets []domain.AdSet
	for pageNo := 1; pageNo <= maxPages; pageNo++ {
		var page unitPage
		err := c.do(ctx, "query units", pathUnitQuery, unitQuery{
			AccountID:      accountID,
			CampaignIDList: []int64{campaignID},
			PageNo:         pageNo,
			PageSize:       c.cfg.PageSize,
		}, &page)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Data {
			set, err := decodeUnit(accountID, raw)
			if err != nil {
				return nil, err
			}
			set.CampaignID = campaignID
			sets = append(sets, set)
		}
		if len(page.Data) < c.cfg.PageSize || len(sets) >= page.Total {
			break
		}
	}
	c.logger.Debug("kwai units loaded",
		slog.Int64("account_id", accountID),
		slog.Int64("campaign_id", campaignID),
		slog.Int("count", len(sets)))
	return sets, nil
}

// QueryAdSet returns a single unit with its full platform document.
func (c *Client) QueryAdSet(ctx context.Context, accountID, unitID int64) (domain.AdSet, error) {
	var page unitPage
	err := c.do(ctx, "query unit", pathUnitQuery, unitQuery{
		AccountID:  accountID,
		UnitIDList: []int64{unitID},
	}, &page)
	if err != nil {
		return domain.AdSet{}, err
	}
	if len(page.Data) == 0 {
		return domain.AdSet{}, fmt.Errorf("unit %d: %w", unitID, ErrUnitNotFound)
	}
	return decodeUnit(accountID, page.Data[0])
}

type unitUpdate struct {
	UnitID int64 `json:"unitId"`
	Bid    int64 `json:"bid"`
}

// UpdateBid sets the bid of a unit. bid is in micro-units.
func (c *Client) UpdateBid(ctx context.Context, accountID, unitID, bid int64) error {
	return c.do(ctx, "update bid", pathUnitUpdate, struct {
		AccountID int64        `json:"accountId"`
		Units     []unitUpdate `json:"unitUpdateModelList"`
	}{
		AccountID: accountID,
		Units:     []unitUpdate{{UnitID: unitID, Bid: bid}},
	}, nil)
}

// SetOpenStatus switches delivery of a unit.
func (c *Client) SetOpenStatus(ctx context.Context, accountID, unitID int64, status domain.OpenStatus) error {
	return c.do(ctx, "update open status", pathUnitUpdateStatus, struct {
		AccountID  int64   `json:"accountId"`
		UnitIDList []int64 `json:"unitIdList"`
		OpenStatus int     `json:"openStatus"`
	}{
		AccountID:  accountID,
		UnitIDList: []int64{unitID},
		OpenStatus: int(status),
	}, nil)
}

// DuplicateName is the name given to the n-th copy of a unit.
func DuplicateName(name string, n int) string {
	return fmt.Sprintf("%s (Duplicado %d)", name, n)
}

// DuplicateAdSet creates count copies of a unit. Each copy carries every
// field of the source document except its id, is named with DuplicateName
// and is switched on. Ids assigned by the platform are set on the returned
// ad sets when the response reports them.
func (c *Client) DuplicateAdSet(ctx context.Context, accountID, unitID int64, count int) ([]domain.AdSet, error) {
	if count <= 0 {
		return nil, nil
	}
	src, err := c.QueryAdSet(ctx, accountID, unitID)
	if err != nil {
		return nil, err
	}

	models := make([]map[string]json.RawMessage, 0, count)
	copies := make([]domain.AdSet, 0, count)
	for n := 1; n <= count; n++ {
		name := DuplicateName(src.Name, n)
		doc := make(map[string]json.RawMessage, len(src.Raw))
		for k, v := range src.Raw {
			doc[k] = v
		}
		delete(doc, "unitId")
		doc["unitName"], _ = json.Marshal(name)
		doc["openStatus"], _ = json.Marshal(int(domain.OpenStatusActive))
		models = append(models, doc)

		dup := src
		dup.ID = 0
		dup.Name = name
		dup.OpenStatus = domain.OpenStatusActive
		dup.Raw = doc
		copies = append(copies, dup)
	}

	var created struct {
		UnitIDList []int64 `json:"unitIdList"`
	}
	err = c.do(ctx, "add units", pathUnitAdd, struct {
		AccountID int64                        `json:"accountId"`
		Units     []map[string]json.RawMessage `json:"unitAddModelList"`
	}{
		AccountID: accountID,
		Units:     models,
	}, &created)
	if err != nil {
		return nil, err
	}
	if len(created.UnitIDList) == len(copies) {
		for i := range copies {
			copies[i].ID = created.UnitIDList[i]
		}
	}
	return copies, nil
}
