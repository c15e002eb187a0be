package domain

import "encoding/json"

// MicrosPerUnit is the platform fixed-point scale for monetary values.
const MicrosPerUnit = 1_000_000

// OpenStatus is the delivery switch of an ad set.
type OpenStatus int

const (
	OpenStatusActive OpenStatus = 1
	OpenStatusPaused OpenStatus = 2
)

// AdSet is a platform unit beneath a campaign. Bid is in micro-units.
// Raw keeps the document returned by the platform so that duplicates carry
// every targeting and budget field, not only the ones modelled here.
type AdSet struct {
	ID         int64                      `json:"unitId"`
	Name       string                     `json:"unitName"`
	CampaignID int64                      `json:"campaignId"`
	AccountID  int64                      `json:"accountId"`
	Bid        int64                      `json:"bid"`
	OpenStatus OpenStatus                 `json:"openStatus"`
	Raw        map[string]json.RawMessage `json:"-"`
}
