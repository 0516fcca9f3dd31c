package entity

import "fmt"

type CampaignMetrics struct {
	Sent     int `json:"sent"`
	Opened   int `json:"opened"`
	Clicked  int `json:"clicked"`
	Spam     int `json:"spam"`
	Replied  int `json:"replied"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Unsure   int `json:"unsure"`
	Booked   int `json:"booked"`
	Closed   int `json:"closed"`
}

// Campaign is one outreach campaign with rolling counters. Counters are
// updated by read-modify-write at the call site, never patched in place.
type Campaign struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Channel   OutboundChannel `json:"channel"`
	StartDate string          `json:"startDate"`
	Metrics   CampaignMetrics `json:"metrics"`
}

func (c *Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("campaign: %w", ErrMalformedRecord)
	}
	return nil
}
