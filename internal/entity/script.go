package entity

import "fmt"

// CallScript is a reusable cold-call script with rolling performance counters.
type CallScript struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Content           string  `json:"content"`
	CreatedAt         string  `json:"createdAt"`
	UsageCount        int     `json:"usageCount"`
	PositiveResponses int     `json:"positiveResponses"`
	NegativeResponses int     `json:"negativeResponses"`
	MeetingsBooked    int     `json:"meetingsBooked"`
	Closes            int     `json:"closes"`
	ConversionRate    float64 `json:"conversionRate"`
}

func (s *CallScript) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("script: %w", ErrMalformedRecord)
	}
	return nil
}
