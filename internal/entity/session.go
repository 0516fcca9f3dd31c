package entity

import "fmt"

const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
	SessionNoShow    = "no_show"
)

// MeetSession is one scheduled or completed sales meeting. LeadID is a
// denormalized reference the caller keeps consistent.
type MeetSession struct {
	ID         string          `json:"id"`
	LeadID     string          `json:"leadId,omitempty"`
	LeadName   string          `json:"leadName"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	Website    string          `json:"website,omitempty"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	Transcript []Message       `json:"transcript"`
	Summary    string          `json:"summary,omitempty"`
	Outcome    string          `json:"outcome,omitempty"` // closed / no_close / follow_up
	LeadSource OutboundChannel `json:"leadSource"`
	Revenue    float64         `json:"revenue,omitempty"`
	AIAdvice   string          `json:"aiAdvice,omitempty"`
}

func (s *MeetSession) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session: %w", ErrMalformedRecord)
	}
	return nil
}
