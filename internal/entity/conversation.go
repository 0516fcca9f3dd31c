package entity

import "fmt"

type Message struct {
	Role      string `json:"role"` // bot / user / system
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type ContactInfoExchanged struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Conversation is one social-messenger thread with its sentiment counters.
// Linkage to a Lead is by denormalized name/contact fields only; the store
// enforces no foreign keys across collections.
type Conversation struct {
	ID                   string               `json:"id"`
	LeadName             string               `json:"leadName"`
	Summary              string               `json:"summary"`
	Qualified            bool                 `json:"qualified"`
	MeetingBooked        bool                 `json:"meetingBooked"`
	MeetingClosed        bool                 `json:"meetingClosed"`
	PositiveSentiment    int                  `json:"positiveSentiment"`
	NegativeSentiment    int                  `json:"negativeSentiment"`
	UnsureSentiment      int                  `json:"unsureSentiment"`
	InterestScore        int                  `json:"interestScore"`
	Transcript           []Message            `json:"transcript"`
	ContactInfoExchanged ContactInfoExchanged `json:"contactInfoExchanged"`
	LastUpdate           string               `json:"lastUpdate"`
	AnalysisPerformed    bool                 `json:"analysisPerformed,omitempty"`
}

func (c *Conversation) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("conversation: %w", ErrMalformedRecord)
	}
	return nil
}
