package entity

import "fmt"

type Integrations struct {
	Gmail     bool `json:"gmail"`
	Calendar  bool `json:"calendar"`
	CRM       bool `json:"crm"`
	Sequencer bool `json:"sequencer"`
}

type OAuthToken struct {
	AccessToken string `json:"access_token"`
	Provider    string `json:"provider"`
}

type DocumentRef struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Type string `json:"type"`
}

type TrainingEntry struct {
	Source  string `json:"source"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// UserConfig is the per-account settings record, keyed by account email.
// Exactly one live record exists per authenticated account.
type UserConfig struct {
	Username        string                `json:"username"`
	Email           string                `json:"email"`
	Password        string                `json:"password,omitempty"`
	CRMAPIKey       string                `json:"crmApiKey"`
	SequencerAPIKey string                `json:"sequencerApiKey"`
	CompanyWebsite  string                `json:"companyWebsite"`
	ToneOfVoice     string                `json:"toneOfVoice"`
	Documents       []DocumentRef         `json:"documents"`
	TrainingData    []TrainingEntry       `json:"trainingData"`
	Integrations    Integrations          `json:"integrations"`
	Tokens          map[string]OAuthToken `json:"tokens,omitempty"`

	CRMConnected       bool `json:"crmConnected,omitempty"`
	SequencerConnected bool `json:"sequencerConnected,omitempty"`
}

func (c *UserConfig) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("config: %w", ErrMalformedRecord)
	}
	return nil
}

// NewDefaultConfig seeds the config record created on first unlock of an
// account that has no stored settings yet.
func NewDefaultConfig(email string) *UserConfig {
	return &UserConfig{
		Username:     email,
		Email:        email,
		ToneOfVoice:  "Professioneel, direct en gefocust op resultaat.",
		Documents:    []DocumentRef{},
		TrainingData: []TrainingEntry{},
	}
}
