package usecase

import "github.com/crescoflow/crescoflow-core/internal/entity"

// AccountData is the full hydration payload returned at unlock time.
type AccountData struct {
	Leads           []entity.Lead         `json:"leads"`
	Campaigns       []entity.Campaign     `json:"campaigns"`
	FBConversations []entity.Conversation `json:"fbConversations"`
	Scripts         []entity.CallScript   `json:"scripts"`
	Sessions        []entity.MeetSession  `json:"sessions"`
	Config          *entity.UserConfig    `json:"config"`
}

// BackupDocument is the self-contained export: every collection, the config
// of every account on this installation, and the full activity log.
type BackupDocument struct {
	Leads         []entity.Lead          `json:"leads"`
	Campaigns     []entity.Campaign      `json:"campaigns"`
	Conversations []entity.Conversation  `json:"conversations"`
	Scripts       []entity.CallScript    `json:"scripts"`
	Sessions      []entity.MeetSession   `json:"sessions"`
	Config        []entity.UserConfig    `json:"config"`
	Logs          []entity.ActivityEntry `json:"logs"`
	BackupDate    string                 `json:"backupDate"`
	Version       string                 `json:"version"`
}

// MigrationSummary reports what the legacy upgrade did at unlock time.
type MigrationSummary struct {
	Ran           bool   `json:"ran"`
	LeadsMigrated int    `json:"leadsMigrated"`
	Warning       string `json:"warning,omitempty"`
}
