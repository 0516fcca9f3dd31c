package entity

import "time"

// Activity log entry types written by the core operations.
const (
	ActivityLeadSaved          = "LEAD_SAVED"
	ActivityBackupCreated      = "BACKUP_CREATED"
	ActivityBackupRestored     = "BACKUP_RESTORED"
	ActivityMigrationCompleted = "MIGRATION_COMPLETED"
)

// ActivityEntry is one append-only audit record. The store assigns ID;
// entries are never updated or deleted.
type ActivityEntry struct {
	ID        int64          `json:"id"`
	Account   string         `json:"account,omitempty"`
	Timestamp string         `json:"timestamp"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

// NewActivityEntry stamps a fresh entry; the ID stays zero until appended.
func NewActivityEntry(kind, message string, data map[string]any) ActivityEntry {
	return ActivityEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Type:      kind,
		Message:   message,
		Data:      data,
	}
}
