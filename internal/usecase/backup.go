package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

const backupVersion = "1.0"

// Backup exports the full store into one self-contained document and can
// replay such a document back in. Export is strictly read-only; a failure
// on any collection aborts the whole export rather than producing a partial
// snapshot.
type Backup struct {
	Leads         LeadRepository
	Campaigns     CampaignRepository
	Conversations ConversationRepository
	Scripts       ScriptRepository
	Sessions      SessionRepository
	Config        ConfigRepository
	Activity      ActivityLog
}

func (uc *Backup) Create(ctx context.Context, account string) (*BackupDocument, error) {
	leads, err := uc.Leads.GetAll(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: leads: %v", ErrBackupRead, err)
	}
	campaigns, err := uc.Campaigns.GetAll(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: campaigns: %v", ErrBackupRead, err)
	}
	conversations, err := uc.Conversations.GetAll(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: conversations: %v", ErrBackupRead, err)
	}
	scripts, err := uc.Scripts.GetAll(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: scripts: %v", ErrBackupRead, err)
	}
	sessions, err := uc.Sessions.GetAll(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: sessions: %v", ErrBackupRead, err)
	}
	configs, err := uc.Config.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: config: %v", ErrBackupRead, err)
	}
	logs, err := uc.Activity.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: logs: %v", ErrBackupRead, err)
	}

	doc := &BackupDocument{
		Leads:         leads,
		Campaigns:     campaigns,
		Conversations: conversations,
		Scripts:       scripts,
		Sessions:      sessions,
		Config:        configs,
		Logs:          logs,
		BackupDate:    time.Now().UTC().Format(time.RFC3339),
		Version:       backupVersion,
	}

	entry := entity.NewActivityEntry(entity.ActivityBackupCreated, "Manual backup created", nil)
	if err := uc.Activity.Append(ctx, account, entry); err != nil {
		log.Warn().Err(err).Str("account", account).Msg("Failed to log backup")
	}

	return doc, nil
}

// Restore replays a backup document into the store. Records are written at
// their original keys without dedup: a backup is trusted to already satisfy
// the identity invariants it was exported under. Log entries are re-appended
// with their original timestamps; the store renumbers them.
func (uc *Backup) Restore(ctx context.Context, account string, doc *BackupDocument) error {
	for i := range doc.Leads {
		if err := uc.Leads.Put(ctx, account, &doc.Leads[i]); err != nil {
			return fmt.Errorf("restore leads: %w", err)
		}
	}
	for i := range doc.Campaigns {
		if err := uc.Campaigns.Put(ctx, account, &doc.Campaigns[i]); err != nil {
			return fmt.Errorf("restore campaigns: %w", err)
		}
	}
	for i := range doc.Conversations {
		if err := uc.Conversations.Put(ctx, account, &doc.Conversations[i]); err != nil {
			return fmt.Errorf("restore conversations: %w", err)
		}
	}
	for i := range doc.Scripts {
		if err := uc.Scripts.Put(ctx, account, &doc.Scripts[i]); err != nil {
			return fmt.Errorf("restore scripts: %w", err)
		}
	}
	for i := range doc.Sessions {
		if err := uc.Sessions.Put(ctx, account, &doc.Sessions[i]); err != nil {
			return fmt.Errorf("restore sessions: %w", err)
		}
	}
	for i := range doc.Config {
		if err := uc.Config.Put(ctx, &doc.Config[i]); err != nil {
			return fmt.Errorf("restore config: %w", err)
		}
	}
	for _, logEntry := range doc.Logs {
		target := logEntry.Account
		if target == "" {
			target = account
		}
		if err := uc.Activity.Append(ctx, target, logEntry); err != nil {
			return fmt.Errorf("restore logs: %w", err)
		}
	}

	entry := entity.NewActivityEntry(
		entity.ActivityBackupRestored,
		fmt.Sprintf("Backup restored: %d leads", len(doc.Leads)),
		map[string]any{"backupDate": doc.BackupDate, "version": doc.Version},
	)
	if err := uc.Activity.Append(ctx, account, entry); err != nil {
		log.Warn().Err(err).Str("account", account).Msg("Failed to log restore")
	}

	return nil
}
