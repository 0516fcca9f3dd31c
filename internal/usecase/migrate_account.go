package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// LegacyMigration is the one-time upgrade from the flat snapshot format into
// the indexed store, invoked when an account unlocks. It only runs while the
// account's lead collection is still empty: the first lead written through
// the new store, by this migration or by normal use, retires the upgrade
// path for good. The snapshot itself is never deleted.
type LegacyMigration struct {
	Snapshot      SnapshotSource
	Leads         LeadRepository
	Campaigns     CampaignRepository
	Conversations ConversationRepository
	Scripts       ScriptRepository
	Sessions      SessionRepository
	Config        ConfigRepository
	Ingest        *BulkIngest
	Activity      ActivityLog
}

// Run reports whether the migration executed and how many leads it stored.
// A non-nil error wraps ErrMigrationPartial and must not block login; the
// caller logs it and proceeds with whatever was migrated.
func (uc *LegacyMigration) Run(ctx context.Context, account string) (bool, int, error) {
	snap, ok, err := uc.Snapshot.Account(account)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrMigrationPartial, err)
	}
	if !ok {
		return false, 0, nil
	}

	existing, err := uc.Leads.GetAll(ctx, account)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrMigrationPartial, err)
	}
	if len(existing) > 0 {
		log.Debug().Str("account", account).Msg("Store already populated, skipping legacy migration")
		return false, 0, nil
	}

	var failures []error

	// Legacy leads pass through the regular ingest so duplicates inside the
	// snapshot collapse the same way fresh scrapes do.
	saved, err := uc.Ingest.Execute(ctx, account, snap.Leads)
	if err != nil {
		failures = append(failures, err)
	}

	if snap.Config != nil {
		if err := uc.Config.Put(ctx, snap.Config); err != nil {
			failures = append(failures, err)
		}
	}

	// The remaining collections have no identity signals; they are replayed
	// record by record without dedup.
	for i := range snap.Campaigns {
		if err := uc.Campaigns.Put(ctx, account, &snap.Campaigns[i]); err != nil {
			failures = append(failures, err)
			break
		}
	}
	for i := range snap.FBConversations {
		if err := uc.Conversations.Put(ctx, account, &snap.FBConversations[i]); err != nil {
			failures = append(failures, err)
			break
		}
	}
	for i := range snap.Scripts {
		if err := uc.Scripts.Put(ctx, account, &snap.Scripts[i]); err != nil {
			failures = append(failures, err)
			break
		}
	}
	for i := range snap.Sessions {
		if err := uc.Sessions.Put(ctx, account, &snap.Sessions[i]); err != nil {
			failures = append(failures, err)
			break
		}
	}

	entry := entity.NewActivityEntry(
		entity.ActivityMigrationCompleted,
		fmt.Sprintf("Legacy snapshot migrated: %d leads", saved),
		map[string]any{"leads": saved, "failures": len(failures)},
	)
	if err := uc.Activity.Append(ctx, account, entry); err != nil {
		log.Warn().Err(err).Str("account", account).Msg("Failed to log migration")
	}

	if len(failures) > 0 {
		return true, saved, fmt.Errorf("%w: %v", ErrMigrationPartial, errors.Join(failures...))
	}
	return true, saved, nil
}
