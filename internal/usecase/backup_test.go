package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/infra/database"
)

func newBackup(t *testing.T) (*Backup, *fixtures) {
	t.Helper()

	f := newFixtures(t)
	return &Backup{
		Leads:         f.leads,
		Campaigns:     database.NewCampaignRepository(f.db),
		Conversations: database.NewConversationRepository(f.db),
		Scripts:       database.NewScriptRepository(f.db),
		Sessions:      database.NewSessionRepository(f.db),
		Config:        database.NewConfigRepository(f.db),
		Activity:      f.activity,
	}, f
}

func TestBackup_CreateFillsEnvelope(t *testing.T) {
	backup, f := newBackup(t)
	ctx := context.Background()

	require.NoError(t, f.leads.Put(ctx, testAccount, &entity.Lead{ID: "l1", CompanyName: "Bedrijf"}))
	require.NoError(t, backup.Campaigns.Put(ctx, testAccount, &entity.Campaign{ID: "c1", Name: "Lente"}))
	require.NoError(t, backup.Config.Put(ctx, entity.NewDefaultConfig(testAccount)))
	require.NoError(t, backup.Config.Put(ctx, entity.NewDefaultConfig("ander@crescoflow.be")))

	doc, err := backup.Create(ctx, testAccount)
	require.NoError(t, err)

	assert.Equal(t, "1.0", doc.Version)
	assert.NotEmpty(t, doc.BackupDate)
	assert.Len(t, doc.Leads, 1)
	assert.Len(t, doc.Campaigns, 1)
	assert.Empty(t, doc.Scripts)
	// Config spans every account on the installation.
	assert.Len(t, doc.Config, 2)
}

func TestBackup_RoundTrip(t *testing.T) {
	source, sf := newBackup(t)
	ctx := context.Background()

	require.NoError(t, sf.leads.Put(ctx, testAccount, &entity.Lead{
		ID:           "l1",
		CompanyName:  "Bakkerij Janssens",
		VATNumber:    "BE0123456789",
		ScrapedAt:    "2026-08-01T09:00:00Z",
		CallAttempts: 2,
	}))
	require.NoError(t, source.Scripts.Put(ctx, testAccount, &entity.CallScript{ID: "s1", Name: "Opening", UsageCount: 5}))
	require.NoError(t, source.Config.Put(ctx, entity.NewDefaultConfig(testAccount)))
	require.NoError(t, sf.activity.Append(ctx, testAccount,
		entity.NewActivityEntry(entity.ActivityLeadSaved, "Lead stored: Bakkerij Janssens", nil)))

	doc, err := source.Create(ctx, testAccount)
	require.NoError(t, err)

	target, tf := newBackup(t)
	require.NoError(t, target.Restore(ctx, testAccount, doc))

	lead, err := tf.leads.Get(ctx, testAccount, "l1")
	require.NoError(t, err)
	assert.Equal(t, "Bakkerij Janssens", lead.CompanyName)
	assert.Equal(t, "2026-08-01T09:00:00Z", lead.ScrapedAt)
	assert.Equal(t, 2, lead.CallAttempts)

	scripts, err := target.Scripts.GetAll(ctx, testAccount)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, 5, scripts[0].UsageCount)

	cfg, err := target.Config.Get(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, testAccount, cfg.Email)

	entries, err := tf.activity.GetAll(ctx, testAccount)
	require.NoError(t, err)
	// Original entry replayed plus the BACKUP_RESTORED marker.
	require.Len(t, entries, 2)
	assert.Equal(t, entity.ActivityLeadSaved, entries[0].Type)
	assert.Equal(t, entity.ActivityBackupRestored, entries[1].Type)
}

func TestBackup_RestoreOverwritesAtSameKeys(t *testing.T) {
	backup, f := newBackup(t)
	ctx := context.Background()

	require.NoError(t, f.leads.Put(ctx, testAccount, &entity.Lead{ID: "l1", CompanyName: "Oud"}))

	doc := &BackupDocument{
		Leads:   []entity.Lead{{ID: "l1", CompanyName: "Hersteld"}},
		Version: "1.0",
	}
	require.NoError(t, backup.Restore(ctx, testAccount, doc))

	lead, err := f.leads.Get(ctx, testAccount, "l1")
	require.NoError(t, err)
	assert.Equal(t, "Hersteld", lead.CompanyName)

	all, err := f.leads.GetAll(ctx, testAccount)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
