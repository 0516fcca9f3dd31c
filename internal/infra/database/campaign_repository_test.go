package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

func TestCampaignRepository_PutGetGetAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewCampaignRepository(db)
	ctx := context.Background()

	campaign := &entity.Campaign{
		ID:      "c1",
		Name:    "Lente campagne",
		Channel: entity.ChannelColdEmail,
		Metrics: entity.CampaignMetrics{Sent: 120, Replied: 8},
	}
	require.NoError(t, repo.Put(ctx, "user@crescoflow.be", campaign))

	got, err := repo.Get(ctx, "user@crescoflow.be", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Lente campagne", got.Name)
	assert.Equal(t, 120, got.Metrics.Sent)

	_, err = repo.Get(ctx, "user@crescoflow.be", "nope")
	assert.ErrorIs(t, err, entity.ErrNotFound)

	all, err := repo.GetAll(ctx, "user@crescoflow.be")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = repo.Put(ctx, "user@crescoflow.be", &entity.Campaign{Name: "geen id"})
	assert.ErrorIs(t, err, entity.ErrMalformedRecord)
}

func TestScriptRepository_CountersSurviveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewScriptRepository(db)
	ctx := context.Background()

	script := &entity.CallScript{ID: "s1", Name: "Opening", UsageCount: 12, ConversionRate: 0.25}
	require.NoError(t, repo.Put(ctx, "user@crescoflow.be", script))

	got, err := repo.Get(ctx, "user@crescoflow.be", "s1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.UsageCount)
	assert.Equal(t, 0.25, got.ConversionRate)
}

func TestSessionRepository_PutGetAll(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	conversations := NewConversationRepository(db)
	ctx := context.Background()

	require.NoError(t, sessions.Put(ctx, "user@crescoflow.be", &entity.MeetSession{
		ID:       "m1",
		LeadName: "Bakkerij Janssens",
		Status:   entity.SessionScheduled,
	}))
	require.NoError(t, conversations.Put(ctx, "user@crescoflow.be", &entity.Conversation{
		ID:       "f1",
		LeadName: "Bakkerij Janssens",
	}))

	got, err := sessions.Get(ctx, "user@crescoflow.be", "m1")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionScheduled, got.Status)

	convs, err := conversations.GetAll(ctx, "user@crescoflow.be")
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}
