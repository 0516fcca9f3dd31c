package usecase

import (
	"context"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/infra/legacy"
	"github.com/crescoflow/crescoflow-core/internal/infra/queue"
)

// Every store operation takes the account email explicitly. There is no
// ambient "current account" anywhere in this core.

type LeadRepository interface {
	Put(ctx context.Context, account string, lead *entity.Lead) error
	Get(ctx context.Context, account, id string) (*entity.Lead, error)
	GetAll(ctx context.Context, account string) ([]entity.Lead, error)
	FindByVAT(ctx context.Context, account, vat string) (*entity.Lead, error)
	FindByWebsite(ctx context.Context, account, website string) (*entity.Lead, error)
	FindByEmail(ctx context.Context, account, email string) (*entity.Lead, error)
}

type CampaignRepository interface {
	Put(ctx context.Context, account string, c *entity.Campaign) error
	GetAll(ctx context.Context, account string) ([]entity.Campaign, error)
}

type ConversationRepository interface {
	Put(ctx context.Context, account string, c *entity.Conversation) error
	GetAll(ctx context.Context, account string) ([]entity.Conversation, error)
}

type ScriptRepository interface {
	Put(ctx context.Context, account string, s *entity.CallScript) error
	GetAll(ctx context.Context, account string) ([]entity.CallScript, error)
}

type SessionRepository interface {
	Put(ctx context.Context, account string, s *entity.MeetSession) error
	GetAll(ctx context.Context, account string) ([]entity.MeetSession, error)
}

type ConfigRepository interface {
	Put(ctx context.Context, cfg *entity.UserConfig) error
	Get(ctx context.Context, email string) (*entity.UserConfig, error)
	GetAll(ctx context.Context) ([]entity.UserConfig, error)
}

type ActivityLog interface {
	Append(ctx context.Context, account string, entry entity.ActivityEntry) error
	GetAll(ctx context.Context, account string) ([]entity.ActivityEntry, error)
	All(ctx context.Context) ([]entity.ActivityEntry, error)
}

type SnapshotSource interface {
	Account(email string) (*legacy.AccountSnapshot, bool, error)
}

type SyncPublisher interface {
	PublishLeadSync(ctx context.Context, payload queue.LeadSyncPayload) error
}

type BackupMailer interface {
	SendBackup(to string, doc []byte) error
}
