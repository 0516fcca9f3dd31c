package usecase

import (
	"context"
	"errors"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// LoadAccount hydrates every collection for one account at unlock time.
// An account unlocking for the first time gets a freshly seeded config
// record; the other collections simply come back empty.
type LoadAccount struct {
	Leads         LeadRepository
	Campaigns     CampaignRepository
	Conversations ConversationRepository
	Scripts       ScriptRepository
	Sessions      SessionRepository
	Config        ConfigRepository
}

func (uc *LoadAccount) Execute(ctx context.Context, email string) (*AccountData, error) {
	cfg, err := uc.Config.Get(ctx, email)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		cfg = entity.NewDefaultConfig(email)
		if err := uc.Config.Put(ctx, cfg); err != nil {
			return nil, err
		}
	}

	leads, err := uc.Leads.GetAll(ctx, email)
	if err != nil {
		return nil, err
	}
	campaigns, err := uc.Campaigns.GetAll(ctx, email)
	if err != nil {
		return nil, err
	}
	conversations, err := uc.Conversations.GetAll(ctx, email)
	if err != nil {
		return nil, err
	}
	scripts, err := uc.Scripts.GetAll(ctx, email)
	if err != nil {
		return nil, err
	}
	sessions, err := uc.Sessions.GetAll(ctx, email)
	if err != nil {
		return nil, err
	}

	return &AccountData{
		Leads:           leads,
		Campaigns:       campaigns,
		FBConversations: conversations,
		Scripts:         scripts,
		Sessions:        sessions,
		Config:          cfg,
	}, nil
}
