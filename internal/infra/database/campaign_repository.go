package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

type CampaignRepository struct {
	store docStore
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{store: docStore{db: db, table: "campaigns"}}
}

func (r *CampaignRepository) Put(ctx context.Context, account string, c *entity.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return r.store.put(ctx, account, c.ID, c)
}

func (r *CampaignRepository) Get(ctx context.Context, account, id string) (*entity.Campaign, error) {
	doc, err := r.store.get(ctx, account, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	var c entity.Campaign
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return nil, fmt.Errorf("decode campaign: %w", err)
	}
	return &c, nil
}

func (r *CampaignRepository) GetAll(ctx context.Context, account string) ([]entity.Campaign, error) {
	docs, err := r.store.list(ctx, account)
	if err != nil {
		return nil, err
	}

	campaigns := make([]entity.Campaign, 0, len(docs))
	for _, doc := range docs {
		var c entity.Campaign
		if err := json.Unmarshal([]byte(doc), &c); err != nil {
			return nil, fmt.Errorf("decode campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
