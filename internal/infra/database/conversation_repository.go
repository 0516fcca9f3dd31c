package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

type ConversationRepository struct {
	store docStore
}

func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{store: docStore{db: db, table: "conversations"}}
}

func (r *ConversationRepository) Put(ctx context.Context, account string, c *entity.Conversation) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return r.store.put(ctx, account, c.ID, c)
}

func (r *ConversationRepository) Get(ctx context.Context, account, id string) (*entity.Conversation, error) {
	doc, err := r.store.get(ctx, account, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	var c entity.Conversation
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return &c, nil
}

func (r *ConversationRepository) GetAll(ctx context.Context, account string) ([]entity.Conversation, error) {
	docs, err := r.store.list(ctx, account)
	if err != nil {
		return nil, err
	}

	conversations := make([]entity.Conversation, 0, len(docs))
	for _, doc := range docs {
		var c entity.Conversation
		if err := json.Unmarshal([]byte(doc), &c); err != nil {
			return nil, fmt.Errorf("decode conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}
