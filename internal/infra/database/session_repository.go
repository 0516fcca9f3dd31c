package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

type SessionRepository struct {
	store docStore
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{store: docStore{db: db, table: "sessions"}}
}

func (r *SessionRepository) Put(ctx context.Context, account string, s *entity.MeetSession) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.store.put(ctx, account, s.ID, s)
}

func (r *SessionRepository) Get(ctx context.Context, account, id string) (*entity.MeetSession, error) {
	doc, err := r.store.get(ctx, account, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	var s entity.MeetSession
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) GetAll(ctx context.Context, account string) ([]entity.MeetSession, error) {
	docs, err := r.store.list(ctx, account)
	if err != nil {
		return nil, err
	}

	sessions := make([]entity.MeetSession, 0, len(docs))
	for _, doc := range docs {
		var s entity.MeetSession
		if err := json.Unmarshal([]byte(doc), &s); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
