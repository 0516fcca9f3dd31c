package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

type ScriptRepository struct {
	store docStore
}

func NewScriptRepository(db *sql.DB) *ScriptRepository {
	return &ScriptRepository{store: docStore{db: db, table: "scripts"}}
}

func (r *ScriptRepository) Put(ctx context.Context, account string, s *entity.CallScript) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.store.put(ctx, account, s.ID, s)
}

func (r *ScriptRepository) Get(ctx context.Context, account, id string) (*entity.CallScript, error) {
	doc, err := r.store.get(ctx, account, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	var s entity.CallScript
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

func (r *ScriptRepository) GetAll(ctx context.Context, account string) ([]entity.CallScript, error) {
	docs, err := r.store.list(ctx, account)
	if err != nil {
		return nil, err
	}

	scripts := make([]entity.CallScript, 0, len(docs))
	for _, doc := range docs {
		var s entity.CallScript
		if err := json.Unmarshal([]byte(doc), &s); err != nil {
			return nil, fmt.Errorf("decode script: %w", err)
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}
