package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// ConfigRepository stores the one settings record per account, keyed by the
// account email. Reads go through a short-lived cache because the config is
// consulted on nearly every request; Put refreshes the cached copy.
type ConfigRepository struct {
	DB    *sql.DB
	cache *gocache.Cache
}

func NewConfigRepository(db *sql.DB) *ConfigRepository {
	return &ConfigRepository{
		DB:    db,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *ConfigRepository) Put(ctx context.Context, cfg *entity.UserConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	query := `
		INSERT INTO config (email, doc, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			doc        = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at
	`

	_, err = r.DB.ExecContext(ctx, query, cfg.Email, string(doc), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return storageErr("put config", err)
	}

	r.cache.Set(cfg.Email, *cfg, gocache.DefaultExpiration)
	return nil
}

func (r *ConfigRepository) Get(ctx context.Context, email string) (*entity.UserConfig, error) {
	if cached, found := r.cache.Get(email); found {
		cfg := cached.(entity.UserConfig)
		return &cfg, nil
	}

	var doc string
	err := r.DB.QueryRowContext(ctx, `SELECT doc FROM config WHERE email = $1`, email).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, storageErr("get config", err)
	}

	var cfg entity.UserConfig
	if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	r.cache.Set(email, cfg, gocache.DefaultExpiration)
	return &cfg, nil
}

// GetAll returns the config records of every account on this installation.
// Used by backup export only; it bypasses the cache.
func (r *ConfigRepository) GetAll(ctx context.Context) ([]entity.UserConfig, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT doc FROM config`)
	if err != nil {
		return nil, storageErr("list config", err)
	}
	defer rows.Close()

	configs := []entity.UserConfig{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, storageErr("list config", err)
		}
		var cfg entity.UserConfig
		if err := json.Unmarshal([]byte(doc), &cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list config", err)
	}

	return configs, nil
}
