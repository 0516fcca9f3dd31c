package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// ActivityRepository is append-only: the store assigns entry ids and no
// update or delete path exists. Entries exist for audit and backup.
type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Append(ctx context.Context, account string, entry entity.ActivityEntry) error {
	var data any
	if entry.Data != nil {
		encoded, err := json.Marshal(entry.Data)
		if err != nil {
			return fmt.Errorf("encode activity data: %w", err)
		}
		data = string(encoded)
	}

	query := `
		INSERT INTO activity_log (account_email, timestamp, entry_type, message, data)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query, account, entry.Timestamp, entry.Type, entry.Message, data)
	if err != nil {
		return storageErr("append activity", err)
	}
	return nil
}

func (r *ActivityRepository) GetAll(ctx context.Context, account string) ([]entity.ActivityEntry, error) {
	query := `
		SELECT id, account_email, timestamp, entry_type, message, data
		FROM activity_log WHERE account_email = $1 ORDER BY id
	`
	return r.scan(ctx, query, account)
}

// All returns the full log across accounts, in append order. Backup export
// uses this to keep the snapshot self-contained.
func (r *ActivityRepository) All(ctx context.Context) ([]entity.ActivityEntry, error) {
	query := `
		SELECT id, account_email, timestamp, entry_type, message, data
		FROM activity_log ORDER BY id
	`
	return r.scan(ctx, query)
}

func (r *ActivityRepository) scan(ctx context.Context, query string, args ...any) ([]entity.ActivityEntry, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list activity", err)
	}
	defer rows.Close()

	entries := []entity.ActivityEntry{}
	for rows.Next() {
		var (
			entry entity.ActivityEntry
			data  sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.Account, &entry.Timestamp, &entry.Type, &entry.Message, &data); err != nil {
			return nil, storageErr("list activity", err)
		}
		if data.Valid {
			if err := json.Unmarshal([]byte(data.String), &entry.Data); err != nil {
				return nil, fmt.Errorf("decode activity data: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list activity", err)
	}

	return entries, nil
}
