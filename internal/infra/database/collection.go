package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// docStore is the shared put/get/list plumbing behind the four collections
// that have no secondary lookups (campaigns, conversations, scripts,
// sessions). Each record is one JSON document keyed by id and account.
type docStore struct {
	db    *sql.DB
	table string
}

func (s docStore) put(ctx context.Context, account, id string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.table, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, account_email, doc, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			account_email = EXCLUDED.account_email,
			doc           = EXCLUDED.doc,
			updated_at    = EXCLUDED.updated_at
	`, s.table)

	_, err = s.db.ExecContext(ctx, query, id, account, string(doc), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return storageErr("put "+s.table, err)
	}
	return nil
}

func (s docStore) get(ctx context.Context, account, id string) (string, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE account_email = $1 AND id = $2`, s.table)

	var doc string
	if err := s.db.QueryRowContext(ctx, query, account, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", storageErr("get "+s.table, err)
	}
	return doc, nil
}

func (s docStore) list(ctx context.Context, account string) ([]string, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE account_email = $1`, s.table)

	rows, err := s.db.QueryContext(ctx, query, account)
	if err != nil {
		return nil, storageErr("list "+s.table, err)
	}
	defer rows.Close()

	docs := []string{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, storageErr("list "+s.table, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list "+s.table, err)
	}
	return docs, nil
}
