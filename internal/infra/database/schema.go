package database

import (
	"context"
	"database/sql"
	"fmt"
)

// The store keeps every record as a full JSON document plus the key and
// indexed identity columns it needs for lookups. Writes are whole-record
// overwrites; there is no partial patching at the storage level.
const schemaTemplate = `
CREATE TABLE IF NOT EXISTS leads (
	id            TEXT PRIMARY KEY,
	account_email TEXT NOT NULL,
	vat_number    TEXT NOT NULL DEFAULT '',
	website       TEXT NOT NULL DEFAULT '',
	email_company TEXT NOT NULL DEFAULT '',
	doc           TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_account ON leads (account_email);
CREATE INDEX IF NOT EXISTS idx_leads_vat     ON leads (account_email, vat_number);
CREATE INDEX IF NOT EXISTS idx_leads_website ON leads (account_email, website);
CREATE INDEX IF NOT EXISTS idx_leads_email   ON leads (account_email, email_company);

CREATE TABLE IF NOT EXISTS campaigns (
	id            TEXT PRIMARY KEY,
	account_email TEXT NOT NULL,
	doc           TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_campaigns_account ON campaigns (account_email);

CREATE TABLE IF NOT EXISTS conversations (
	id            TEXT PRIMARY KEY,
	account_email TEXT NOT NULL,
	doc           TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversations_account ON conversations (account_email);

CREATE TABLE IF NOT EXISTS scripts (
	id            TEXT PRIMARY KEY,
	account_email TEXT NOT NULL,
	doc           TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scripts_account ON scripts (account_email);

CREATE TABLE IF NOT EXISTS sessions (
	id            TEXT PRIMARY KEY,
	account_email TEXT NOT NULL,
	doc           TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_account ON sessions (account_email);

CREATE TABLE IF NOT EXISTS config (
	email      TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS activity_log (
	id            %s,
	account_email TEXT NOT NULL,
	timestamp     TEXT NOT NULL,
	entry_type    TEXT NOT NULL,
	message       TEXT NOT NULL,
	data          TEXT
);
CREATE INDEX IF NOT EXISTS idx_activity_account ON activity_log (account_email);
`

// EnsureSchema creates the collections if they do not exist yet. The only
// dialect divergence is the auto-numbered activity log key.
func EnsureSchema(ctx context.Context, db *sql.DB, dsn string) error {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driverFor(dsn) == "postgres" {
		serial = "BIGSERIAL PRIMARY KEY"
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf(schemaTemplate, serial)); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
