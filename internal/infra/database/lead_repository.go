package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Put inserts or fully overwrites the lead at its id. Uniqueness of the
// identity signals is a write-path policy enforced by the dedup chain, not
// a constraint here: the store itself is keyed by opaque id only.
func (r *LeadRepository) Put(ctx context.Context, account string, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	doc, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	query := `
		INSERT INTO leads (id, account_email, vat_number, website, email_company, doc, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			account_email = EXCLUDED.account_email,
			vat_number    = EXCLUDED.vat_number,
			website       = EXCLUDED.website,
			email_company = EXCLUDED.email_company,
			doc           = EXCLUDED.doc,
			updated_at    = EXCLUDED.updated_at
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID,
		account,
		lead.VATNumber,
		lead.Website,
		lead.EmailCompany,
		string(doc),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return storageErr("put lead", err)
	}

	return nil
}

func (r *LeadRepository) Get(ctx context.Context, account, id string) (*entity.Lead, error) {
	query := `SELECT doc FROM leads WHERE account_email = $1 AND id = $2`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, account, id), "get lead")
}

// GetAll returns every lead for the account. Order is unspecified; callers
// must not depend on insertion order.
func (r *LeadRepository) GetAll(ctx context.Context, account string) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT doc FROM leads WHERE account_email = $1`, account)
	if err != nil {
		return nil, storageErr("list leads", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, storageErr("list leads", err)
		}
		var lead entity.Lead
		if err := json.Unmarshal([]byte(doc), &lead); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list leads", err)
	}

	return leads, nil
}

// Secondary lookups on the identity signals. At most one match is expected
// per the dedup invariant; the first is returned regardless.

func (r *LeadRepository) FindByVAT(ctx context.Context, account, vat string) (*entity.Lead, error) {
	query := `SELECT doc FROM leads WHERE account_email = $1 AND vat_number = $2 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, account, vat), "find lead by vat")
}

func (r *LeadRepository) FindByWebsite(ctx context.Context, account, website string) (*entity.Lead, error) {
	query := `SELECT doc FROM leads WHERE account_email = $1 AND website = $2 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, account, website), "find lead by website")
}

func (r *LeadRepository) FindByEmail(ctx context.Context, account, email string) (*entity.Lead, error) {
	query := `SELECT doc FROM leads WHERE account_email = $1 AND email_company = $2 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, account, email), "find lead by email")
}

func (r *LeadRepository) scanOne(row *sql.Row, op string) (*entity.Lead, error) {
	var doc string
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, storageErr(op, err)
	}

	var lead entity.Lead
	if err := json.Unmarshal([]byte(doc), &lead); err != nil {
		return nil, fmt.Errorf("decode lead: %w", err)
	}
	return &lead, nil
}
