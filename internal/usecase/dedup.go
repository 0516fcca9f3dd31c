package usecase

import (
	"context"
	"errors"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// Company emails that carry no identity: scrape results use "onbekend" as a
// filler when no address was found, and shared generic inboxes behind it
// would collide unrelated companies.
var placeholderEmails = map[string]struct{}{
	"":         {},
	"onbekend": {},
}

// DedupChecker decides whether a candidate lead already exists in the
// account's store. Signals are checked from most to least authoritative:
// a VAT number is jurisdictionally unique, a website is canonical per
// company, a company email is the weakest and skipped when placeholder.
// The first matching signal wins; a candidate with no usable signal can
// never be detected as a duplicate and is always accepted.
type DedupChecker struct {
	Leads LeadRepository
}

func NewDedupChecker(leads LeadRepository) *DedupChecker {
	return &DedupChecker{Leads: leads}
}

func (d *DedupChecker) IsDuplicate(ctx context.Context, account string, lead *entity.Lead) (bool, error) {
	if lead.VATNumber != "" {
		if found, err := d.lookup(d.Leads.FindByVAT, ctx, account, lead.VATNumber); err != nil {
			return false, err
		} else if found {
			return true, nil
		}
	}

	if lead.Website != "" {
		if found, err := d.lookup(d.Leads.FindByWebsite, ctx, account, lead.Website); err != nil {
			return false, err
		} else if found {
			return true, nil
		}
	}

	if _, placeholder := placeholderEmails[lead.EmailCompany]; !placeholder {
		if found, err := d.lookup(d.Leads.FindByEmail, ctx, account, lead.EmailCompany); err != nil {
			return false, err
		} else if found {
			return true, nil
		}
	}

	return false, nil
}

type finder func(ctx context.Context, account, value string) (*entity.Lead, error)

func (d *DedupChecker) lookup(find finder, ctx context.Context, account, value string) (bool, error) {
	_, err := find(ctx, account, value)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
