package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/infra/queue"
)

// BulkIngest applies the dedup chain across a batch and persists only the
// genuinely new leads, in input order. Duplicates are skipped outright: the
// stored record is left untouched, no fields are merged in. The batch is not
// atomic; on a storage failure the count written so far is returned and the
// caller decides whether to retry.
type BulkIngest struct {
	Leads    LeadRepository
	Dedup    *DedupChecker
	Activity ActivityLog
	Sync     SyncPublisher // nil when no queue is configured
}

func NewBulkIngest(leads LeadRepository, dedup *DedupChecker, activity ActivityLog, sync SyncPublisher) *BulkIngest {
	return &BulkIngest{
		Leads:    leads,
		Dedup:    dedup,
		Activity: activity,
		Sync:     sync,
	}
}

func (uc *BulkIngest) Execute(ctx context.Context, account string, candidates []entity.Lead) (int, error) {
	saved := 0

	for i := range candidates {
		lead := &candidates[i]

		dup, err := uc.Dedup.IsDuplicate(ctx, account, lead)
		if err != nil {
			return saved, fmt.Errorf("ingest: %w", err)
		}
		if dup {
			continue
		}

		RouteChannel(lead)

		if err := uc.Leads.Put(ctx, account, lead); err != nil {
			return saved, fmt.Errorf("ingest: %w", err)
		}
		saved++

		uc.afterSave(ctx, account, lead)
	}

	return saved, nil
}

// afterSave handles the side channels of a stored lead. Neither the audit
// entry nor the sync event may fail the ingest itself.
func (uc *BulkIngest) afterSave(ctx context.Context, account string, lead *entity.Lead) {
	entry := entity.NewActivityEntry(
		entity.ActivityLeadSaved,
		"Lead stored: "+lead.CompanyName,
		map[string]any{"id": lead.ID},
	)
	if err := uc.Activity.Append(ctx, account, entry); err != nil {
		log.Warn().Err(err).Str("lead", lead.ID).Msg("Failed to log lead save")
	}

	if uc.Sync == nil {
		return
	}

	payload := queue.LeadSyncPayload{
		Account:     account,
		LeadID:      lead.ID,
		CompanyName: lead.CompanyName,
		ContactName: lead.CEOName,
		Email:       firstNonEmpty(lead.CEOEmail, lead.EmailCompany),
		Phone:       firstNonEmpty(lead.CEOPhone, lead.PhoneCompany),
		Website:     lead.Website,
		Channel:     string(lead.OutboundChannel),
	}
	if err := uc.Sync.PublishLeadSync(ctx, payload); err != nil {
		log.Warn().Err(err).Str("lead", lead.ID).Msg("Failed to publish CRM sync event")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
