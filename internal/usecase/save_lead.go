package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

// SaveLead is the single-record write path used by the UI: manual entry and
// every read-modify-write update (call attempts, pipeline tags, interaction
// appends). It deliberately skips the dedup chain; an id collision is an
// intentional overwrite here.
type SaveLead struct {
	Leads    LeadRepository
	Activity ActivityLog
}

func NewSaveLead(leads LeadRepository, activity ActivityLog) *SaveLead {
	return &SaveLead{Leads: leads, Activity: activity}
}

func (uc *SaveLead) Execute(ctx context.Context, account string, lead *entity.Lead) error {
	if errs := ValidateLead(lead); len(errs) > 0 {
		return &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.ScrapedAt == "" {
		lead.ScrapedAt = time.Now().UTC().Format(time.RFC3339)
	}
	RouteChannel(lead)

	if err := uc.Leads.Put(ctx, account, lead); err != nil {
		return err
	}

	entry := entity.NewActivityEntry(
		entity.ActivityLeadSaved,
		"Lead stored: "+lead.CompanyName,
		map[string]any{"id": lead.ID},
	)
	if err := uc.Activity.Append(ctx, account, entry); err != nil {
		log.Warn().Err(err).Str("lead", lead.ID).Msg("Failed to log lead save")
	}

	return nil
}
