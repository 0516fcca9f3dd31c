package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/infra/http/middleware"
	"github.com/crescoflow/crescoflow-core/internal/infra/integration/highlevel"
)

type CRMGateway interface {
	UpsertContact(ctx context.Context, in highlevel.ContactInput) (string, error)
}

type LeadStore interface {
	Get(ctx context.Context, account, id string) (*entity.Lead, error)
	Put(ctx context.Context, account string, lead *entity.Lead) error
}

// Worker consumes lead sync jobs and pushes each lead to the CRM, then marks
// the stored record synced via a full read-modify-write. A failed job is
// nacked without requeue so it dead-letters instead of spinning.
type Worker struct {
	Ch    *amqp.Channel
	CRM   CRMGateway
	Leads LeadStore
}

func NewWorker(ch *amqp.Channel, crm CRMGateway, leads LeadStore) *Worker {
	return &Worker{Ch: ch, CRM: crm, Leads: leads}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		log.Error().Err(err).Str("queue", queueName).Msg("Failed to start sync consumer")
		return
	}

	log.Info().Str("queue", queueName).Msg("CRM sync worker started")

	for msg := range msgs {
		w.handle(msg)
	}
}

func (w *Worker) handle(msg amqp.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var payload LeadSyncPayload
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		log.Error().Err(err).Msg("Invalid sync payload, dropping")
		msg.Nack(false, false)
		return
	}

	contactID, err := w.CRM.UpsertContact(ctx, highlevel.ContactInput{
		CompanyName: payload.CompanyName,
		ContactName: payload.ContactName,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Website:     payload.Website,
		Channel:     entity.OutboundChannel(payload.Channel),
		Tags:        payload.Tags,
	})
	if err != nil {
		middleware.RecordIntegrationError("crm")
		log.Warn().Err(err).Str("lead", payload.LeadID).Msg("CRM sync failed, dead-lettering")
		msg.Nack(false, false)
		return
	}

	if err := w.markSynced(ctx, payload, contactID); err != nil {
		// The CRM already has the contact; re-running the job would
		// duplicate it. Log and ack.
		log.Error().Err(err).Str("lead", payload.LeadID).Msg("Failed to mark lead synced")
	}

	msg.Ack(false)
}

func (w *Worker) markSynced(ctx context.Context, payload LeadSyncPayload, contactID string) error {
	lead, err := w.Leads.Get(ctx, payload.Account, payload.LeadID)
	if err != nil {
		return err
	}

	lead.CRMSynced = true
	lead.CRMContactID = contactID
	return w.Leads.Put(ctx, payload.Account, lead)
}
