package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/infra/http/middleware"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

type AccountHandler struct {
	Loader    *usecase.LoadAccount
	Migration *usecase.LegacyMigration
}

func NewAccountHandler(loader *usecase.LoadAccount, migration *usecase.LegacyMigration) *AccountHandler {
	return &AccountHandler{Loader: loader, Migration: migration}
}

type UnlockRequest struct {
	Email string `json:"email"`
}

type UnlockResponse struct {
	*usecase.AccountData
	Migration *usecase.MigrationSummary `json:"migration,omitempty"`
}

// HandleUnlock runs the legacy upgrade (never fatal to login) and returns
// the hydrated account data.
func (h *AccountHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	ctx := r.Context()

	var summary *usecase.MigrationSummary
	ran, migrated, err := h.Migration.Run(ctx, req.Email)
	if err != nil {
		log.Warn().Err(err).Str("account", req.Email).Msg("Legacy migration incomplete")
		middleware.RecordMigrationRun("partial")
		summary = &usecase.MigrationSummary{Ran: ran, LeadsMigrated: migrated, Warning: err.Error()}
	} else if ran {
		log.Info().Str("account", req.Email).Int("leads", migrated).Msg("Legacy snapshot migrated")
		middleware.RecordMigrationRun("ok")
		summary = &usecase.MigrationSummary{Ran: true, LeadsMigrated: migrated}
	}

	data, err := h.Loader.Execute(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Str("account", req.Email).Msg("Failed to load account data")
		writeError(w, http.StatusInternalServerError, "failed to load account data")
		return
	}

	writeJSON(w, http.StatusOK, UnlockResponse{AccountData: data, Migration: summary})
}
