package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/infra/http/middleware"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

type BackupHandler struct {
	Backup *usecase.Backup
	Mailer usecase.BackupMailer // nil when SMTP is not configured
}

func NewBackupHandler(backup *usecase.Backup, mailer usecase.BackupMailer) *BackupHandler {
	return &BackupHandler{Backup: backup, Mailer: mailer}
}

// HandleDownload streams the full export as an attachment.
func (h *BackupHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	account := accountParam(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	doc, err := h.Backup.Create(r.Context(), account)
	if err != nil {
		log.Error().Err(err).Str("account", account).Msg("Backup export failed")
		writeError(w, http.StatusInternalServerError, "backup export failed")
		return
	}
	middleware.RecordBackupCreated()

	filename := fmt.Sprintf("CrescoFlow_Backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(doc)
}

type RestoreRequest struct {
	Account string                 `json:"account"`
	Backup  usecase.BackupDocument `json:"backup"`
}

func (h *BackupHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	var req RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	if err := h.Backup.Restore(r.Context(), req.Account, &req.Backup); err != nil {
		log.Error().Err(err).Str("account", req.Account).Msg("Backup restore failed")
		writeError(w, http.StatusInternalServerError, "backup restore failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"restored": len(req.Backup.Leads)})
}

// HandleEmail exports and mails the document to the account address.
func (h *BackupHandler) HandleEmail(w http.ResponseWriter, r *http.Request) {
	account := accountParam(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}
	if h.Mailer == nil {
		writeError(w, http.StatusServiceUnavailable, "mail delivery is not configured")
		return
	}

	doc, err := h.Backup.Create(r.Context(), account)
	if err != nil {
		log.Error().Err(err).Str("account", account).Msg("Backup export failed")
		writeError(w, http.StatusInternalServerError, "backup export failed")
		return
	}
	middleware.RecordBackupCreated()

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "backup encode failed")
		return
	}

	if err := h.Mailer.SendBackup(account, body); err != nil {
		middleware.RecordIntegrationError("mail")
		log.Error().Err(err).Str("account", account).Msg("Backup mail failed")
		writeError(w, http.StatusBadGateway, "backup mail failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"sentTo": account})
}
