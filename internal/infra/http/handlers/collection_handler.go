package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

// CollectionHandler serves the four flat collections the UI writes directly:
// campaigns, conversations, scripts and sessions. All endpoints are thin
// put/getAll passthroughs; these records have no identity signals and no
// dedup applies.
type CollectionHandler struct {
	Campaigns     usecase.CampaignRepository
	Conversations usecase.ConversationRepository
	Scripts       usecase.ScriptRepository
	Sessions      usecase.SessionRepository
}

func NewCollectionHandler(
	campaigns usecase.CampaignRepository,
	conversations usecase.ConversationRepository,
	scripts usecase.ScriptRepository,
	sessions usecase.SessionRepository,
) *CollectionHandler {
	return &CollectionHandler{
		Campaigns:     campaigns,
		Conversations: conversations,
		Scripts:       scripts,
		Sessions:      sessions,
	}
}

func (h *CollectionHandler) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, h.Campaigns.GetAll)
}

func (h *CollectionHandler) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, h.Conversations.GetAll)
}

func (h *CollectionHandler) HandleListScripts(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, h.Scripts.GetAll)
}

func (h *CollectionHandler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	listCollection(w, r, h.Sessions.GetAll)
}

func (h *CollectionHandler) HandleSaveCampaign(w http.ResponseWriter, r *http.Request) {
	saveCollection(w, r, h.Campaigns.Put, &entity.Campaign{})
}

func (h *CollectionHandler) HandleSaveConversation(w http.ResponseWriter, r *http.Request) {
	saveCollection(w, r, h.Conversations.Put, &entity.Conversation{})
}

func (h *CollectionHandler) HandleSaveScript(w http.ResponseWriter, r *http.Request) {
	saveCollection(w, r, h.Scripts.Put, &entity.CallScript{})
}

func (h *CollectionHandler) HandleSaveSession(w http.ResponseWriter, r *http.Request) {
	saveCollection(w, r, h.Sessions.Put, &entity.MeetSession{})
}

func listCollection[T any](w http.ResponseWriter, r *http.Request, getAll func(ctx context.Context, account string) ([]T, error)) {
	account := accountParam(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	records, err := getAll(r.Context(), account)
	if err != nil {
		log.Error().Err(err).Str("account", account).Msg("Failed to list collection")
		writeError(w, http.StatusInternalServerError, "failed to list records")
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func saveCollection[T any](w http.ResponseWriter, r *http.Request, put func(ctx context.Context, account string, record *T) error, record *T) {
	var req struct {
		Account string          `json:"account"`
		Record  json.RawMessage `json:"record"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}
	if err := json.Unmarshal(req.Record, record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid record")
		return
	}

	if err := put(r.Context(), req.Account, record); err != nil {
		if errors.Is(err, entity.ErrMalformedRecord) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("account", req.Account).Msg("Failed to save record")
		writeError(w, http.StatusInternalServerError, "failed to save record")
		return
	}

	writeJSON(w, http.StatusOK, record)
}
