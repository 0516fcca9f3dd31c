package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

type ConfigHandler struct {
	Config usecase.ConfigRepository
}

func NewConfigHandler(config usecase.ConfigRepository) *ConfigHandler {
	return &ConfigHandler{Config: config}
}

func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	account := accountParam(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	cfg, err := h.Config.Get(r.Context(), account)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no config for account")
			return
		}
		log.Error().Err(err).Str("account", account).Msg("Failed to read config")
		writeError(w, http.StatusInternalServerError, "failed to read config")
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (h *ConfigHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var cfg entity.UserConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if errs := usecase.ValidateConfig(&cfg); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs[0].Error())
		return
	}

	if err := h.Config.Put(r.Context(), &cfg); err != nil {
		log.Error().Err(err).Str("account", cfg.Email).Msg("Failed to save config")
		writeError(w, http.StatusInternalServerError, "failed to save config")
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}
