package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/crescoflow/crescoflow-core/internal/entity"
	"github.com/crescoflow/crescoflow-core/internal/infra/http/middleware"
	"github.com/crescoflow/crescoflow-core/internal/usecase"
)

type LeadHandler struct {
	Leads       usecase.LeadRepository
	Save        *usecase.SaveLead
	Ingest      *usecase.BulkIngest
	rateLimiter *RateLimiter
}

func NewLeadHandler(leads usecase.LeadRepository, save *usecase.SaveLead, ingest *usecase.BulkIngest) *LeadHandler {
	return &LeadHandler{
		Leads:       leads,
		Save:        save,
		Ingest:      ingest,
		rateLimiter: NewRateLimiter(30, time.Minute),
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	account := accountParam(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	leads, err := h.Leads.GetAll(r.Context(), account)
	if err != nil {
		log.Error().Err(err).Str("account", account).Msg("Failed to list leads")
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

type SaveLeadRequest struct {
	Account string      `json:"account"`
	Lead    entity.Lead `json:"lead"`
}

func (h *LeadHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req SaveLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	if err := h.Save.Execute(r.Context(), req.Account, &req.Lead); err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrStorageUnavailable) {
			status = http.StatusServiceUnavailable
		}
		log.Error().Err(err).Str("account", req.Account).Msg("Failed to save lead")
		writeError(w, status, "failed to save lead")
		return
	}

	writeJSON(w, http.StatusOK, req.Lead)
}

type BulkIngestRequest struct {
	Account string        `json:"account"`
	Leads   []entity.Lead `json:"leads"`
}

type BulkIngestResponse struct {
	Saved   int `json:"saved"`
	Skipped int `json:"skipped"`
}

func (h *LeadHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var req BulkIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	saved, err := h.Ingest.Execute(r.Context(), req.Account, req.Leads)
	middleware.RecordLeadsIngested(saved)
	if err != nil {
		// Partial progress is possible; the counters still reflect what
		// actually landed before the failure.
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrStorageUnavailable) {
			status = http.StatusServiceUnavailable
		}
		log.Error().Err(err).Str("account", req.Account).Int("saved", saved).Msg("Bulk ingest aborted")
		writeError(w, status, "bulk ingest failed")
		return
	}
	middleware.RecordDuplicatesSkipped(len(req.Leads) - saved)

	writeJSON(w, http.StatusOK, BulkIngestResponse{Saved: saved, Skipped: len(req.Leads) - saved})
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// RateLimiter is a fixed-window per-IP limiter for the ingest endpoints.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, exists := rl.visitors[ip]
	if !exists || now.Sub(v.lastReset) > rl.window {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
