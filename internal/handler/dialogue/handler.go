package dialogue

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindhaven/backend/internal/model/script"
	"github.com/mindhaven/backend/internal/service/conversation"
	"github.com/mindhaven/backend/pkg/httpx"
)

// Handler exposes the chat widget's REST surface.
type Handler struct {
	convSvc *conversation.Service
}

// New creates the dialogue handler.
func New(convSvc *conversation.Service) *Handler {
	return &Handler{convSvc: convSvc}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/sessions", h.handleCreateSession)
	r.Get("/chat/sessions/{sessionID}", h.handleSnapshot)
	r.Post("/chat/sessions/{sessionID}/choices", h.handleChoice)
	r.Post("/chat/sessions/{sessionID}/messages", h.handleMessage)
	r.Delete("/chat/sessions/{sessionID}", h.handleClose)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.convSvc.Create(r.Context())
	if err != nil {
		httpx.RespondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, snapshot)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	snapshot, err := h.convSvc.Snapshot(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) handleChoice(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Action string `json:"action"`
		Label  string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Label == "" {
		httpx.RespondError(w, http.StatusBadRequest, "label is required")
		return
	}

	// Unknown actions are not rejected: the engine has a defined
	// fallback branch for them.
	if err := h.convSvc.SelectChoice(r.Context(), sessionID, script.Action(payload.Action), payload.Label); err != nil {
		respondServiceError(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Blank text is accepted and silently ignored by the engine.
	if err := h.convSvc.SubmitText(r.Context(), sessionID, payload.Text); err != nil {
		respondServiceError(w, err)
		return
	}
	httpx.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := h.convSvc.Close(r.Context(), sessionID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, conversation.ErrSessionNotFound) {
		httpx.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	httpx.RespondError(w, http.StatusInternalServerError, err.Error())
}
