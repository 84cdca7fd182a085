package events

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mindhaven/backend/internal/bus"
	"github.com/mindhaven/backend/pkg/httpx"
)

// Handler exposes the site-wide event bus over HTTP: any component can
// publish the open-chat signal, and any component can observe the bus
// via Server-Sent Events.
type Handler struct {
	bus *bus.Bus
}

// New creates the events handler.
func New(b *bus.Bus) *Handler {
	return &Handler{bus: b}
}

// RegisterRoutes mounts the event routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.handleStream)
	r.Post("/events/open-chat", h.handleOpenChat)
}

func (h *Handler) handleOpenChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Source string `json:"source"`
	}
	// The body is optional; a bare POST is a valid signal.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	h.bus.Publish(bus.Event{Topic: bus.TopicOpenChat, Payload: payload.Source})
	httpx.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "published"})
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	httpx.SetupSSEHeaders(w)

	events, cancel := h.bus.Subscribe()
	defer cancel()

	ctx := r.Context()
	log.Debug().Msg("opening event stream")

	// Heartbeats keep intermediaries from timing the stream out.
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	httpx.SendSSEEvent(w, flusher, "status", map[string]string{"message": "stream established"})

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("closing event stream")
			return
		case <-ticker.C:
			httpx.SendSSEEvent(w, flusher, "heartbeat", map[string]string{
				"time": time.Now().UTC().Format(time.RFC3339),
			})
		case evt, ok := <-events:
			if !ok {
				return
			}
			httpx.SendSSEEvent(w, flusher, evt.Topic, evt)
		}
	}
}
