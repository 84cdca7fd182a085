package dialogue

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/mindhaven/backend/internal/model/script"
	"github.com/mindhaven/backend/internal/service/conversation"
	"github.com/mindhaven/backend/pkg/httpx"
)

// WebSocketHandler streams engine effects to the live widget and accepts
// choice/text input over the same connection.
type WebSocketHandler struct {
	convSvc  *conversation.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket handler.
func NewWebSocketHandler(convSvc *conversation.Service) *WebSocketHandler {
	return &WebSocketHandler{
		convSvc: convSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket route.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type   string `json:"type"` // "choice" or "text"
	Action string `json:"action,omitempty"`
	Label  string `json:"label,omitempty"`
	Text   string `json:"text,omitempty"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	effects, cancel, err := h.convSvc.Listen(r.Context(), sessionID)
	if err != nil {
		httpx.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Read pump: inbound widget input until the client hangs up.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			h.dispatch(r, sessionID, msg)
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case effect, ok := <-effects:
			if !ok {
				// Conversation closed; tell the widget and hang up.
				_ = conn.WriteJSON(conversation.Effect{Type: conversation.EffectClose})
				return
			}
			if err := conn.WriteJSON(effect); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) dispatch(r *http.Request, sessionID string, msg inboundMessage) {
	var err error
	switch msg.Type {
	case "choice":
		err = h.convSvc.SelectChoice(r.Context(), sessionID, script.Action(msg.Action), msg.Label)
	case "text":
		err = h.convSvc.SubmitText(r.Context(), sessionID, msg.Text)
	default:
		log.Debug().Str("type", msg.Type).Msg("ignoring unknown websocket message type")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("session", sessionID).Msg("websocket input rejected")
	}
}
