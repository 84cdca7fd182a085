package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindhaven/backend/internal/bus"
)

func setupRouter() (*chi.Mux, *bus.Bus) {
	b := bus.New()
	handler := New(b)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, b
}

func TestOpenChatPublishes(t *testing.T) {
	r, b := setupRouter()
	events, cancel := b.Subscribe()
	defer cancel()

	req := httptest.NewRequest(http.MethodPost, "/events/open-chat", strings.NewReader(`{"source":"promo-popup"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	select {
	case evt := <-events:
		if evt.Topic != bus.TopicOpenChat || evt.Payload != "promo-popup" {
			t.Fatalf("unexpected event: %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("open-chat signal never reached the bus")
	}
}

func TestOpenChatWithoutBody(t *testing.T) {
	r, _ := setupRouter()
	req := httptest.NewRequest(http.MethodPost, "/events/open-chat", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("a bare POST is a valid signal, got %d", resp.Code)
	}
}

func TestStreamEstablishes(t *testing.T) {
	r, _ := setupRouter()

	// A pre-cancelled context makes the stream return right after the
	// handshake event.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if got := resp.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("expected SSE content type, got %q", got)
	}
	if !strings.Contains(resp.Body.String(), "stream established") {
		t.Fatalf("expected the handshake event, got %q", resp.Body.String())
	}
}
