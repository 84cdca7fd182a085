package dialogue

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	dialogueEngine "github.com/mindhaven/backend/internal/dialogue"
	"github.com/mindhaven/backend/internal/model/chat"
	"github.com/mindhaven/backend/internal/model/script"
	"github.com/mindhaven/backend/internal/service/conversation"
)

func setupRouter() (*chi.Mux, *conversation.Service) {
	convSvc := conversation.NewService(script.Seed(), conversation.Config{
		Engine: dialogueEngine.Options{
			ResponseDelay: 10 * time.Millisecond,
			OpeningDelay:  10 * time.Millisecond,
		},
	})
	handler := New(convSvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, convSvc
}

func createSession(t *testing.T, r *chi.Mux) conversation.Snapshot {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat/sessions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var snapshot conversation.Snapshot
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	return snapshot
}

func TestCreateSessionReturnsDisclaimer(t *testing.T) {
	r, _ := setupRouter()
	snapshot := createSession(t, r)

	if len(snapshot.Messages) == 0 || snapshot.Messages[0].Kind != chat.KindDisclaimer {
		t.Fatalf("expected the disclaimer in the first snapshot, got %+v", snapshot.Messages)
	}
}

func TestGetSnapshotUnknownSession(t *testing.T) {
	r, _ := setupRouter()
	req := httptest.NewRequest(http.MethodGet, "/chat/sessions/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestPostChoice(t *testing.T) {
	r, _ := setupRouter()
	snapshot := createSession(t, r)

	payload, _ := json.Marshal(map[string]string{"action": "feeling_picked", "label": "Sad / low"})
	req := httptest.NewRequest(http.MethodPost, "/chat/sessions/"+snapshot.Session.ID+"/choices", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/chat/sessions/"+snapshot.Session.ID, nil)
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, get)

	var after conversation.Snapshot
	if err := json.Unmarshal(getResp.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	last := after.Messages[len(after.Messages)-1]
	if last.Sender != chat.SenderUser || last.Text != "Sad / low" {
		t.Fatalf("expected the user's turn appended, got %+v", last)
	}
}

func TestPostChoiceMissingLabel(t *testing.T) {
	r, _ := setupRouter()
	snapshot := createSession(t, r)

	req := httptest.NewRequest(http.MethodPost, "/chat/sessions/"+snapshot.Session.ID+"/choices", bytes.NewReader([]byte(`{"action":"feeling_picked"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestPostMessageBlankTextIsAcceptedAndIgnored(t *testing.T) {
	r, _ := setupRouter()
	snapshot := createSession(t, r)
	before := len(snapshot.Messages)

	payload, _ := json.Marshal(map[string]string{"text": "   "})
	req := httptest.NewRequest(http.MethodPost, "/chat/sessions/"+snapshot.Session.ID+"/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/chat/sessions/"+snapshot.Session.ID, nil)
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, get)

	var after conversation.Snapshot
	if err := json.Unmarshal(getResp.Body.Bytes(), &after); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	// Only the deferred opening prompt may have landed meanwhile; the
	// blank submission itself must not add a user turn.
	for _, msg := range after.Messages[before:] {
		if msg.Sender == chat.SenderUser {
			t.Fatalf("blank text should not append a user message, got %+v", msg)
		}
	}
}

func TestDeleteSession(t *testing.T) {
	r, _ := setupRouter()
	snapshot := createSession(t, r)

	req := httptest.NewRequest(http.MethodDelete, "/chat/sessions/"+snapshot.Session.ID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/chat/sessions/"+snapshot.Session.ID, nil)
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, get)

	if getResp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", getResp.Code)
	}
}
