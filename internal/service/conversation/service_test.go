package conversation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindhaven/backend/internal/dialogue"
	"github.com/mindhaven/backend/internal/model/chat"
	"github.com/mindhaven/backend/internal/model/script"
	"github.com/mindhaven/backend/internal/service/conversation"
)

func newTestService() *conversation.Service {
	return conversation.NewService(script.Seed(), conversation.Config{
		Engine: dialogue.Options{
			ResponseDelay: 10 * time.Millisecond,
			OpeningDelay:  10 * time.Millisecond,
		},
		IdleTTL: time.Minute,
	})
}

func TestCreateSeedsDisclaimer(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	snapshot, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if snapshot.Session.ID == "" {
		t.Fatal("expected a session ID")
	}
	if len(snapshot.Messages) == 0 || snapshot.Messages[0].Kind != chat.KindDisclaimer {
		t.Fatalf("first snapshot should open with the disclaimer, got %+v", snapshot.Messages)
	}
}

func TestSnapshotNotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Snapshot(context.Background(), "missing"); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSelectChoiceRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	if err := svc.SelectChoice(ctx, created.Session.ID, script.ActionFeelingPicked, "Not sure"); err != nil {
		t.Fatalf("SelectChoice err: %v", err)
	}

	snapshot, err := svc.Snapshot(ctx, created.Session.ID)
	if err != nil {
		t.Fatalf("Snapshot err: %v", err)
	}
	last := snapshot.Messages[len(snapshot.Messages)-1]
	if last.Sender != chat.SenderUser || last.Text != "Not sure" {
		t.Fatalf("expected the user's turn at the tail, got %+v", last)
	}
}

func TestListenReceivesEffects(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	effects, cancel, err := svc.Listen(ctx, created.Session.ID)
	if err != nil {
		t.Fatalf("Listen err: %v", err)
	}
	defer cancel()

	if err := svc.SubmitText(ctx, created.Session.ID, "hello"); err != nil {
		t.Fatalf("SubmitText err: %v", err)
	}

	// The opening prompt's effects may interleave; wait for our turn.
	deadline := time.After(time.Second)
	for {
		select {
		case effect := <-effects:
			if effect.Type == conversation.EffectMessage && effect.Message != nil && effect.Message.Text == "hello" {
				return
			}
		case <-deadline:
			t.Fatal("user message effect never arrived")
		}
	}
}

func TestCloseForgetsSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if err := svc.Close(ctx, created.Session.ID); err != nil {
		t.Fatalf("Close err: %v", err)
	}
	if _, err := svc.Snapshot(ctx, created.Session.ID); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Fatalf("closed session should be gone, got %v", err)
	}
	if err := svc.Close(ctx, created.Session.ID); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Fatalf("double close should report not found, got %v", err)
	}
}

func TestCloseEndsListeners(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, _ := svc.Create(ctx)
	effects, cancel, err := svc.Listen(ctx, created.Session.ID)
	if err != nil {
		t.Fatalf("Listen err: %v", err)
	}
	defer cancel()

	if err := svc.Close(ctx, created.Session.ID); err != nil {
		t.Fatalf("Close err: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		select {
		case _, open := <-effects:
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("effect channel not closed after Close")
		}
	}
}

func TestReapIdleClosesStaleConversations(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, _ := svc.Create(ctx)
	if n := svc.ReapIdle(time.Now()); n != 0 {
		t.Fatalf("fresh conversation should survive, reaped %d", n)
	}
	if n := svc.ReapIdle(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("expected one stale conversation reaped, got %d", n)
	}
	if _, err := svc.Snapshot(ctx, created.Session.ID); !errors.Is(err, conversation.ErrSessionNotFound) {
		t.Fatalf("reaped session should be gone, got %v", err)
	}
	if svc.Len() != 0 {
		t.Fatalf("expected no live conversations, got %d", svc.Len())
	}
}
