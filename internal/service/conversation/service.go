package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindhaven/backend/internal/dialogue"
	"github.com/mindhaven/backend/internal/model/chat"
	"github.com/mindhaven/backend/internal/model/script"
)

var ErrSessionNotFound = errors.New("session not found")

// Snapshot is a point-in-time view of one conversation.
type Snapshot struct {
	Session  chat.Session    `json:"session"`
	Messages []chat.Message  `json:"messages"`
	Choices  []script.Choice `json:"choices"`
	Typing   bool            `json:"typing"`
}

// Service owns every live widget conversation: one dialogue engine per
// session, all in-memory, reaped when idle or closed. Suitable wherever
// "reset on page reload" semantics are acceptable.
type Service struct {
	mu      sync.RWMutex
	convs   map[string]*conv
	script  script.Script
	opts    dialogue.Options
	idleTTL time.Duration
}

type conv struct {
	session    chat.Session
	engine     *dialogue.Engine
	sink       *fanoutSink
	lastActive time.Time
}

// Config tunes the service.
type Config struct {
	// Engine holds the typing-delay options passed to every engine.
	Engine dialogue.Options
	// IdleTTL is how long an untouched conversation survives before the
	// janitor reaps it.
	IdleTTL time.Duration
}

const defaultIdleTTL = 30 * time.Minute

// NewService bootstraps the in-memory conversation service.
func NewService(sc script.Script, cfg Config) *Service {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultIdleTTL
	}
	return &Service{
		convs:   make(map[string]*conv),
		script:  sc,
		opts:    cfg.Engine,
		idleTTL: cfg.IdleTTL,
	}
}

// Create provisions a session, runs the engine's initialization protocol
// (disclaimer plus deferred opening prompt), and returns the first
// snapshot.
func (s *Service) Create(_ context.Context) (Snapshot, error) {
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	sink := newFanoutSink()
	engine := dialogue.New(s.script, sink, s.opts)

	c := &conv{
		session:    session,
		engine:     engine,
		sink:       sink,
		lastActive: time.Now(),
	}

	s.mu.Lock()
	s.convs[session.ID] = c
	s.mu.Unlock()

	engine.Start()
	return s.snapshot(c), nil
}

// Snapshot returns the current state of a conversation.
func (s *Service) Snapshot(_ context.Context, sessionID string) (Snapshot, error) {
	c, err := s.lookup(sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(c), nil
}

// SelectChoice forwards a button press to the session's engine.
func (s *Service) SelectChoice(_ context.Context, sessionID string, action script.Action, label string) error {
	c, err := s.touch(sessionID)
	if err != nil {
		return err
	}
	c.engine.SelectChoice(action, label)
	return nil
}

// SubmitText forwards typed input to the session's engine.
func (s *Service) SubmitText(_ context.Context, sessionID, text string) error {
	c, err := s.touch(sessionID)
	if err != nil {
		return err
	}
	c.engine.SubmitFreeText(text)
	return nil
}

// Listen subscribes to a conversation's effect stream. The channel is
// closed when the conversation ends or the cancel func is called.
func (s *Service) Listen(_ context.Context, sessionID string) (<-chan Effect, func(), error) {
	c, err := s.lookup(sessionID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := c.sink.subscribe()
	return ch, cancel, nil
}

// Close ends a conversation: pending replies are cancelled, effect
// subscribers are released, and the session is forgotten.
func (s *Service) Close(_ context.Context, sessionID string) error {
	s.mu.Lock()
	c, ok := s.convs[sessionID]
	if ok {
		delete(s.convs, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	c.engine.Close()
	c.sink.closeAll()
	return nil
}

// ReapIdle closes every conversation whose last activity is older than
// the idle TTL, returning how many were reaped.
func (s *Service) ReapIdle(now time.Time) int {
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	var expired []*conv
	for id, c := range s.convs {
		if c.lastActive.Before(cutoff) {
			expired = append(expired, c)
			delete(s.convs, id)
		}
	}
	s.mu.Unlock()

	for _, c := range expired {
		c.engine.Close()
		c.sink.closeAll()
	}
	return len(expired)
}

// Len reports how many conversations are live.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}

func (s *Service) lookup(sessionID string) (*conv, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.convs[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (s *Service) touch(sessionID string) (*conv, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	c.lastActive = time.Now()
	return c, nil
}

func (s *Service) snapshot(c *conv) Snapshot {
	return Snapshot{
		Session:  c.session,
		Messages: c.engine.Messages(),
		Choices:  c.engine.Choices(),
		Typing:   c.engine.Typing(),
	}
}
