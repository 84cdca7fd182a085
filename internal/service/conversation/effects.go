package conversation

import (
	"sync"

	"github.com/mindhaven/backend/internal/model/chat"
	"github.com/mindhaven/backend/internal/model/script"
)

// Effect mirrors the engine's side effects in a transport-friendly
// shape, for fan-out to websocket clients.
type Effect struct {
	Type    string          `json:"type"`
	Message *chat.Message   `json:"message,omitempty"`
	Choices []script.Choice `json:"choices,omitempty"`
	Typing  *bool           `json:"typing,omitempty"`
	Target  string          `json:"target,omitempty"`
}

const (
	EffectMessage      = "message"
	EffectChoices      = "choices"
	EffectTyping       = "typing"
	EffectNavigate     = "navigate"
	EffectOpenExternal = "open_external"
	EffectClose        = "close"
)

// fanoutSink implements dialogue.Sink, broadcasting effects to every
// subscriber without blocking the engine.
type fanoutSink struct {
	mu     sync.Mutex
	subs   map[int]chan Effect
	next   int
	closed bool
}

func newFanoutSink() *fanoutSink {
	return &fanoutSink{subs: make(map[int]chan Effect)}
}

func (s *fanoutSink) subscribe() (<-chan Effect, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Effect, 32)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.next
	s.next++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *fanoutSink) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, sub := range s.subs {
		delete(s.subs, id)
		close(sub)
	}
}

func (s *fanoutSink) broadcast(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		select {
		case sub <- e:
		default:
		}
	}
}

func (s *fanoutSink) MessageAppended(msg chat.Message) {
	s.broadcast(Effect{Type: EffectMessage, Message: &msg})
}

func (s *fanoutSink) ChoicesChanged(choices []script.Choice) {
	s.broadcast(Effect{Type: EffectChoices, Choices: choices})
}

func (s *fanoutSink) TypingChanged(active bool) {
	s.broadcast(Effect{Type: EffectTyping, Typing: &active})
}

func (s *fanoutSink) Navigate(path string) {
	s.broadcast(Effect{Type: EffectNavigate, Target: path})
}

func (s *fanoutSink) OpenExternal(url string) {
	s.broadcast(Effect{Type: EffectOpenExternal, Target: url})
}

func (s *fanoutSink) CloseRequested() {
	s.broadcast(Effect{Type: EffectClose})
}
