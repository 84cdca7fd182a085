package dialogue

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindhaven/backend/internal/analysis/triage"
	"github.com/mindhaven/backend/internal/model/chat"
	"github.com/mindhaven/backend/internal/model/script"
)

// Sink receives the engine's side effects. Implementations must not call
// back into the engine; callbacks run with the engine lock held.
type Sink interface {
	MessageAppended(msg chat.Message)
	ChoicesChanged(choices []script.Choice)
	TypingChanged(active bool)
	Navigate(path string)
	OpenExternal(url string)
	CloseRequested()
}

// Options tunes the simulated typing pauses.
type Options struct {
	// ResponseDelay is the artificial pause before most bot replies.
	ResponseDelay time.Duration
	// OpeningDelay is the pause before the opening prompt after the
	// disclaimer is seeded.
	OpeningDelay time.Duration
}

const (
	defaultResponseDelay = 600 * time.Millisecond
	defaultOpeningDelay  = 500 * time.Millisecond
)

// Engine drives one scripted decision-tree conversation. Each widget
// session owns exactly one engine; nothing is shared across instances.
//
// The engine appends the user's turn synchronously, then schedules at
// most one deferred bot reply. A new submission while a reply is pending
// supersedes it: the latest call wins. The crisis fast lane skips the
// delay entirely and replies on the same turn.
type Engine struct {
	mu       sync.Mutex
	script   script.Script
	detector *triage.Detector
	sink     Sink
	opts     Options

	messages []chat.Message
	choices  []script.Choice
	typing   bool
	pending  *time.Timer
	seq      uint64
	closed   bool

	now func() time.Time
}

// New builds an engine over the supplied script. A nil sink is replaced
// with a no-op one.
func New(sc script.Script, sink Sink, opts Options) *Engine {
	if sink == nil {
		sink = nopSink{}
	}
	if opts.ResponseDelay <= 0 {
		opts.ResponseDelay = defaultResponseDelay
	}
	if opts.OpeningDelay <= 0 {
		opts.OpeningDelay = defaultOpeningDelay
	}
	return &Engine{
		script:   sc,
		detector: triage.NewDetector(sc.CrisisKeywords),
		sink:     sink,
		opts:     opts,
		messages: make([]chat.Message, 0, 16),
		now:      time.Now,
	}
}

// Start seeds the disclaimer as the permanent first log entry and
// schedules the opening prompt. Calling Start more than once is a no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || len(e.messages) > 0 {
		return
	}
	e.appendLocked(chat.Message{
		Text:   e.script.Disclaimer,
		Sender: chat.SenderBot,
		Kind:   chat.KindDisclaimer,
	})
	e.scheduleLocked(e.opts.OpeningDelay, script.StageOpening)
}

// SelectChoice handles a button press: the label is appended as a user
// message immediately, the offered choices are cleared, and the action
// decides what follows. Unknown actions are not errors; they take the
// generic fallback branch.
func (e *Engine) SelectChoice(action script.Action, label string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.appendLocked(chat.Message{Text: label, Sender: chat.SenderUser, Kind: chat.KindNormal})
	e.setChoicesLocked(nil)

	switch action {
	case script.ActionFeelingPicked:
		e.scheduleLocked(e.opts.ResponseDelay, script.StageReflection)
	case script.ActionExplainVenting:
		e.scheduleLocked(e.opts.ResponseDelay, script.StageVenting)
	case script.ActionExplainCoaching:
		e.scheduleLocked(e.opts.ResponseDelay, script.StageCoaching)
	case script.ActionExplainTherapy:
		e.scheduleLocked(e.opts.ResponseDelay, script.StageTherapy)
	case script.ActionCrisisMode:
		e.scheduleLocked(e.opts.ResponseDelay, script.StageCrisis)
	case script.ActionGotoVenting, script.ActionGotoCoaching, script.ActionGotoTherapy:
		// Navigation supersedes any pending reply; the widget is closing.
		e.cancelPendingLocked()
		if path, ok := e.script.Route(action); ok {
			e.sink.Navigate(path)
		}
		e.sink.CloseRequested()
	case script.ActionGotoHelpline:
		// Opens a separate browsing context; the conversation stays put.
		e.sink.OpenExternal(e.script.HelplineURL)
	default:
		e.scheduleLocked(e.opts.ResponseDelay, script.StageFallback)
	}
}

// SubmitFreeText handles typed input. Whitespace-only input is silently
// ignored. Crisis keywords take the fast lane: the safety reply is
// appended on the same turn, never behind the typing delay.
func (e *Engine) SubmitFreeText(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.appendLocked(chat.Message{Text: trimmed, Sender: chat.SenderUser, Kind: chat.KindNormal})
	e.setChoicesLocked(nil)

	if res := e.detector.Screen(trimmed); res.Crisis {
		e.cancelPendingLocked()
		e.deliverLocked(script.StageCrisisKeyword)
		return
	}
	e.scheduleLocked(e.opts.ResponseDelay, script.StageFallback)
}

// Close tears the conversation down. Any pending reply is cancelled; no
// effect is emitted after Close returns.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.cancelPendingLocked()
}

// Messages returns a copy of the conversation log.
func (e *Engine) Messages() []chat.Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]chat.Message(nil), e.messages...)
}

// Choices returns a copy of the currently offered choice set.
func (e *Engine) Choices() []script.Choice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]script.Choice(nil), e.choices...)
}

// Typing reports whether a bot reply is pending.
func (e *Engine) Typing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.typing
}

// Closed reports whether the engine has been torn down.
func (e *Engine) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func (e *Engine) appendLocked(msg chat.Message) {
	msg.ID = uuid.NewString()
	if msg.Kind != chat.KindDisclaimer {
		msg.Timestamp = e.now().Format("15:04")
	}
	e.messages = append(e.messages, msg)
	e.sink.MessageAppended(msg)
}

func (e *Engine) setChoicesLocked(choices []script.Choice) {
	e.choices = choices
	e.sink.ChoicesChanged(append([]script.Choice(nil), choices...))
}

func (e *Engine) setTypingLocked(active bool) {
	if e.typing == active {
		return
	}
	e.typing = active
	e.sink.TypingChanged(active)
}

// scheduleLocked arms the single reply timer, superseding whatever was
// pending. The sequence number guards against a stale timer that already
// fired and is waiting on the lock.
func (e *Engine) scheduleLocked(delay time.Duration, stage script.Stage) {
	if e.pending != nil {
		e.pending.Stop()
	}
	e.seq++
	seq := e.seq
	e.setTypingLocked(true)
	e.pending = time.AfterFunc(delay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || seq != e.seq {
			return
		}
		e.pending = nil
		e.deliverLocked(stage)
	})
}

func (e *Engine) cancelPendingLocked() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.seq++
	e.setTypingLocked(false)
}

func (e *Engine) deliverLocked(stage script.Stage) {
	e.setTypingLocked(false)
	reply, ok := e.script.Reply(stage)
	if !ok {
		return
	}
	e.appendLocked(chat.Message{Text: reply.Body, Sender: chat.SenderBot, Kind: chat.KindNormal})
	e.setChoicesLocked(e.script.Choices(reply.ChoiceSet))
}

type nopSink struct{}

func (nopSink) MessageAppended(chat.Message)   {}
func (nopSink) ChoicesChanged([]script.Choice) {}
func (nopSink) TypingChanged(bool)             {}
func (nopSink) Navigate(string)                {}
func (nopSink) OpenExternal(string)            {}
func (nopSink) CloseRequested()                {}
