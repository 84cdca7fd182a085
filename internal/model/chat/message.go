package chat

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Kind distinguishes the pinned disclaimer from regular turns.
type Kind string

const (
	KindNormal     Kind = "normal"
	KindDisclaimer Kind = "disclaimer"
)

// Message is one immutable entry in a conversation log. The log is
// append-only; render order equals conversation order.
type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
	// Timestamp is the viewer-facing hour:minute string computed at
	// creation time. The disclaimer carries none.
	Timestamp string `json:"timestamp,omitempty"`
	Kind      Kind   `json:"kind"`
}
