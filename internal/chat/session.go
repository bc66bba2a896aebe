package chat

// Turn roles for the conversation transcript and generation requests.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single conversation message.
type Turn struct {
	Role    string
	Content string
}

// Session holds the ordered chat transcript for the lifetime of the UI.
// Turns are append-only and never persisted.
type Session struct {
	turns []Turn
}

func NewSession() *Session { return &Session{} }

// Append adds a turn to the end of the transcript.
func (s *Session) Append(role, content string) {
	s.turns = append(s.turns, Turn{Role: role, Content: content})
}

// Turns returns a copy of the transcript in arrival order.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns in the transcript.
func (s *Session) Len() int { return len(s.turns) }
