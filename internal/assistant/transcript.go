package assistant

// Role identifies the author of a transcript entry.
type Role string

// Transcript roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single transcript entry. Markdown marks replies that
// carry inline formatting such as event links.
type ChatMessage struct {
	Role     Role   `json:"role"`
	Content  string `json:"content"`
	Markdown bool   `json:"markdown,omitempty"`
}

// Session is an append-only conversation transcript. The caller owns the
// session; the assistant only ever appends to it. The zero value is an
// empty session ready for use.
type Session struct {
	messages []ChatMessage
}

// Append adds a plain-text entry to the transcript.
func (s *Session) Append(role Role, content string) {
	s.messages = append(s.messages, ChatMessage{Role: role, Content: content})
}

// AppendMarkdown adds a formatted entry to the transcript.
func (s *Session) AppendMarkdown(role Role, content string) {
	s.messages = append(s.messages, ChatMessage{Role: role, Content: content, Markdown: true})
}

// Messages returns a copy of the transcript in append order.
func (s *Session) Messages() []ChatMessage {
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of transcript entries.
func (s *Session) Len() int {
	return len(s.messages)
}
