package models

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role" validate:"required,oneof=user assistant"`
	Content string   `json:"content" validate:"required,max=4000"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=40,dive"`
	Locale   string        `json:"locale,omitempty"`
}

// BackendChatRequest is the payload of POST /backend/chat.
type BackendChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Context  string        `json:"context"`
	Locale   string        `json:"locale,omitempty"`
}

type BackendChatReply struct {
	Reply string `json:"reply"`
}

type SegmentKind string

const (
	SegmentText SegmentKind = "text"
	SegmentLink SegmentKind = "link"
)

// Segment is a piece of the reply prose, either plain text or a link.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
	Href string      `json:"href,omitempty"`
}

type ChatResponse struct {
	Reply    string    `json:"reply"`
	Links    []string  `json:"links"`
	Segments []Segment `json:"segments"`
}
