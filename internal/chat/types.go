package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Grade is a school grade level (5-11).
type Grade string

const (
	Grade5  Grade = "5"
	Grade6  Grade = "6"
	Grade7  Grade = "7"
	Grade8  Grade = "8"
	Grade9  Grade = "9"
	Grade10 Grade = "10"
	Grade11 Grade = "11"
)

// AllGrades returns the supported grades in display order.
func AllGrades() []Grade {
	return []Grade{Grade5, Grade6, Grade7, Grade8, Grade9, Grade10, Grade11}
}

// Valid reports whether g is a known grade level.
func (g Grade) Valid() bool {
	for _, k := range AllGrades() {
		if g == k {
			return true
		}
	}
	return false
}

// FileRef describes a document attached to a message.
type FileRef struct {
	Name     string `json:"name"`
	Data     string `json:"data"` // data URI
	MimeType string `json:"mimeType"`
}

// Source is a grounding citation attached to an assistant reply.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Message is a single entry in a conversation transcript.
// At most one of Image and File is meaningful per message.
type Message struct {
	ID        string   `json:"id"`
	Role      Role     `json:"role"`
	Content   string   `json:"content"`
	Image     string   `json:"image,omitempty"` // data URI
	File      *FileRef `json:"file,omitempty"`
	Sources   []Source `json:"sources,omitempty"`
	Timestamp int64    `json:"timestamp"` // epoch millis
}

// HasAttachment reports whether the message carries an image or a file.
func (m Message) HasAttachment() bool {
	return m.Image != "" || m.File != nil
}

// ChatSession is an archived conversation: the full transcript snapshot
// taken when an exchange completed.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Grade     Grade     `json:"grade"`
	Messages  []Message `json:"messages"`
	Timestamp int64     `json:"timestamp"` // epoch millis
}

// NewUserMessage builds a user message with a fresh ID and current timestamp.
func NewUserMessage(content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewAssistantMessage builds an assistant message with a fresh ID and
// current timestamp.
func NewAssistantMessage(content string, sources []Source) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Sources:   sources,
		Timestamp: time.Now().UnixMilli(),
	}
}

// SessionTitle derives an archive title from the triggering user message,
// truncated to 30 runes.
func SessionTitle(content string) string {
	r := []rune(content)
	if len(r) <= 30 {
		return content
	}
	return string(r[:30])
}
