package tutor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/llm"
	"github.com/abenov/mathai/internal/progress"
	"github.com/abenov/mathai/internal/store"
)

// Submission rejections. These are boundary checks, not failures: no state
// is mutated when Begin returns one of them.
var (
	ErrOffline          = errors.New("offline: submission disabled")
	ErrEmptySubmission  = errors.New("nothing to submit")
	ErrExchangeInFlight = errors.New("an exchange is already in flight")
)

// Canned fallback replies shown in place of a failed or empty answer.
const (
	apologyEmptyReply = "Кешіріңіз, түсінбедім... Қайта көрейікші! 🙏"
	apologyCallFailed = "Ойбу, есеп қиын боп кетті ме? 🔄 Байланыс үзілді. Қайта жазып көрші, достым!"

	placeholderAttachment = "Бұл есепті түсіндіріп жіберші"
)

// flightState tracks whether an exchange is outstanding. Submit is a valid
// transition only from idle; a second submission while in flight is
// rejected as a no-op rather than queued or raised.
type flightState int

const (
	idle flightState = iota
	inFlight
)

// Controller orchestrates chat turns: it owns the message log, the topic
// context and the progress state, and is the single place where log and
// progress mutations are coupled. All mutating methods must be called from
// one goroutine (the UI event loop); the LLM call itself is the only part
// that may run elsewhere, operating on a snapshot produced by Begin.
type Controller struct {
	provider llm.Provider
	profile  store.ProfileRepo

	state    progress.State
	messages []chat.Message
	grade    chat.Grade
	topic    string
	online   bool
	flight   flightState
}

// New creates a Controller. A nil saved state starts a fresh profile. The
// message log is seeded with the welcome message.
func New(provider llm.Provider, profile store.ProfileRepo, saved *progress.State) *Controller {
	state := progress.NewState()
	if saved != nil {
		state = saved.Clone()
	}

	topic := state.LastTopic
	if topic == "" {
		topic = progress.DefaultTopic
	}

	return &Controller{
		provider: provider,
		profile:  profile,
		state:    state,
		messages: []chat.Message{welcomeMessage()},
		grade:    chat.Grade5,
		topic:    topic,
		online:   true,
	}
}

// Provider returns the LLM provider, for callers that run the Begin /
// Complete split and need to make the call themselves.
func (c *Controller) Provider() llm.Provider {
	return c.provider
}

// Progress returns an immutable snapshot of the learner's progress.
func (c *Controller) Progress() progress.State {
	return c.state.Clone()
}

// Messages returns a copy of the visible message log.
func (c *Controller) Messages() []chat.Message {
	out := make([]chat.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Topic returns the active topic context.
func (c *Controller) Topic() (chat.Grade, string) {
	return c.grade, c.topic
}

// InFlight reports whether an exchange is outstanding.
func (c *Controller) InFlight() bool {
	return c.flight == inFlight
}

// Online reports the last observed connectivity state.
func (c *Controller) Online() bool {
	return c.online
}

// SetOnline records externally observed connectivity. Going offline does
// not cancel an exchange that is already dispatched.
func (c *Controller) SetOnline(online bool) {
	c.online = online
}

// Begin validates a submission, appends the user message and moves to
// in-flight. It returns the user message and the provider request built
// from a snapshot of the conversation; the caller runs the LLM call (on
// any goroutine) and feeds the outcome to Complete. On a rejection error
// nothing is mutated.
func (c *Controller) Begin(text string, attachment *chat.Attachment, fileName string) (chat.Message, llm.Request, error) {
	if !c.online {
		return chat.Message{}, llm.Request{}, ErrOffline
	}
	if c.flight == inFlight {
		return chat.Message{}, llm.Request{}, ErrExchangeInFlight
	}
	if text == "" && attachment == nil {
		return chat.Message{}, llm.Request{}, ErrEmptySubmission
	}

	userMsg := buildUserMessage(text, attachment, fileName)

	req := llm.Request{
		System:       systemPrompt(c.topic, c.grade, c.state.Level()),
		Messages:     buildHistory(c.messages, userMsg, attachment),
		MaxTokens:    2048,
		Temperature:  0.65,
		EnableSearch: true,
	}

	c.messages = append(c.messages, userMsg)
	c.flight = inFlight

	return userMsg, req, nil
}

// Complete finishes the exchange started by Begin: it builds the assistant
// message (substituting the canned apology when the call failed or came
// back empty), appends it, applies the progress transition and persists.
// The turn always completes — a collaborator failure is a soft failure,
// never a crash — so progress increments either way.
func (c *Controller) Complete(ctx context.Context, userMsg chat.Message, resp *llm.Response, callErr error) (chat.Message, error) {
	c.flight = idle

	var reply chat.Message
	switch {
	case callErr != nil:
		reply = chat.NewAssistantMessage(apologyCallFailed, nil)
	case resp.Text == "":
		reply = chat.NewAssistantMessage(apologyEmptyReply, resp.Sources)
	default:
		reply = chat.NewAssistantMessage(resp.Text, resp.Sources)
	}

	// The log append and the progress transition are applied together:
	// the archived session snapshots the transcript including the reply.
	c.messages = append(c.messages, reply)

	session := chat.ChatSession{
		ID:        userMsg.ID,
		Title:     chat.SessionTitle(userMsg.Content),
		Topic:     c.topic,
		Grade:     c.grade,
		Messages:  c.Messages(),
		Timestamp: time.Now().UnixMilli(),
	}
	c.state = c.state.ApplyExchangeCompleted(session)

	if err := c.save(ctx); err != nil {
		return reply, err
	}
	return reply, nil
}

// ExchangeResult is the outcome of one synchronous turn.
type ExchangeResult struct {
	UserMessage      chat.Message
	AssistantMessage chat.Message
}

// Submit runs a full exchange synchronously: Begin, the LLM call, and
// Complete. The TUI uses Begin/Complete directly so the blocking call can
// run off the event loop; Submit serves everything else.
func (c *Controller) Submit(ctx context.Context, text string, attachment *chat.Attachment, fileName string) (*ExchangeResult, error) {
	userMsg, req, err := c.Begin(text, attachment, fileName)
	if err != nil {
		return nil, err
	}

	resp, callErr := c.provider.Generate(llm.WithPurpose(ctx, "tutor-exchange"), req)
	reply, err := c.Complete(ctx, userMsg, resp, callErr)
	if err != nil {
		return nil, err
	}

	return &ExchangeResult{UserMessage: userMsg, AssistantMessage: reply}, nil
}

// SelectTopic switches the topic context and appends the confirmation
// message. Topic selection is local: it works offline and does not count
// as an exchange.
func (c *Controller) SelectTopic(ctx context.Context, grade chat.Grade, topic string) (chat.Message, error) {
	if !grade.Valid() {
		return chat.Message{}, fmt.Errorf("unknown grade: %q", grade)
	}

	c.grade = grade
	c.topic = topic

	confirmation := chat.NewAssistantMessage(topicConfirmation(grade, topic), nil)
	c.messages = append(c.messages, confirmation)

	c.state = c.state.ApplyTopicChange(topic)
	if err := c.save(ctx); err != nil {
		return confirmation, err
	}
	return confirmation, nil
}

// DeleteSession removes a session from the archive. Deleting an unknown
// ID is a no-op.
func (c *Controller) DeleteSession(ctx context.Context, id string) error {
	c.state = c.state.DeleteSession(id)
	return c.save(ctx)
}

// OpenSession restores an archived transcript into the visible log along
// with its topic context. Unknown IDs leave the log untouched.
func (c *Controller) OpenSession(id string) bool {
	for _, sess := range c.state.Sessions {
		if sess.ID != id {
			continue
		}
		c.messages = make([]chat.Message, len(sess.Messages))
		copy(c.messages, sess.Messages)
		c.grade = sess.Grade
		c.topic = sess.Topic
		return true
	}
	return false
}

func (c *Controller) save(ctx context.Context) error {
	if c.profile == nil {
		return nil
	}
	state := c.state
	if err := c.profile.Save(ctx, &state); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

func buildUserMessage(text string, attachment *chat.Attachment, fileName string) chat.Message {
	content := text
	if content == "" {
		if attachment != nil && !attachment.IsImage() && fileName != "" {
			content = "Файл: " + fileName
		} else {
			content = placeholderAttachment
		}
	}

	msg := chat.NewUserMessage(content)
	if attachment != nil {
		if attachment.IsImage() {
			msg.Image = attachment.DataURI()
		} else {
			msg.File = &chat.FileRef{
				Name:     fileName,
				Data:     attachment.DataURI(),
				MimeType: attachment.MimeType,
			}
		}
	}
	return msg
}

// buildHistory converts the transcript plus the new user turn into the
// provider request. Only the final message carries the attachment inline;
// earlier attachments stay in the archive but are not resent.
func buildHistory(history []chat.Message, userMsg chat.Message, attachment *chat.Attachment) []llm.Message {
	out := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == chat.RoleAssistant {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	out = append(out, llm.Message{
		Role:       llm.RoleUser,
		Content:    userMsg.Content,
		Attachment: attachment,
	})
	return out
}
