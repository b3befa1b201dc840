package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/llm"
	"github.com/abenov/mathai/internal/progress"
	"github.com/abenov/mathai/internal/store"
)

// memProfileRepo keeps the snapshot in memory and counts saves.
type memProfileRepo struct {
	saved     *progress.State
	saveCalls int
	saveErr   error
}

var _ store.ProfileRepo = (*memProfileRepo)(nil)

func (r *memProfileRepo) Load(context.Context) (*progress.State, error) {
	if r.saved == nil {
		return nil, nil
	}
	s := r.saved.Clone()
	return &s, nil
}

func (r *memProfileRepo) Save(_ context.Context, state *progress.State) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	s := state.Clone()
	r.saved = &s
	return nil
}

func (r *memProfileRepo) Clear(context.Context) error {
	r.saved = nil
	return nil
}

func newTestController(responses ...llm.MockResponse) (*Controller, *llm.MockProvider, *memProfileRepo) {
	mock := llm.NewMockProvider(responses...)
	repo := &memProfileRepo{}
	return New(mock, repo, nil), mock, repo
}

func TestNewControllerSeedsWelcome(t *testing.T) {
	c, _, _ := newTestController()

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Role != chat.RoleAssistant {
		t.Errorf("role = %q, want assistant", msgs[0].Role)
	}
	if c.InFlight() {
		t.Error("fresh controller should be idle")
	}
}

func TestSubmitHappyPath(t *testing.T) {
	c, mock, repo := newTestController(llm.MockResponse{Text: "Жауабы: $x = 4$"})

	res, err := c.Submit(context.Background(), "2x = 8 шеш", nil, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.AssistantMessage.Content != "Жауабы: $x = 4$" {
		t.Errorf("reply = %q", res.AssistantMessage.Content)
	}

	// welcome + user + assistant
	if got := len(c.Messages()); got != 3 {
		t.Errorf("messages = %d, want 3", got)
	}

	st := c.Progress()
	if st.XP != progress.XPPerExchange {
		t.Errorf("xp = %d, want %d", st.XP, progress.XPPerExchange)
	}
	if st.SolvedCount != 1 {
		t.Errorf("solvedCount = %d, want 1", st.SolvedCount)
	}
	if len(st.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(st.Sessions))
	}
	if st.Sessions[0].ID != res.UserMessage.ID {
		t.Error("session ID should come from the user message")
	}
	if repo.saveCalls != 1 {
		t.Errorf("saves = %d, want 1", repo.saveCalls)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestSubmitProviderErrorYieldsApology(t *testing.T) {
	c, _, _ := newTestController(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	res, err := c.Submit(context.Background(), "көмектесші", nil, "")
	if err != nil {
		t.Fatalf("submit should soft-fail, got %v", err)
	}
	if !strings.Contains(res.AssistantMessage.Content, "Байланыс үзілді") {
		t.Errorf("reply = %q, want the canned apology", res.AssistantMessage.Content)
	}

	// The failed call still completes the turn: log grows and xp accrues.
	st := c.Progress()
	if st.XP != progress.XPPerExchange {
		t.Errorf("xp = %d, want %d", st.XP, progress.XPPerExchange)
	}
	if len(st.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(st.Sessions))
	}
	if c.InFlight() {
		t.Error("controller should be idle after completion")
	}
}

func TestSubmitEmptyReplyYieldsApology(t *testing.T) {
	c, _, _ := newTestController(llm.MockResponse{Text: ""})

	res, err := c.Submit(context.Background(), "есеп", nil, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(res.AssistantMessage.Content, "түсінбедім") {
		t.Errorf("reply = %q, want the empty-reply apology", res.AssistantMessage.Content)
	}
}

func TestSubmitRejectsEmptySubmission(t *testing.T) {
	c, mock, repo := newTestController()

	_, err := c.Submit(context.Background(), "", nil, "")
	if !errors.Is(err, ErrEmptySubmission) {
		t.Fatalf("err = %v, want ErrEmptySubmission", err)
	}
	if len(c.Messages()) != 1 {
		t.Error("rejected submission must not touch the log")
	}
	if mock.CallCount() != 0 || repo.saveCalls != 0 {
		t.Error("rejected submission must not call provider or persist")
	}
}

func TestSubmitRejectsWhenOffline(t *testing.T) {
	c, mock, _ := newTestController(llm.MockResponse{Text: "never"})
	c.SetOnline(false)

	_, err := c.Submit(context.Background(), "есеп", nil, "")
	if !errors.Is(err, ErrOffline) {
		t.Fatalf("err = %v, want ErrOffline", err)
	}
	if mock.CallCount() != 0 {
		t.Error("offline submission must not reach the provider")
	}

	c.SetOnline(true)
	if _, err := c.Submit(context.Background(), "есеп", nil, ""); err != nil {
		t.Fatalf("submit after reconnect: %v", err)
	}
}

func TestBeginRejectsWhileInFlight(t *testing.T) {
	c, _, _ := newTestController()

	if _, _, err := c.Begin("бірінші", nil, ""); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if !c.InFlight() {
		t.Fatal("expected in-flight after Begin")
	}

	_, _, err := c.Begin("екінші", nil, "")
	if !errors.Is(err, ErrExchangeInFlight) {
		t.Fatalf("err = %v, want ErrExchangeInFlight", err)
	}
	// Only welcome + first user message.
	if got := len(c.Messages()); got != 2 {
		t.Errorf("messages = %d, want 2", got)
	}
}

func TestBeginCompleteRoundTrip(t *testing.T) {
	c, _, repo := newTestController()

	userMsg, req, err := c.Begin("5 + 7 неше?", nil, "")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if req.Temperature != 0.65 {
		t.Errorf("temperature = %v, want 0.65", req.Temperature)
	}
	if !req.EnableSearch {
		t.Error("search grounding should be requested")
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
	// welcome + the new user turn.
	if len(req.Messages) != 2 {
		t.Errorf("request messages = %d, want 2", len(req.Messages))
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "5 + 7 неше?" {
		t.Errorf("final turn = %+v", last)
	}

	reply, err := c.Complete(context.Background(), userMsg, &llm.Response{Text: "12"}, nil)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if reply.Content != "12" {
		t.Errorf("reply = %q", reply.Content)
	}
	if c.InFlight() {
		t.Error("should be idle after Complete")
	}
	if repo.saved == nil || len(repo.saved.Sessions) != 1 {
		t.Fatal("snapshot should hold the archived session")
	}
	sess := repo.saved.Sessions[0]
	if sess.Messages[len(sess.Messages)-1].Content != "12" {
		t.Error("archived transcript should include the reply")
	}
}

func TestAttachmentOnlySubmissionUsesPlaceholder(t *testing.T) {
	c, mock, _ := newTestController(llm.MockResponse{Text: "көрдім"})

	att := &chat.Attachment{Data: "aGVsbG8=", MimeType: "image/png"}
	res, err := c.Submit(context.Background(), "", att, "photo.png")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.UserMessage.Content != placeholderAttachment {
		t.Errorf("content = %q, want placeholder", res.UserMessage.Content)
	}
	if res.UserMessage.Image == "" {
		t.Error("image attachment should populate the message image")
	}

	sent := mock.Calls[0].Messages
	if sent[len(sent)-1].Attachment == nil {
		t.Error("attachment should ride on the final request turn")
	}
}

func TestFileAttachmentUsesFileName(t *testing.T) {
	c, _, _ := newTestController(llm.MockResponse{Text: "оқыдым"})

	att := &chat.Attachment{Data: "JVBERi0=", MimeType: "application/pdf"}
	res, err := c.Submit(context.Background(), "", att, "esep.pdf")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.UserMessage.Content != "Файл: esep.pdf" {
		t.Errorf("content = %q, want file placeholder", res.UserMessage.Content)
	}
	if res.UserMessage.File == nil || res.UserMessage.File.Name != "esep.pdf" {
		t.Errorf("file ref = %+v", res.UserMessage.File)
	}
}

func TestSelectTopic(t *testing.T) {
	c, _, repo := newTestController()

	msg, err := c.SelectTopic(context.Background(), chat.Grade7, "Функция және график")
	if err != nil {
		t.Fatalf("select topic: %v", err)
	}
	if !strings.Contains(msg.Content, "Функция және график") {
		t.Errorf("confirmation = %q", msg.Content)
	}

	grade, topic := c.Topic()
	if grade != chat.Grade7 || topic != "Функция және график" {
		t.Errorf("topic context = %s/%s", grade, topic)
	}
	if repo.saved == nil || repo.saved.LastTopic != "Функция және график" {
		t.Error("topic change should persist")
	}

	// Topic selection is local: it works offline too.
	c.SetOnline(false)
	if _, err := c.SelectTopic(context.Background(), chat.Grade8, "Теңсіздіктер"); err != nil {
		t.Errorf("offline topic change: %v", err)
	}
}

func TestSelectTopicRejectsUnknownGrade(t *testing.T) {
	c, _, _ := newTestController()

	if _, err := c.SelectTopic(context.Background(), chat.Grade("13"), "Бірдеңе"); err == nil {
		t.Error("expected error for unknown grade")
	}
}

func TestDeleteAndOpenSession(t *testing.T) {
	c, _, _ := newTestController(
		llm.MockResponse{Text: "бірінші жауап"},
		llm.MockResponse{Text: "екінші жауап"},
	)
	ctx := context.Background()

	first, err := c.Submit(ctx, "бірінші есеп", nil, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := c.Submit(ctx, "екінші есеп", nil, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := len(c.Progress().Sessions); got != 2 {
		t.Fatalf("sessions = %d, want 2", got)
	}

	if err := c.DeleteSession(ctx, first.UserMessage.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(c.Progress().Sessions); got != 1 {
		t.Errorf("sessions = %d, want 1", got)
	}
	// Deleting an unknown ID is a no-op.
	if err := c.DeleteSession(ctx, "no-such-id"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if got := len(c.Progress().Sessions); got != 1 {
		t.Errorf("sessions = %d, want 1 after no-op delete", got)
	}

	remaining := c.Progress().Sessions[0]
	if !c.OpenSession(remaining.ID) {
		t.Fatal("open should find the archived session")
	}
	msgs := c.Messages()
	if msgs[len(msgs)-1].Content != "екінші жауап" {
		t.Errorf("restored log tail = %q", msgs[len(msgs)-1].Content)
	}
	if c.OpenSession("no-such-id") {
		t.Error("open of unknown ID should report false")
	}
}

func TestControllerResumesSavedState(t *testing.T) {
	saved := progress.NewState()
	saved.XP = 230
	saved.SolvedCount = 9
	saved.LastTopic = "Туынды"

	mock := llm.NewMockProvider(llm.MockResponse{Text: "жарайсың!"})
	c := New(mock, &memProfileRepo{}, &saved)

	if _, topic := c.Topic(); topic != "Туынды" {
		t.Errorf("topic = %q, want resumed topic", topic)
	}

	if _, err := c.Submit(context.Background(), "тағы бір есеп", nil, ""); err != nil {
		t.Fatalf("submit: %v", err)
	}
	st := c.Progress()
	if st.XP != 255 {
		t.Errorf("xp = %d, want 255", st.XP)
	}
	if st.SolvedCount != 10 {
		t.Errorf("solvedCount = %d, want 10", st.SolvedCount)
	}
	// ten_solved unlocks at 10.
	found := false
	for _, b := range st.Badges {
		if b == "ten_solved" {
			found = true
		}
	}
	if !found {
		t.Errorf("badges = %v, want ten_solved unlocked", st.Badges)
	}
}

func TestSubmitReportsSaveError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "жауап"})
	repo := &memProfileRepo{saveErr: errors.New("disk full")}
	c := New(mock, repo, nil)

	_, err := c.Submit(context.Background(), "есеп", nil, "")
	if err == nil {
		t.Fatal("expected save error to surface")
	}
	// The in-memory turn still completed.
	if c.InFlight() {
		t.Error("controller should be idle")
	}
	if len(c.Progress().Sessions) != 1 {
		t.Error("in-memory state should reflect the completed turn")
	}
}

func TestSystemPromptReflectsLevel(t *testing.T) {
	low := systemPrompt("Туынды", chat.Grade10, 1)
	high := systemPrompt("Туынды", chat.Grade10, 6)

	if low == high {
		t.Error("prompt should vary with learner level")
	}
	for _, p := range []string{low, high} {
		if !strings.Contains(p, "Туынды") || !strings.Contains(p, "LaTeX") {
			t.Errorf("prompt missing topic or format rules: %q", p)
		}
	}
}

func TestTopicsForAlwaysIncludesDefault(t *testing.T) {
	for _, g := range chat.AllGrades() {
		topics := TopicsFor(g)
		if len(topics) < 2 {
			t.Errorf("grade %s: topics = %d, want catalog entries", g, len(topics))
		}
		if topics[0] != progress.DefaultTopic {
			t.Errorf("grade %s: first topic = %q, want default", g, topics[0])
		}
	}
}
