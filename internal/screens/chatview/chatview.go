package chatview

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/llm"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/screen"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/abenov/mathai/internal/ui/components"
	"github.com/abenov/mathai/internal/ui/layout"
)

// ChatScreen is the conversation view: the transcript plus the input line.
type ChatScreen struct {
	ctrl *tutor.Controller

	input       components.TextInput
	attachInput components.TextInput
	attachMode  bool

	pending     *chat.Attachment
	pendingName string

	// scrollUp counts lines scrolled above the transcript tail. Zero means
	// the view follows new messages.
	scrollUp     int
	spinnerFrame int
	notice       string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen around the shared controller.
func New(ctrl *tutor.Controller) *ChatScreen {
	return &ChatScreen{
		ctrl:        ctrl,
		input:       components.NewTextInput("Есебіңді жаз...", 500),
		attachInput: components.NewTextInput("Файл жолы (сурет немесе PDF)...", 300),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	_, topic := s.ctrl.Topic()
	return topic
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	if s.attachMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Тіркеу"},
			{Key: "Esc", Description: "Бас тарту"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Жіберу"},
		{Key: "Ctrl+O", Description: "Файл тіркеу"},
		{Key: "PgUp/PgDn", Description: "Айналдыру"},
		{Key: "Esc", Description: "Артқа"},
	}
	return hints
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exchangeDoneMsg:
		return s.handleExchangeDone(msg)

	case attachmentLoadedMsg:
		return s.handleAttachmentLoaded(msg)

	case spinnerTickMsg:
		if !s.ctrl.InFlight() {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case noticeExpiredMsg:
		s.notice = ""
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.attachMode {
		switch key {
		case "esc":
			s.attachMode = false
			s.attachInput.Reset()
			return s, nil
		case "enter":
			path := s.attachInput.Value()
			s.attachMode = false
			s.attachInput.Reset()
			if path == "" {
				return s, nil
			}
			return s, loadAttachment(path)
		}
		var cmd tea.Cmd
		s.attachInput, cmd = s.attachInput.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "ctrl+o":
		s.attachMode = true
		return s, s.attachInput.Init()
	case "pgup":
		s.scrollUp += 5
		return s, nil
	case "pgdown":
		s.scrollUp -= 5
		if s.scrollUp < 0 {
			s.scrollUp = 0
		}
		return s, nil
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	if s.attachMode {
		s.attachInput, cmd = s.attachInput.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

// submit starts an exchange: the controller mutates on this goroutine, only
// the provider call runs in the command.
func (s *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	text := s.input.Value()

	userMsg, req, err := s.ctrl.Begin(text, s.pending, s.pendingName)
	switch {
	case errors.Is(err, tutor.ErrEmptySubmission):
		return s, nil
	case errors.Is(err, tutor.ErrExchangeInFlight):
		return s, nil
	case errors.Is(err, tutor.ErrOffline):
		return s, s.showNotice("Интернет байланысы жоқ. Қосылған соң қайта көр.")
	case err != nil:
		return s, s.showNotice(err.Error())
	}

	s.input.Reset()
	s.pending = nil
	s.pendingName = ""
	s.scrollUp = 0

	provider := s.ctrl.Provider()
	return s, tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			ctx := llm.WithPurpose(context.Background(), "tutor-exchange")
			resp, callErr := provider.Generate(ctx, req)
			return exchangeDoneMsg{UserMsg: userMsg, Resp: resp, Err: callErr}
		},
	)
}

func (s *ChatScreen) handleExchangeDone(msg exchangeDoneMsg) (screen.Screen, tea.Cmd) {
	_, err := s.ctrl.Complete(context.Background(), msg.UserMsg, msg.Resp, msg.Err)
	s.scrollUp = 0
	if err != nil {
		return s, s.showNotice("Прогресті сақтау сәтсіз аяқталды.")
	}
	return s, nil
}

func (s *ChatScreen) handleAttachmentLoaded(msg attachmentLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		return s, s.showNotice("Файл оқылмады: " + msg.Err.Error())
	}
	s.pending = msg.Attachment
	s.pendingName = msg.FileName
	return s, s.showNotice("Тіркелді: " + msg.FileName)
}

func (s *ChatScreen) showNotice(text string) tea.Cmd {
	s.notice = text
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func loadAttachment(path string) tea.Cmd {
	return func() tea.Msg {
		att, name, err := chat.LoadAttachment(path)
		return attachmentLoadedMsg{Attachment: att, FileName: name, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
