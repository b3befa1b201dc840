package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/screen"
	"github.com/abenov/mathai/internal/screens/chatview"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/abenov/mathai/internal/ui/layout"
	"github.com/abenov/mathai/internal/ui/theme"
)

// HistoryScreen lists archived sessions, newest first. A session can be
// reopened to continue the conversation, or deleted.
type HistoryScreen struct {
	ctrl     *tutor.Controller
	selected int
	notice   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(ctrl *tutor.Controller) *HistoryScreen {
	return &HistoryScreen{ctrl: ctrl}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "Сессиялар тарихы"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ашу"},
		{Key: "D", Description: "Өшіру"},
		{Key: "↑↓", Description: "Таңдау"},
		{Key: "Esc", Description: "Артқа"},
	}
}

// sessions returns the archive newest first.
func (s *HistoryScreen) sessions() []chat.ChatSession {
	archived := s.ctrl.Progress().Sessions
	out := make([]chat.ChatSession, len(archived))
	for i, sess := range archived {
		out[len(archived)-1-i] = sess
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	sessions := s.sessions()

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(sessions)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(sessions) {
			if s.ctrl.OpenSession(sessions[s.selected].ID) {
				return s, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: chatview.New(s.ctrl)}
				}
			}
		}
	case "d", "x":
		if s.selected < len(sessions) {
			if err := s.ctrl.DeleteSession(context.Background(), sessions[s.selected].ID); err != nil {
				s.notice = "Өшіру сәтсіз аяқталды."
			} else {
				s.notice = "Сессия өшірілді."
			}
			if s.selected >= len(sessions)-1 && s.selected > 0 {
				s.selected--
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	sessions := s.sessions()

	if len(sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Әзірге сессиялар жоқ. Алғашқы есебіңді жіберші!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice)))
		b.WriteString("\n\n")
	}

	for i, sess := range sessions {
		dateStr := time.UnixMilli(sess.Timestamp).Format("02.01.2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s  (%s, %s-сынып, %d хабарлама)",
			prefix, dateStr, sess.Title, sess.Topic, sess.Grade, len(sess.Messages))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
