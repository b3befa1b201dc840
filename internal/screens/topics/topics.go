package topics

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/screen"
	"github.com/abenov/mathai/internal/screens/chatview"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/abenov/mathai/internal/ui/components"
	"github.com/abenov/mathai/internal/ui/layout"
	"github.com/abenov/mathai/internal/ui/theme"
)

type stage int

const (
	pickGrade stage = iota
	pickTopic
)

// TopicsScreen is the two-step grade and topic picker.
type TopicsScreen struct {
	ctrl     *tutor.Controller
	stage    stage
	grade    chat.Grade
	selected int
	topics   []string
	errMsg   string
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates the topic picker starting at the grade step.
func New(ctrl *tutor.Controller) *TopicsScreen {
	grade, _ := ctrl.Topic()
	selected := 0
	for i, g := range chat.AllGrades() {
		if g == grade {
			selected = i
			break
		}
	}
	return &TopicsScreen{
		ctrl:     ctrl,
		stage:    pickGrade,
		selected: selected,
	}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	if s.stage == pickGrade {
		return "Сынып таңдау"
	}
	return "Тақырып таңдау"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Таңдау"},
		{Key: "Enter", Description: "Растау"},
		{Key: "Esc", Description: "Артқа"},
	}
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}
	return s, nil
}

func (s *TopicsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	options := s.options()

	switch msg.String() {
	case "esc":
		if s.stage == pickTopic {
			s.stage = pickGrade
			s.selected = 0
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(options)-1 {
			s.selected++
		}
	case "enter":
		return s.choose()
	}
	return s, nil
}

func (s *TopicsScreen) choose() (screen.Screen, tea.Cmd) {
	if s.stage == pickGrade {
		s.grade = chat.AllGrades()[s.selected]
		s.topics = tutor.TopicsFor(s.grade)
		s.stage = pickTopic
		s.selected = 0
		return s, nil
	}

	// Topic selection is local and fast, so it runs on the event loop.
	topic := s.topics[s.selected]
	if _, err := s.ctrl.SelectTopic(context.Background(), s.grade, topic); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: chatview.New(s.ctrl)}
	}
}

func (s *TopicsScreen) options() []string {
	if s.stage == pickGrade {
		grades := chat.AllGrades()
		out := make([]string, len(grades))
		for i, g := range grades {
			out[i] = string(g) + "-сынып"
		}
		return out
	}
	return s.topics
}

func (s *TopicsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := "Қай сыныпта оқисың?"
	if s.stage == pickTopic {
		heading = "Қай тақырыппен айналысамыз?"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(heading))
	b.WriteString("\n\n")

	for i, opt := range s.options() {
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ " + opt))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  " + opt))
		}
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return components.PanelFrame(b.String(), width, height)
}
