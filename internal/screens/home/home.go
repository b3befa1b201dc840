package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abenov/mathai/internal/progress"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/screen"
	"github.com/abenov/mathai/internal/screens/chatview"
	"github.com/abenov/mathai/internal/screens/history"
	"github.com/abenov/mathai/internal/screens/profile"
	"github.com/abenov/mathai/internal/screens/topics"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/abenov/mathai/internal/ui/components"
	"github.com/abenov/mathai/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	ctrl       *tutor.Controller
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen around the shared conversation controller.
func New(ctrl *tutor.Controller) *HomeScreen {
	menuLabels := []string{
		"Жаңа әңгіме бастау",
		"Әңгімені жалғастыру",
		"Сессиялар тарихы",
		"Менің профилім",
		"Шығу",
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topics.New(ctrl)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatview.New(ctrl)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(ctrl)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(ctrl)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ctrl:       ctrl,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := h.ctrl.Progress()

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, renderStatsCard(st, cw))
	sections = append(sections, renderMenuCard(h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")
	return components.PanelFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Басты бет"
}

func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("MathAI — математика көмекшісі")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("5-11 сынып оқушыларына арналған")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + subtitle)
}

func renderStatsCard(st progress.State, cw int) string {
	stats := fmt.Sprintf("Деңгей %d   %d XP   🔥 %d күн   Шешілген: %d",
		st.Level(), st.XP, st.Streak, st.SolvedCount)

	line := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(stats)

	if st.LastTopic != "" {
		line += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Соңғы тақырып: "+st.LastTopic)
	}

	return components.Card(line, cw)
}

func renderMenuCard(labels []string, selected int, cw int) string {
	var b strings.Builder
	for i, label := range labels {
		if i == selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ " + label))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  " + label))
		}
		if i < len(labels)-1 {
			b.WriteString("\n")
		}
	}
	return components.Card(b.String(), cw)
}
