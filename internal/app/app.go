package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/screen"
	"github.com/abenov/mathai/internal/screens/home"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/abenov/mathai/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *tutor.Controller
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(ctrl *tutor.Controller) AppModel {
	return AppModel{
		ctrl:   ctrl,
		router: router.New(home.New(ctrl)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return probeConnectivity()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case connectivityMsg:
		m.ctrl.SetOnline(msg.Online)
		return m, scheduleProbe()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.ctrl.Progress()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Level:   st.Level(),
		XP:      st.XP,
		Streak:  st.Streak,
		Offline: !m.ctrl.Online(),
	}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Навигация"},
		{Key: "Enter", Description: "Таңдау"},
		{Key: "Ctrl+C", Description: "Шығу"},
	}
	if active != nil {
		if hp, ok := active.(screen.KeyHintProvider); ok {
			if hints := hp.KeyHints(); len(hints) > 0 {
				footerHints = hints
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctrl *tutor.Controller) error {
	p := tea.NewProgram(newAppModel(ctrl))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
