package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abenov/mathai/internal/progress"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/screen"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/abenov/mathai/internal/ui/components"
	"github.com/abenov/mathai/internal/ui/layout"
	"github.com/abenov/mathai/internal/ui/theme"
)

// ProfileScreen shows the learner's progress: level, XP, streak and badges.
type ProfileScreen struct {
	ctrl *tutor.Controller
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(ctrl *tutor.Controller) *ProfileScreen {
	return &ProfileScreen{ctrl: ctrl}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Менің профилім"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Артқа"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	st := s.ctrl.Progress()
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderStats(st, cw))
	sections = append(sections, renderXPBar(st, cw))
	sections = append(sections, renderBadges(st, cw))

	content := strings.Join(sections, "\n\n")
	return components.PanelFrame(content, width, height)
}

func renderStats(st progress.State, cw int) string {
	lines := []string{
		fmt.Sprintf("Деңгей: %d", st.Level()),
		fmt.Sprintf("Жалпы XP: %d", st.XP),
		fmt.Sprintf("Шешілген есептер: %d", st.SolvedCount),
		fmt.Sprintf("Белсенділік сериясы: %d күн", st.Streak),
	}
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(strings.Join(lines, "\n"))
	return components.Card(body, cw)
}

// renderXPBar shows progress within the current level.
func renderXPBar(st progress.State, cw int) string {
	within := st.XP % progress.XPPerLevel
	percent := float64(within) / float64(progress.XPPerLevel)

	label := fmt.Sprintf("Келесі деңгейге: %d/%d XP", within, progress.XPPerLevel)
	bar := components.NewProgressBar(label, percent, true, cw-8)
	return components.Card(bar.View(), cw)
}

func renderBadges(st progress.State, cw int) string {
	unlocked := make(map[string]bool, len(st.Badges))
	for _, id := range st.Badges {
		unlocked[id] = true
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Жетістіктер"))
	b.WriteString("\n")

	for _, badge := range progress.Catalog() {
		var line string
		if unlocked[badge.ID] {
			line = lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render(fmt.Sprintf("%s %s — %s", badge.Icon, badge.Name, badge.Description))
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("🔒 %s — %s", badge.Name, badge.Description))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return components.Card(strings.TrimRight(b.String(), "\n"), cw)
}
