package chatview

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *ChatScreen) View(width, height int) string {
	inputArea := s.renderInputArea(width)
	inputHeight := lipgloss.Height(inputArea)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := s.renderTranscript(width, transcriptHeight)

	return transcript + "\n" + inputArea
}

// renderTranscript renders the visible window of the message log. The view
// sticks to the tail unless the learner has scrolled up.
func (s *ChatScreen) renderTranscript(width, height int) string {
	var blocks []string
	for _, m := range s.ctrl.Messages() {
		blocks = append(blocks, renderMessage(m, width))
	}

	if s.ctrl.InFlight() {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  "+frame+" Ойланып жатырмын..."))
	}

	lines := strings.Split(strings.Join(blocks, "\n\n"), "\n")

	// Clamp scroll so the window stays within the transcript.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scrollUp > maxScroll {
		s.scrollUp = maxScroll
	}

	end := len(lines) - s.scrollUp
	start := end - height
	if start < 0 {
		start = 0
	}

	visible := lines[start:end]
	pad := height - len(visible)

	var b strings.Builder
	for i := 0; i < pad; i++ {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(visible, "\n"))
	return b.String()
}

// renderMessage renders one transcript entry as an aligned bubble.
func renderMessage(m chat.Message, width int) string {
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 24 {
		bubbleWidth = 24
	}

	ts := time.UnixMilli(m.Timestamp).Format("15:04")

	var body strings.Builder
	body.WriteString(m.Content)
	if m.Image != "" {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("📷 сурет тіркелген"))
	}
	if m.File != nil {
		body.WriteString("\n")
		body.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("📎 " + m.File.Name))
	}

	if m.Role == chat.RoleUser {
		bubble := theme.UserBubble.Width(bubbleWidth).Render(body.String())
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Сен · " + ts)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble+"\n"+meta)
	}

	bubble := theme.AssistantBubble.Width(bubbleWidth).Render(body.String())
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render("MathAI · " + ts)
	block := bubble + "\n" + meta

	if len(m.Sources) > 0 {
		var src strings.Builder
		src.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Дереккөздер:"))
		for _, source := range m.Sources {
			src.WriteString("\n")
			src.WriteString("  • " + theme.SourceLink.Render(source.Title))
			src.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" — " + source.URI))
		}
		block += "\n" + src.String()
	}

	return block
}

func (s *ChatScreen) renderInputArea(width int) string {
	var lines []string

	if s.notice != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  "+s.notice))
	}

	if s.pending != nil {
		label := "📎 " + s.pendingName
		if s.pending.IsImage() {
			label = "📷 " + s.pendingName
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("  "+label+" (жіберуге дайын)"))
	}

	var prompt string
	if s.attachMode {
		prompt = "  Файл: " + s.attachInput.View()
	} else {
		prompt = "  > " + s.input.View()
	}

	lines = append(lines, lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(prompt))

	return strings.Join(lines, "\n")
}
