package history

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abenov/mathai/internal/llm"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/tutor"
)

func newTestScreen(t *testing.T, exchanges ...string) (*HistoryScreen, *tutor.Controller) {
	t.Helper()

	responses := make([]llm.MockResponse, len(exchanges))
	for i := range exchanges {
		responses[i] = llm.MockResponse{Text: "жауап"}
	}
	ctrl := tutor.New(llm.NewMockProvider(responses...), nil, nil)

	for _, text := range exchanges {
		if _, err := ctrl.Submit(context.Background(), text, nil, ""); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	return New(ctrl), ctrl
}

func TestSessionsNewestFirst(t *testing.T) {
	s, _ := newTestScreen(t, "бірінші", "екінші", "үшінші")

	sessions := s.sessions()
	if len(sessions) != 3 {
		t.Fatalf("sessions = %d, want 3", len(sessions))
	}
	if sessions[0].Title != "үшінші" {
		t.Errorf("first listed = %q, want the newest", sessions[0].Title)
	}
	if sessions[2].Title != "бірінші" {
		t.Errorf("last listed = %q, want the oldest", sessions[2].Title)
	}
}

func TestDeleteSelectedSession(t *testing.T) {
	s, ctrl := newTestScreen(t, "бірінші", "екінші")

	updated, _ := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	s = updated.(*HistoryScreen)

	if got := len(ctrl.Progress().Sessions); got != 1 {
		t.Fatalf("sessions = %d, want 1 after delete", got)
	}
	// The newest was selected and deleted; the older one remains.
	if ctrl.Progress().Sessions[0].Title != "бірінші" {
		t.Errorf("remaining = %q", ctrl.Progress().Sessions[0].Title)
	}
}

func TestOpenSessionReplacesScreen(t *testing.T) {
	s, ctrl := newTestScreen(t, "бірінші")

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*HistoryScreen)
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}

	// The restored log ends with the archived reply.
	msgs := ctrl.Messages()
	if msgs[len(msgs)-1].Content != "жауап" {
		t.Errorf("restored tail = %q", msgs[len(msgs)-1].Content)
	}
}

func TestEscPopsScreen(t *testing.T) {
	s, _ := newTestScreen(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
