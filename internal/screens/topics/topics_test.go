package topics

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/llm"
	"github.com/abenov/mathai/internal/router"
	"github.com/abenov/mathai/internal/tutor"
)

func newTestScreen() *TopicsScreen {
	ctrl := tutor.New(llm.NewMockProvider(), nil, nil)
	return New(ctrl)
}

func TestStartsAtGradeStage(t *testing.T) {
	s := newTestScreen()

	if s.stage != pickGrade {
		t.Errorf("stage = %v, want pickGrade", s.stage)
	}
	opts := s.options()
	if len(opts) != len(chat.AllGrades()) {
		t.Errorf("options = %d, want %d grades", len(opts), len(chat.AllGrades()))
	}
	if opts[0] != "5-сынып" {
		t.Errorf("first option = %q", opts[0])
	}
}

func TestGradeSelectionAdvancesToTopics(t *testing.T) {
	s := newTestScreen()

	updated, _ := s.choose()
	s = updated.(*TopicsScreen)

	if s.stage != pickTopic {
		t.Fatalf("stage = %v, want pickTopic", s.stage)
	}
	if s.grade != chat.Grade5 {
		t.Errorf("grade = %q, want 5", s.grade)
	}
	if len(s.topics) == 0 {
		t.Fatal("topic options should not be empty")
	}
	if s.topics[0] != "Жалпы математика" {
		t.Errorf("first topic = %q, want the general topic", s.topics[0])
	}
}

func TestTopicSelectionAppliesAndNavigates(t *testing.T) {
	s := newTestScreen()

	updated, _ := s.choose() // grade
	s = updated.(*TopicsScreen)
	s.selected = 1

	updated, cmd := s.choose() // topic
	s = updated.(*TopicsScreen)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Errorf("msg = %T, want ReplaceScreenMsg", msg)
	}

	_, topic := s.ctrl.Topic()
	if topic != s.topics[1] {
		t.Errorf("active topic = %q, want %q", topic, s.topics[1])
	}
}

func TestEscFromTopicsReturnsToGrades(t *testing.T) {
	s := newTestScreen()

	updated, _ := s.choose()
	s = updated.(*TopicsScreen)
	if s.stage != pickTopic {
		t.Fatal("expected topic stage")
	}

	s.stage = pickTopic
	updated, _ = s.handleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*TopicsScreen)
	if s.stage != pickGrade {
		t.Errorf("stage = %v, want pickGrade after esc", s.stage)
	}
}
