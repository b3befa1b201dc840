package progress

import (
	"fmt"
	"testing"
)

func TestFirstExchangeUnlocksFirstStep(t *testing.T) {
	s := NewState()
	s = s.ApplyExchangeCompleted(testSession("s1"))

	if !s.HasBadge("first_step") {
		t.Errorf("badges = %v, want first_step unlocked", s.Badges)
	}
}

func TestTenSolvedBadge(t *testing.T) {
	s := NewState()
	for i := 1; i <= 9; i++ {
		s = s.ApplyExchangeCompleted(testSession(fmt.Sprintf("s%d", i)))
		if s.HasBadge("ten_solved") {
			t.Fatalf("ten_solved unlocked early at %d solved", i)
		}
	}

	s = s.ApplyExchangeCompleted(testSession("s10"))
	if !s.HasBadge("ten_solved") {
		t.Errorf("badges = %v, want ten_solved unlocked", s.Badges)
	}
}

func TestLevelBadge(t *testing.T) {
	s := NewState()
	s.XP = 375 // level 4, next exchange reaches 400 = level 5

	s = s.ApplyExchangeCompleted(testSession("s1"))

	if s.Level() != 5 {
		t.Fatalf("level = %d, want 5", s.Level())
	}
	if !s.HasBadge("level_five") {
		t.Errorf("badges = %v, want level_five unlocked", s.Badges)
	}
}

func TestBadgesNeverRemoved(t *testing.T) {
	s := NewState()
	// Unknown badge from an earlier app version stays put.
	s.Badges = []string{"legacy_badge"}

	s = s.ApplyExchangeCompleted(testSession("s1"))

	if !s.HasBadge("legacy_badge") {
		t.Error("legacy badge was dropped by a transition")
	}
	if !s.HasBadge("first_step") {
		t.Error("new badge not added alongside legacy badge")
	}
}

func TestBadgesNotDuplicated(t *testing.T) {
	s := NewState()
	s = s.ApplyExchangeCompleted(testSession("s1"))
	s = s.ApplyExchangeCompleted(testSession("s2"))

	seen := map[string]int{}
	for _, id := range s.Badges {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("badge %q appears %d times", id, n)
		}
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Catalog() {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Name == "" || b.Icon == "" {
			t.Errorf("badge %q missing display fields", b.ID)
		}
	}
}
