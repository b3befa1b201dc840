package progress

import (
	"slices"
	"time"

	"github.com/abenov/mathai/internal/chat"
)

// XP awarded per completed exchange and the size of one level.
const (
	XPPerExchange = 25
	XPPerLevel    = 100
)

// MaxSessions caps the session archive. Oldest-inserted entries are
// evicted first once the cap is exceeded.
const MaxSessions = 20

// DefaultTopic is the topic used before the learner picks one.
const DefaultTopic = "Жалпы математика"

// State is the full gamification state of one learner. It is mutated only
// through the Apply* transitions, which return a new value; callers must
// never set fields directly. Level is intentionally absent: it is derived
// from XP (see Level) so the two can never drift.
type State struct {
	SolvedCount int                `json:"solvedCount"`
	XP          int                `json:"xp"`
	Streak      int                `json:"streak"`
	LastTopic   string             `json:"lastTopic"`
	LastActive  string             `json:"lastActive"` // ISO instant
	Badges      []string           `json:"badges"`
	Sessions    []chat.ChatSession `json:"sessions"`
}

// NewState returns the first-run default state.
func NewState() State {
	return State{
		SolvedCount: 0,
		XP:          0,
		Streak:      1,
		LastTopic:   DefaultTopic,
		LastActive:  time.Now().UTC().Format(time.RFC3339),
		Badges:      []string{},
		Sessions:    []chat.ChatSession{},
	}
}

// Level derives the current level from XP: floor(xp/100)+1.
func (s State) Level() int {
	return s.XP/XPPerLevel + 1
}

// XPInLevel returns the XP earned within the current level (0-99).
func (s State) XPInLevel() int {
	return s.XP % XPPerLevel
}

// XPToNextLevel returns the XP remaining until the next level.
func (s State) XPToNextLevel() int {
	return XPPerLevel - s.XPInLevel()
}

// HasBadge reports whether the badge has been unlocked.
func (s State) HasBadge(id string) bool {
	return slices.Contains(s.Badges, id)
}

// Clone returns a deep copy. Transitions operate on clones so that
// snapshots handed to readers are never aliased by later mutations.
func (s State) Clone() State {
	out := s
	out.Badges = slices.Clone(s.Badges)
	out.Sessions = make([]chat.ChatSession, len(s.Sessions))
	for i, sess := range s.Sessions {
		out.Sessions[i] = sess
		msgs := make([]chat.Message, len(sess.Messages))
		for j, m := range sess.Messages {
			m.Sources = slices.Clone(m.Sources)
			msgs[j] = m
		}
		out.Sessions[i].Messages = msgs
	}
	return out
}
