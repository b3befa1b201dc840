package progress

import (
	"time"

	"github.com/abenov/mathai/internal/chat"
)

// ApplyTopicChange records the learner's topic selection. No other field
// changes.
func (s State) ApplyTopicChange(topic string) State {
	out := s.Clone()
	out.LastTopic = topic
	return out
}

// ApplyExchangeCompleted records one completed tutor exchange: XP grows by
// a fixed increment, the solved counter advances, the transcript snapshot
// joins the archive and the oldest-inserted sessions are evicted past the
// cap. The transition has no error conditions.
func (s State) ApplyExchangeCompleted(session chat.ChatSession) State {
	out := s.Clone()
	out.XP += XPPerExchange
	out.SolvedCount++
	out.LastActive = time.Now().UTC().Format(time.RFC3339)
	out.Sessions = append(out.Sessions, session)
	if n := len(out.Sessions); n > MaxSessions {
		out.Sessions = out.Sessions[n-MaxSessions:]
	}
	out.Badges = unlockBadges(out)
	return out
}

// DeleteSession removes the archived session with the given ID. Removing
// an unknown ID is a no-op, not an error.
func (s State) DeleteSession(id string) State {
	out := s.Clone()
	for i, sess := range out.Sessions {
		if sess.ID == id {
			out.Sessions = append(out.Sessions[:i], out.Sessions[i+1:]...)
			break
		}
	}
	return out
}
