package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleState() *progress.State {
	s := progress.NewState()
	s.LastActive = "2026-01-15T10:30:00Z"
	s = s.ApplyTopicChange("Алгебра")
	s = s.ApplyExchangeCompleted(chat.ChatSession{
		ID:    "s1",
		Title: "Теңдеуді шеш",
		Topic: "Алгебра",
		Grade: chat.Grade7,
		Messages: []chat.Message{
			{ID: "m1", Role: chat.RoleUser, Content: "2x+3=7", Timestamp: 100},
			{ID: "m2", Role: chat.RoleAssistant, Content: "x=2", Timestamp: 200,
				Sources: []chat.Source{{Title: "Дереккөз", URI: "https://example.kz"}}},
		},
		Timestamp: 300,
	})
	return &s
}

func TestProfileLoadWhenEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	state, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if state != nil {
		t.Fatal("expected nil state when no snapshot exists")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	want := sampleState()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil state")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}
}

func TestProfileSaveIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	want := sampleState()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("double save changed state:\n got: %+v\nwant: %+v", got, want)
	}

	// Only one snapshot row may remain.
	n, err := s.Client().ProfileSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("snapshot rows = %d, want 1", n)
	}
}

func TestProfileSaveReplacesPrior(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	first := progress.NewState()
	first.LastActive = "2026-01-01T00:00:00Z"
	if err := repo.Save(ctx, &first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := sampleState()
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.XP != second.XP || got.LastTopic != second.LastTopic {
		t.Errorf("load returned stale snapshot: %+v", got)
	}
}

func TestProfileLoadMalformedBlob(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		blob string
	}{
		{"not JSON", "{{{nonsense"},
		{"wrong shape", `{"hello": "world"}`},
		{"negative xp", `{"solvedCount":0,"xp":-5,"streak":1,"lastTopic":"x","lastActive":"t","badges":[],"sessions":[]}`},
		{"xp as string", `{"solvedCount":0,"xp":"25","streak":1,"lastTopic":"x","lastActive":"t","badges":[],"sessions":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Client().ProfileSnapshot.Delete().Exec(ctx); err != nil {
				t.Fatalf("reset: %v", err)
			}
			_, err := s.Client().ProfileSnapshot.Create().SetData(tt.blob).Save(ctx)
			if err != nil {
				t.Fatalf("seed blob: %v", err)
			}

			state, err := s.ProfileRepo().Load(ctx)
			if err != nil {
				t.Fatalf("load must not fail on corrupt data: %v", err)
			}
			if state != nil {
				t.Errorf("corrupt blob should load as absent, got %+v", state)
			}
		})
	}
}

func TestProfileClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state != nil {
		t.Error("expected nil state after clear")
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "tutor-exchange",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
}
