package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abenov/mathai/ent"
	"github.com/abenov/mathai/ent/profilesnapshot"
	"github.com/abenov/mathai/internal/chat"
	"github.com/abenov/mathai/internal/progress"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (*progress.State, error) {
	row, err := r.client.ProfileSnapshot.Query().
		Order(ent.Desc(profilesnapshot.FieldSavedAt), ent.Desc(profilesnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile snapshot: %w", err)
	}

	// Malformed or legacy blobs fall back to defaults rather than failing
	// startup.
	if err := validateProfileBlob([]byte(row.Data)); err != nil {
		return nil, nil
	}

	var state progress.State
	if err := json.Unmarshal([]byte(row.Data), &state); err != nil {
		return nil, nil
	}

	if state.Badges == nil {
		state.Badges = []string{}
	}
	if state.Sessions == nil {
		state.Sessions = []chat.ChatSession{}
	}

	return &state, nil
}

func (r *profileRepo) Save(ctx context.Context, state *progress.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal progress state: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.ProfileSnapshot.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear old snapshot: %w", err)
	}

	_, err = tx.ProfileSnapshot.Create().
		SetData(string(data)).
		SetSavedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (r *profileRepo) Clear(ctx context.Context) error {
	if _, err := r.client.ProfileSnapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear profile snapshot: %w", err)
	}
	return nil
}
