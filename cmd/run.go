package cmd

import (
	"fmt"
	"os"

	"github.com/abenov/mathai/internal/app"
	"github.com/abenov/mathai/internal/llm"
	"github.com/abenov/mathai/internal/store"
	"github.com/abenov/mathai/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or MATHAI_LLM_PROVIDER) and try again.")
		return err
	}

	profileRepo := st.ProfileRepo()
	saved, err := profileRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	ctrl := tutor.New(provider, profileRepo, saved)
	return app.Run(ctrl)
}
