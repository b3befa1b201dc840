package cmd

import (
	"fmt"
	"time"

	"github.com/abenov/mathai/internal/progress"
	"github.com/abenov/mathai/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		state, err := s.ProfileRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if state == nil {
			fmt.Println("No progress recorded yet.")
			return nil
		}

		fmt.Printf("Level:          %d\n", state.Level())
		fmt.Printf("XP:             %d\n", state.XP)
		fmt.Printf("Solved:         %d\n", state.SolvedCount)
		fmt.Printf("Streak:         %d day(s)\n", state.Streak)
		if state.LastTopic != "" {
			fmt.Printf("Last topic:     %s\n", state.LastTopic)
		}
		if state.LastActive != "" {
			if t, err := time.Parse(time.RFC3339, state.LastActive); err == nil {
				fmt.Printf("Last active:    %s\n", t.Local().Format("2006-01-02 15:04"))
			}
		}
		fmt.Printf("Sessions:       %d\n", len(state.Sessions))

		if len(state.Badges) > 0 {
			unlocked := make(map[string]bool, len(state.Badges))
			for _, id := range state.Badges {
				unlocked[id] = true
			}
			fmt.Println("Badges:")
			for _, b := range progress.Catalog() {
				if unlocked[b.ID] {
					fmt.Printf("  %s %s — %s\n", b.Icon, b.Name, b.Description)
				}
			}
		}
		return nil
	},
}
