package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/abenov/mathai/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This erases XP, badges and all saved sessions. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.ProfileRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		fmt.Println("Progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
