package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacdz/eduai/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data (profiles, events, gradebook)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("This deletes %s and everything in it.\n", cfg.DBPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		if err := os.Remove(cfg.DBPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to delete.")
				return nil
			}
			return fmt.Errorf("delete database: %w", err)
		}
		fmt.Println("Local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation step")
}
