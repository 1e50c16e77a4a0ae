package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bacdz/eduai/internal/config"
	"github.com/bacdz/eduai/internal/gradebook"
	"github.com/bacdz/eduai/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the gradebook to an xlsx spreadsheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "gradebook.xlsx"
		if len(args) == 1 {
			path = args[0]
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := gradebook.NewService(s.GradebookRepo())
		if err := svc.ExportXLSX(context.Background(), path); err != nil {
			return fmt.Errorf("export gradebook: %w", err)
		}
		fmt.Println("Gradebook exported to", path)
		return nil
	},
}
