package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bacdz/eduai/internal/config"
	"github.com/bacdz/eduai/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics",
}

var statsUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Aggregate LLM usage per purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		summaries, err := s.EventRepo().UsageByPurpose(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-14s  %-8s  %-8s  %-10s  %s\n",
			"Purpose", "Requests", "Failures", "In tokens", "Out tokens")
		fmt.Println(strings.Repeat("─", 60))
		for _, u := range summaries {
			fmt.Printf("%-14s  %-8d  %-8d  %-10d  %d\n",
				u.Purpose, u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
		}
		return nil
	},
}

var statsQuizCmd = &cobra.Command{
	Use:   "quiz <lesson-id>",
	Short: "Show quiz history for a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.Load(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		results, err := s.EventRepo().QuizHistory(context.Background(), args[0], limit)
		if err != nil {
			return fmt.Errorf("query quiz history: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No quiz attempts for this lesson yet.")
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-7s  %s\n", "Timestamp", "Subject", "Score", "Duration")
		fmt.Println(strings.Repeat("─", 56))
		for _, r := range results {
			fmt.Printf("%-19s  %-14s  %d/%-5d  %ds\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.SubjectID, r.Correct, r.Total, r.DurationSecs)
		}
		return nil
	},
}

func init() {
	statsQuizCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
	statsCmd.AddCommand(statsUsageCmd)
	statsCmd.AddCommand(statsQuizCmd)
}
