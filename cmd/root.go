package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eduai",
	Short: "AI study companion for the Algerian baccalaureate",
	Long:  "EduAI — terminal tutor that walks BAC students and teachers from track to lesson to AI-generated explanations, exercises, quizzes and exams.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUAI_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Interface language: ar or fr (default ar)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
