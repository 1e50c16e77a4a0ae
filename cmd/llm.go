package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bacdz/eduai/internal/config"
	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the generative backend configuration",
}

var llmShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		c := cfg.LLM
		fmt.Printf("Provider:  %s\n", c.Provider)
		switch c.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", c.Gemini.Model)
			fmt.Printf("API key:   %s\n", maskKey(c.Gemini.APIKey))
		case "openai":
			fmt.Printf("Model:     %s\n", c.OpenAI.Model)
			fmt.Printf("API key:   %s\n", maskKey(c.OpenAI.APIKey))
			if c.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", c.OpenAI.BaseURL)
			}
		case "anthropic":
			fmt.Printf("Model:     %s\n", c.Anthropic.Model)
			fmt.Printf("API key:   %s\n", maskKey(c.Anthropic.APIKey))
		case "openrouter":
			fmt.Printf("Model:     %s\n", c.OpenRouter.Model)
			fmt.Printf("API key:   %s\n", maskKey(c.OpenRouter.APIKey))
		}

		if err := c.Validate(); err != nil {
			fmt.Printf("Status:    not configured (%v)\n", err)
			return nil
		}
		fmt.Println("Status:    configured")
		return nil
	},
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send a test request to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cfg.LLM.Validate(); err != nil {
			return fmt.Errorf("provider not configured: %w", err)
		}

		s, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		ctx = llm.WithPurpose(ctx, "probe")

		provider, err := llm.NewProvider(ctx, cfg.LLM, s.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "قل مرحبا في كلمة واحدة"}},
			MaxTokens: 64,
		})
		if err != nil {
			return fmt.Errorf("probe failed: %w", err)
		}

		fmt.Printf("OK (%s, %dms)\n", resp.Model, time.Since(start).Milliseconds())
		fmt.Println(resp.Text())
		return nil
	},
}

// maskKey hides all but the last four characters of a credential.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func init() {
	llmCmd.AddCommand(llmShowCmd)
	llmCmd.AddCommand(llmProbeCmd)
}
