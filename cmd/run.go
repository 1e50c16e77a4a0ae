package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacdz/eduai/internal/app"
	"github.com/bacdz/eduai/internal/auth"
	"github.com/bacdz/eduai/internal/config"
	"github.com/bacdz/eduai/internal/curriculum"
	"github.com/bacdz/eduai/internal/extract"
	"github.com/bacdz/eduai/internal/generate"
	"github.com/bacdz/eduai/internal/gradebook"
	"github.com/bacdz/eduai/internal/i18n"
	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/nav"
	"github.com/bacdz/eduai/internal/screens"
	"github.com/bacdz/eduai/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the tutoring interface (same as running eduai with no command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp resolves configuration, opens the store, builds dependencies and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := i18n.Init(cfg.Lang); err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	catalog, err := curriculum.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}
	filter, err := curriculum.LoadFilter()
	if err != nil {
		return fmt.Errorf("load curriculum filter: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := &screens.Deps{
		Session:   nav.NewSession(),
		Identity:  &auth.Identity{},
		Catalog:   catalog,
		Filter:    filter,
		Auth:      auth.NewService(st.ProfileRepo()),
		Events:    st.EventRepo(),
		Gradebook: gradebook.NewService(st.GradebookRepo()),
		Extract:   extract.New(),
		Timeout:   cfg.LLM.Timeout,
	}

	if err := cfg.LLM.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generation features will be unavailable.")
	} else {
		provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize LLM provider: %w", err)
		}
		deps.Gen = generate.NewService(provider, generate.DefaultConfig())
	}

	return app.Run(deps)
}
