package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/skillforge/internal/advisor"
	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/llm"
	"github.com/abhisek/skillforge/internal/store"
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

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Coaching will use built-in advice.")
	}
	opts.HasLLM = provider != nil
	opts.Coach = advisor.NewService(provider, advisor.DefaultConfig())

	return app.Run(opts)
}
