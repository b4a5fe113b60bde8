package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahajm/quizdeck/internal/app"
	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/llm"
	"github.com/sahajm/quizdeck/internal/progress"
	"github.com/sahajm/quizdeck/internal/store"
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

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	progressService := progress.NewService(st.ProfileRepo(), rng)
	if _, err := progressService.Login(ctx, progress.ResolveIdentity()); err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		Progress: progressService,
		Events:   eventRepo,
		Rng:      rng,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation will be unavailable.")
	} else {
		opts.Generator = generator.New(provider, generator.DefaultConfig())
	}

	return app.Run(opts)
}
