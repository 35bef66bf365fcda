package main

import (
	"fmt"

	"github.com/aussiebroadwan/artistportal/internal/portal/app"
	"github.com/aussiebroadwan/artistportal/internal/portal/domain"
	"github.com/aussiebroadwan/artistportal/internal/portal/service"
	"github.com/aussiebroadwan/artistportal/pkg/cryptox"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo artist accounts",
		Long: `Create the demo artists (alexj, sarahc) if they do not exist yet.
Existing accounts are left untouched, so running seed twice is harmless.`,
		RunE: runSeed,
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	cryptox.SetPepperPath(cfg.PepperFile)

	db, err := app.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	seeder := &service.SeedService{Store: db, Logger: app.NewLogger(cfg)}
	report, err := seeder.Seed(cmd.Context(), domain.DefaultSeedUsers())
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	cmd.Printf("Seeding complete: %d created, %d skipped\n", report.Created, report.Skipped)
	return nil
}
