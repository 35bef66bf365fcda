package main

import (
	"github.com/aussiebroadwan/artistportal/internal/portal/app"
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var databaseFile string

// NewRootCmd creates the root command for the portal CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "portal",
		Short:        "Artist portal server",
		Long:         `Artist portal: login, profile management and royalty reports for artists.`,
		Version:      app.BuildVersion,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&databaseFile, "db", "", "SQLite database file (overrides PORTAL_DATABASE_FILE)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// loadConfig reads the environment and applies the global flags.
func loadConfig() app.Config {
	cfg := app.LoadConfig()
	if databaseFile != "" {
		cfg.DatabaseFile = databaseFile
	}
	return cfg
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(app.BuildVersion)
			return nil
		},
	}
}
