package cli

import (
	"fmt"
	"log"

	"academy/internal/app"
	"academy/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// databaseURL holds the --database persistent flag value.
var databaseURL string

// Execute creates the root command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "academyctl",
		Short:         "Operate the academy site back end",
		Long:          "Maintenance commands for the academy back end: schema migration, admin accounts and demo data.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&databaseURL, "database", "", "database DSN (default is $DATABASE_URL)")

	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newSeedCmd())

	return cmd
}

// openApp loads configuration the same way the server does and opens a
// migrated database.
func openApp() (*app.App, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	return app.Open(cfg)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}
