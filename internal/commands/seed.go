package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbourn/go-games-backend/internal/repo"
	"github.com/tbourn/go-games-backend/internal/seed"
	"github.com/tbourn/go-games-backend/internal/sysutil"
)

// SeedCmd replaces the store contents with a bundled dataset.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the store and load a bundled dataset",
		Long:  `Migrates the schema, deletes every category, user, review and comment, then inserts the chosen dataset in one transaction. The dataset defaults to SEED_DATASET.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flag, _ := cmd.Flags().GetString("dataset")
			name := sysutil.FirstNonEmpty(flag, cfg.Seed.Dataset)

			ds, err := seed.ByName(name)
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := seed.Run(cmd.Context(), store.DB, ds); err != nil {
				return fmt.Errorf("seed %s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %q: %d categories, %d users, %d reviews, %d comments\n",
				name, len(ds.Categories), len(ds.Users), len(ds.Reviews), len(ds.Comments))
			return nil
		},
	}
	cmd.Flags().String("dataset", "", "dataset to load (test|development)")
	return cmd
}

// MigrateCmd creates or updates the schema without touching rows.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := repo.AutoMigrate(store.DB.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}
