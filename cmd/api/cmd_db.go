package main

import (
	"fmt"

	"restaurant/internal/infra/db"

	"github.com/spf13/cobra"
)

// restaurant-api migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, gdb, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close(gdb)

		if err := db.Migrate(cmd.Context(), gdb); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

var importFile string

// restaurant-api import-sql --file restaurant_db.sql
var importSQLCmd = &cobra.Command{
	Use:   "import-sql",
	Short: "Run a SQL provisioning script against the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return fmt.Errorf("--file is required")
		}
		_, log, gdb, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close(gdb)

		if err := db.ImportSQL(cmd.Context(), gdb, importFile); err != nil {
			return err
		}
		log.WithField("file", importFile).Info("sql imported")
		return nil
	},
}

func init() {
	importSQLCmd.Flags().StringVarP(&importFile, "file", "f", "restaurant_db.sql", "SQL file to execute")
}
