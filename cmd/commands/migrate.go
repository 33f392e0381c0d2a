package commands

import (
	"github.com/spf13/cobra"

	"parth-agrotech/cmd/config"
	migration "parth-agrotech/cmd/database/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB(cfg)
		if err != nil {
			return err
		}
		return migration.Migrate(db)
	},
}
