package main

import (
	"github.com/spf13/cobra"

	"github.com/Govind-619/OrderLadder/config"
	"github.com/Govind-619/OrderLadder/utils"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the ledger tables and seed the order counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := utils.InitLogger(cfg.LogDir, cfg.LogDebug); err != nil {
				return err
			}
			defer utils.SyncLogger()

			db, err := config.InitDB(cfg)
			if err != nil {
				utils.LogError("Failed to connect: %v", err)
				return err
			}
			if err := config.Migrate(db); err != nil {
				utils.LogError("Migration failed: %v", err)
				return err
			}
			utils.LogInfo("Migration complete")
			return nil
		},
	}
}
