package cmd

import (
	"fmt"
	"os"

	"collection-tracker/core/config"
	"collection-tracker/core/database"
	"collection-tracker/core/logger"
	"collection-tracker/feature/collection/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the database schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Applies the schema for users, categories, set types, sets, memberships and items.`,
	Run: func(cmd *cobra.Command, args []string) {
		runMigrate()
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}

	tables := []string{"users", "categories", "set_types", "sets", "memberships", "items"}
	if missing := database.MissingTables(db, tables...); len(missing) > 0 {
		logg.Info("Creating tables", zap.Strings("tables", missing))
	}

	if err := database.Migrate(db, models.All()...); err != nil {
		logg.Fatal("Migration failed", zap.Error(err))
	}
	logg.Info("Schema up to date")
}
