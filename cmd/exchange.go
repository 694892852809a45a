package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"collection-tracker/core/config"
	"collection-tracker/core/database"
	"collection-tracker/core/logger"
	"collection-tracker/core/utils"
	"collection-tracker/feature/exchange"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exchangeSetID int

// exchangeCmd runs an exchange scan from the command line.
var exchangeCmd = &cobra.Command{
	Use:   "exchange [userId]",
	Short: "Run an exchange scan for a user",
	Long: `Scans for possible exchanges and prints the result as JSON.
Without --set the scan covers every shared set; with --set only that set.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExchangeScan(cmd.Context(), utils.ToInt(args[0]))
	},
}

func init() {
	exchangeCmd.Flags().IntVar(&exchangeSetID, "set", 0, "restrict the scan to one set id")
	RootCmd.AddCommand(exchangeCmd)
}

func runExchangeScan(ctx context.Context, userID int) {
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

	svc := exchange.NewService(exchange.NewGormSource(db), logg)

	var groups []exchange.Group
	if exchangeSetID > 0 {
		groups = svc.FindSetExchanges(ctx, exchangeSetID, userID)
	} else {
		groups = svc.FindGlobalExchanges(ctx, userID)
	}

	out, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		logg.Fatal("Encoding result failed", zap.Error(err))
	}
	fmt.Println(string(out))

	if len(groups) == 0 {
		fmt.Println("No exchanges found.")
	}
}
