package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"order-manager/core/config"
	"order-manager/core/database"
	"order-manager/core/logger"
	"order-manager/feature/orders"
	"order-manager/feature/orders/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd reconciles an export file from disk without going through HTTP.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Reconcile an order export file against the database",
	Long: `Reads a JSON order export (an array of export rows) from disk and
reconciles it against the orders database in a single transaction, printing
the created/skipped counters.

Example:
  order-manager import march-orders.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}

	var rows []models.RawRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("export file must be a JSON array of export rows: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate orders schema: %w", err)
	}

	svc := orders.NewService(l, db)
	summary, err := svc.UploadRows(ctx, rows)
	if err != nil {
		return fmt.Errorf("import failed, nothing was written: %w", err)
	}

	l.Info("Import committed",
		zap.String("file", args[0]),
		zap.Int("new_orders", summary.NewOrders),
		zap.Int("new_sub_orders", summary.NewSubOrders),
		zap.Int("duplicate_sub_orders", summary.DuplicateSubOrders),
	)

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))
	return nil
}
