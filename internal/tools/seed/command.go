package seed

import (
	"Inventory/internal/config"
	"Inventory/internal/repo"
	"Inventory/internal/service"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	envFile string
	dsn     string
}

// DemoItems — стартовый набор позиций для пустого склада.
var DemoItems = []service.ItemInput{
	{Name: "USB-C cable 1m", Description: "Braided, 60W", Price: 9.99, Quantity: 120},
	{Name: "Wireless mouse", Description: "2.4 GHz, AA battery", Price: 24.50, Quantity: 35},
	{Name: "Mechanical keyboard", Description: "87 keys, brown switches", Price: 89.00, Quantity: 12},
	{Name: "27\" monitor", Description: "1440p IPS", Price: 299.00, Quantity: 4},
	{Name: "Laptop stand", Description: "Aluminium, adjustable", Price: 39.90, Quantity: 0},
}

// NewRootCommand собирает CLI seed с подкомандами apply и dry-run.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Load demo inventory items", SilenceUsage: true}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "database DSN (overrides DATABASE_URI)")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand())
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Create demo items, skipping names that already exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv(opts.envFile)
			if opts.dsn != "" {
				cfg.DatabaseDSN = opts.dsn
			}

			db, err := repo.InitDB(cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close(db) }()

			stats, err := repo.NewStatsRepository(db)
			if err != nil {
				return err
			}
			svc := service.NewItemService(repo.NewItemRepository(db), stats, zap.NewNop().Sugar())

			created, skipped := 0, 0
			for _, in := range DemoItems {
				_, err := svc.Create(cmd.Context(), in)
				switch {
				case err == nil:
					created++
				case errors.Is(err, service.ErrConstraintViolation):
					skipped++
				default:
					return fmt.Errorf("seed %q: %w", in.Name, err)
				}
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %d, skipped %d\n", created, skipped)
			return err
		},
	}
}

func newDryRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show which items apply would create",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printItems(cmd.OutOrStdout())
		},
	}
}

func printItems(w io.Writer) error {
	for _, in := range DemoItems {
		if _, err := fmt.Fprintf(w, "would create %s price=%.2f quantity=%d\n", in.Name, in.Price, in.Quantity); err != nil {
			return err
		}
	}
	return nil
}
