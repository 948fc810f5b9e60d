package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/logger"
)

// rootCmd runs the full reconciliation when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "reconciler",
	Short: "Reconcile processed payments against orders imported into the order system",
	Example: `  reconciler                 # full reconciliation for today
  reconciler --days 1        # reconcile yesterday
  reconciler --token         # only refresh the authentication token
  reconciler check-order 123 # check a single order in the order system`,
	SilenceUsage: true,
	RunE:         runRoot,
}

var (
	configPath  string
	tokenOnly   bool
	daysBack    int
	branch      string
	paymentsCSV string
	ordersCSV   string
	noReports   bool
	sendEmail   bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yaml or ./config.yaml)")

	rootCmd.Flags().BoolVar(&tokenOnly, "token", false, "only refresh the authentication token")
	rootCmd.Flags().IntVarP(&daysBack, "days", "d", -1, "days back from today to reconcile (default from config)")
	rootCmd.Flags().StringVarP(&branch, "branch", "b", "", "reconcile a single branch code")
	rootCmd.Flags().StringVar(&paymentsCSV, "payments-csv", "", "read payments from a CSV export instead of the payment API")
	rootCmd.Flags().StringVar(&ordersCSV, "orders-csv", "", "read imported orders from a CSV export instead of the order API")
	rootCmd.Flags().BoolVar(&noReports, "no-reports", false, "do not write JSON/text report files")
	rootCmd.Flags().BoolVar(&sendEmail, "email", false, "mail the text report to the configured recipients")
	rootCmd.MarkFlagsRequiredTogether("payments-csv", "orders-csv")

	rootCmd.AddCommand(checkOrderCmd)
}

func runRoot(ccmd *cobra.Command, args []string) error {
	cfg, log, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if tokenOnly {
		return refreshToken(ccmd.Context(), ccmd.OutOrStdout(), cfg, log)
	}
	return reconcile(ccmd.Context(), ccmd.OutOrStdout(), cfg, log)
}

func setup() (*config.Config, *zap.Logger, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log, cleanup, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, cleanup, nil
}
