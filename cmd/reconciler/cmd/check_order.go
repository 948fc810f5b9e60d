package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"payment-reconciler/internal/gateway"
	"payment-reconciler/internal/retry"
)

var checkOrderCmd = &cobra.Command{
	Use:     "check-order <order-number>",
	Short:   "Check whether an order exists in the order system",
	Example: "reconciler check-order 1234567",
	Args:    cobra.ExactArgs(1),
	RunE:    checkOrder,
}

func checkOrder(ccmd *cobra.Command, args []string) error {
	cfg, log, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cfg.ValidateOrderAPI(); err != nil {
		log.Error("configuration incomplete", zap.Error(err))
		return err
	}

	repo := gateway.NewOrderAPIRepository(cfg.OrderAPI, retry.NewExponentialBackOff(cfg.Retry), log)
	exists, err := repo.OrderExists(ccmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("could not check order %s: %w", args[0], err)
	}

	if !exists {
		fmt.Fprintf(ccmd.OutOrStdout(), "Order %s not found in the order system\n", args[0])
		return fmt.Errorf("order %s not found", args[0])
	}
	fmt.Fprintf(ccmd.OutOrStdout(), "Order %s found in the order system\n", args[0])
	return nil
}
