package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/gateway"
	"payment-reconciler/internal/report"
	"payment-reconciler/internal/retry"
	"payment-reconciler/internal/usecase"
)

var banner = strings.Repeat("=", 80)

func reconcile(ctx context.Context, out io.Writer, cfg *config.Config, log *zap.Logger) error {
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "PAYMENT RECONCILIATION")
	fmt.Fprintln(out, banner)

	offline := paymentsCSV != "" && ordersCSV != ""
	if !offline {
		if err := cfg.ValidateReconcile(); err != nil {
			log.Error("configuration incomplete", zap.Error(err))
			return err
		}
	}

	// --- Dependency Injection (Wiring the application) ---
	var (
		payments usecase.PaymentRepository
		orders   usecase.ImportedOrderRepository
	)
	if offline {
		csvRepo := gateway.NewCSVRecordRepository(paymentsCSV, ordersCSV)
		payments, orders = csvRepo, csvRepo
	} else {
		retryer := retry.NewExponentialBackOff(cfg.Retry)
		payments = gateway.NewPaymentAPIRepository(cfg.PaymentAPI, retryer, log)
		orders = gateway.NewOrderAPIRepository(cfg.OrderAPI, retryer, log)
	}

	var notifier usecase.Notifier
	if sendEmail {
		notifier = gateway.NewSMTPNotifier(cfg.Email)
	}
	uc := usecase.NewReconciliationUseCase(payments, orders, gateway.NewFileReportWriter(cfg.Report.Dir), notifier, log)

	days := cfg.PaymentAPI.DaysBack
	if daysBack >= 0 {
		days = daysBack
	}
	start, end := domain.DayWindow(time.Now(), days)

	// --- Execute the Usecase ---
	outcome, err := uc.Reconcile(ctx, usecase.RunParams{
		Query: domain.PaymentQuery{
			Start:    start,
			End:      end,
			Branches: branch,
			Gateways: cfg.PaymentAPI.Gateways,
			Statuses: cfg.PaymentAPI.Statuses,
			PageSize: cfg.PaymentAPI.PageSize,
		},
		Branch:       branch,
		WriteReports: !noReports,
		Notify:       sendEmail,
	})
	if err != nil {
		fmt.Fprintf(out, "Reconciliation failed: %v\n", err)
		return err
	}

	// --- Present the Output ---
	if outcome.Result.TotalPayments == 0 {
		fmt.Fprintln(out, "No payments found for the period.")
		return nil
	}

	fmt.Fprintln(out, banner)
	fmt.Fprintf(out, "RESULT: %s\n", outcome.Result.Summary())
	fmt.Fprintln(out, banner)

	if outcome.Result.TotalRejected > 0 {
		fmt.Fprintln(out)
		report.WriteRejectedTable(out, outcome.Result)
		fmt.Fprintf(out, "Pending amount: %s\n", outcome.PendingAmount.StringFixed(2))
	}

	for _, p := range outcome.ReportPaths {
		fmt.Fprintf(out, "Report saved to: %s\n", p)
	}

	fmt.Fprintln(out, "\nSummary by branch:")
	report.WriteBranchSummary(out, outcome.Branches)

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "Done.")
	return nil
}
