package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"payment-reconciler/internal/domain"
)

// RunParams controls a single reconciliation run.
type RunParams struct {
	Query        domain.PaymentQuery
	Branch       string
	WriteReports bool
	Notify       bool
}

// RunOutcome is everything a reconciliation run produced.
type RunOutcome struct {
	RunID         string
	Result        *domain.ReconciliationResult
	Branches      domain.BranchSummaries
	Pending       []domain.Payment
	PendingAmount decimal.Decimal
	ReportPaths   []string
}

// ReconciliationUseCase orchestrates fetch, reconciliation and reporting.
type ReconciliationUseCase struct {
	payments PaymentRepository
	orders   ImportedOrderRepository
	reports  ReportWriter
	notifier Notifier
	logger   *zap.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
// reports and notifier may be nil.
func NewReconciliationUseCase(payments PaymentRepository, orders ImportedOrderRepository, reports ReportWriter, notifier Notifier, logger *zap.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		payments: payments,
		orders:   orders,
		reports:  reports,
		notifier: notifier,
		logger:   logger,
	}
}

// Reconcile fetches both collections and confronts them. Any fetch failure
// aborts the run before reconciliation.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, params RunParams) (*RunOutcome, error) {
	runID := uuid.NewString()
	logger := uc.logger.With(zap.String("run_id", runID))
	started := time.Now()

	logger.Info("starting reconciliation",
		zap.Time("start", params.Query.Start),
		zap.Time("end", params.Query.End),
		zap.String("branch", params.Branch),
	)

	// Step 1: Data Ingestion
	var (
		payments []domain.Payment
		orders   []domain.ImportedOrder
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payments, err = uc.payments.GetPayments(gctx, params.Query)
		if err != nil {
			return fmt.Errorf("could not get payments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if params.Branch != "" {
			orders, err = uc.orders.GetImportedOrdersByBranch(gctx, params.Branch)
		} else {
			orders, err = uc.orders.GetImportedOrders(gctx)
		}
		if err != nil {
			return fmt.Errorf("could not get imported orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("fetch failed, aborting run", zap.Error(err))
		return nil, err
	}

	logger.Info("data fetched", zap.Int("payments", len(payments)), zap.Int("imported_orders", len(orders)))

	outcome := &RunOutcome{RunID: runID}
	if len(payments) == 0 {
		logger.Warn("no payments found for the period")
		outcome.Result = Confront(nil, orders)
		outcome.Branches = GroupByBranch(outcome.Result)
		return outcome, nil
	}

	// Step 2: Reconciliation
	outcome.Result = Confront(payments, orders)
	outcome.Branches = GroupByBranch(outcome.Result)
	outcome.Pending, _ = PendingAgainstImported(payments, orders)
	outcome.PendingAmount = sumAmounts(outcome.Pending)

	logger.Info("reconciliation finished",
		zap.Int("total", outcome.Result.TotalPayments),
		zap.Int("integrated", outcome.Result.TotalIntegrated),
		zap.Int("rejected", outcome.Result.TotalRejected),
		zap.Float64("integration_percentage", outcome.Result.IntegrationPercentage()),
		zap.String("pending_amount", outcome.PendingAmount.StringFixed(2)),
		zap.Int("branches", len(outcome.Branches)),
	)

	// Step 3: Reports and notification never fail the run.
	if params.WriteReports && uc.reports != nil {
		paths, err := uc.reports.WriteReports(ctx, outcome.Result)
		if err != nil {
			logger.Error("failed to write reports", zap.Error(err))
		}
		outcome.ReportPaths = paths
		for _, p := range paths {
			logger.Info("report saved", zap.String("path", p))
		}
	}

	if params.Notify && uc.notifier != nil {
		if err := uc.notifier.Notify(ctx, outcome.Result); err != nil {
			logger.Warn("notification not sent", zap.Error(err))
		} else {
			logger.Info("notification sent")
		}
	}

	logger.Info("run completed", zap.Duration("elapsed", time.Since(started)))
	return outcome, nil
}

func sumAmounts(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Amount != nil {
			total = total.Add(*p.Amount)
		}
	}
	return total
}
