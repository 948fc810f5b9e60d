package usecase

import (
	"context"

	"payment-reconciler/internal/domain"
)

// PaymentRepository fetches processed payments.
// The usecase layer depends on these interfaces, not on concrete implementations.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go -package=mock_usecase
type PaymentRepository interface {
	GetPayments(ctx context.Context, query domain.PaymentQuery) ([]domain.Payment, error)
}

// ImportedOrderRepository fetches orders already imported into the order system.
type ImportedOrderRepository interface {
	GetImportedOrders(ctx context.Context) ([]domain.ImportedOrder, error)
	GetImportedOrdersByBranch(ctx context.Context, branch string) ([]domain.ImportedOrder, error)
}

// ReportWriter persists a reconciliation result and returns the written locations.
type ReportWriter interface {
	WriteReports(ctx context.Context, result *domain.ReconciliationResult) ([]string, error)
}

// Notifier delivers a reconciliation result to people.
type Notifier interface {
	Notify(ctx context.Context, result *domain.ReconciliationResult) error
}

// LoginAutomator signs into the web application and returns the raw token it exposes.
type LoginAutomator interface {
	Login(ctx context.Context) (string, error)
}

// TokenStore persists an authentication token for later runs.
type TokenStore interface {
	SaveToken(ctx context.Context, token string) error
}
