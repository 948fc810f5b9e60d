package usecase

import (
	"strings"
	"time"

	"payment-reconciler/internal/domain"
)

// Confront classifies every payment as INTEGRATED when its order code is
// present among the imported order numbers, REJECTED otherwise.
// Items keep the input payment order. Duplicate imported numbers only
// establish presence; they are never consumed one-to-one.
func Confront(payments []domain.Payment, importedOrders []domain.ImportedOrder) *domain.ReconciliationResult {
	imported := importedSet(importedOrders)

	result := &domain.ReconciliationResult{
		ProcessedAt:   time.Now(),
		TotalPayments: len(payments),
		Items:         make([]domain.ReconciledItem, 0, len(payments)),
	}

	for _, p := range payments {
		orderNumber := strings.TrimSpace(p.OrderCode)

		status := domain.StatusRejected
		if _, ok := imported[orderNumber]; ok {
			status = domain.StatusIntegrated
			result.TotalIntegrated++
		} else {
			result.TotalRejected++
		}

		result.Items = append(result.Items, domain.ReconciledItem{
			BranchCode:  p.BranchCode,
			OrderNumber: orderNumber,
			Customer:    p.CustomerName,
			Status:      status,
			Detail: domain.ItemDetail{
				BranchName:  p.BranchName,
				Amount:      p.Amount,
				Gateway:     p.Gateway,
				PaymentDate: p.PaymentDate,
			},
		})
	}

	return result
}

// PendingAgainstImported returns the payments whose order code is missing
// from the imported orders, alongside the imported orders unchanged.
func PendingAgainstImported(payments []domain.Payment, importedOrders []domain.ImportedOrder) ([]domain.Payment, []domain.ImportedOrder) {
	imported := importedSet(importedOrders)

	pending := make([]domain.Payment, 0)
	for _, p := range payments {
		if _, ok := imported[strings.TrimSpace(p.OrderCode)]; !ok {
			pending = append(pending, p)
		}
	}
	return pending, importedOrders
}

func importedSet(orders []domain.ImportedOrder) map[string]struct{} {
	set := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		set[strings.TrimSpace(o.OrderNumber)] = struct{}{}
	}
	return set
}
