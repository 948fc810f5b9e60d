package usecase

import "payment-reconciler/internal/domain"

// GroupByBranch aggregates a result per branch code in a single pass.
// Rejected details keep the original payment order.
func GroupByBranch(result *domain.ReconciliationResult) domain.BranchSummaries {
	groups := make(domain.BranchSummaries)
	if result == nil {
		return groups
	}

	for _, item := range result.Items {
		summary, ok := groups[item.BranchCode]
		if !ok {
			summary = &domain.BranchSummary{RejectedDetails: []domain.RejectedOrder{}}
			groups[item.BranchCode] = summary
		}

		summary.Total++
		if item.Status == domain.StatusIntegrated {
			summary.Integrated++
			continue
		}
		summary.Rejected++
		summary.RejectedDetails = append(summary.RejectedDetails, domain.RejectedOrder{
			OrderNumber: item.OrderNumber,
			Customer:    item.Customer,
		})
	}

	return groups
}
