package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/usecase"
)

func TestGroupByBranch(t *testing.T) {
	payments := []domain.Payment{
		payment("10 - Loja", "100", "A"),
		payment("10 - Loja", "200", "B"),
	}
	result := usecase.Confront(payments, []domain.ImportedOrder{order("100")})

	groups := usecase.GroupByBranch(result)

	assert.Len(t, groups, 1)
	assert.Equal(t, &domain.BranchSummary{
		Total:           2,
		Integrated:      1,
		Rejected:        1,
		RejectedDetails: []domain.RejectedOrder{{OrderNumber: "200", Customer: "B"}},
	}, groups["10"])
}

func TestGroupByBranch_SumsToResultTotals(t *testing.T) {
	payments := []domain.Payment{
		payment("10 - Loja", "1", "A"),
		payment("20 - Centro", "2", "B"),
		payment("", "3", "C"),
		payment("20 - Centro", "4", "D"),
		payment("10 - Loja", "5", "E"),
		payment("", "6", "F"),
	}
	result := usecase.Confront(payments, []domain.ImportedOrder{order("1"), order("4"), order("6")})

	groups := usecase.GroupByBranch(result)

	var total, integrated, rejected int
	for _, s := range groups {
		assert.Equal(t, s.Total, s.Integrated+s.Rejected)
		total += s.Total
		integrated += s.Integrated
		rejected += s.Rejected
	}
	assert.Equal(t, result.TotalPayments, total)
	assert.Equal(t, result.TotalIntegrated, integrated)
	assert.Equal(t, result.TotalRejected, rejected)

	assert.Equal(t, []string{domain.DefaultBranchCode, "10", "20"}, groups.Codes())
	assert.Equal(t, []domain.RejectedOrder{{OrderNumber: "3", Customer: "C"}}, groups[domain.DefaultBranchCode].RejectedDetails)
	assert.Equal(t, []domain.RejectedOrder{
		{OrderNumber: "2", Customer: "B"},
	}, groups["20"].RejectedDetails)
	assert.Equal(t, []domain.RejectedOrder{
		{OrderNumber: "5", Customer: "E"},
	}, groups["10"].RejectedDetails)
}

func TestGroupByBranch_RejectedDetailsKeepPaymentOrder(t *testing.T) {
	payments := []domain.Payment{
		payment("10", "9", "Z"),
		payment("10", "1", "A"),
		payment("10", "5", "M"),
	}
	groups := usecase.GroupByBranch(usecase.Confront(payments, nil))

	assert.Equal(t, []domain.RejectedOrder{
		{OrderNumber: "9", Customer: "Z"},
		{OrderNumber: "1", Customer: "A"},
		{OrderNumber: "5", Customer: "M"},
	}, groups["10"].RejectedDetails)
}

func TestGroupByBranch_Empty(t *testing.T) {
	assert.Empty(t, usecase.GroupByBranch(usecase.Confront(nil, nil)))
	assert.Empty(t, usecase.GroupByBranch(nil))
}
