package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the outcome of matching a single payment.
type ReconciliationStatus string

const (
	StatusIntegrated ReconciliationStatus = "INTEGRATED"
	StatusRejected   ReconciliationStatus = "REJECTED"
)

// ItemDetail carries audit data for a reconciled payment. It plays no part in matching.
type ItemDetail struct {
	BranchName  string           `json:"branchName"`
	Amount      *decimal.Decimal `json:"amount"`
	Gateway     *string          `json:"gateway"`
	PaymentDate *string          `json:"paymentDate"`
}

// ReconciledItem is one payment after matching.
type ReconciledItem struct {
	BranchCode  string               `json:"branchCode"`
	OrderNumber string               `json:"orderNumber"`
	Customer    string               `json:"customer"`
	Status      ReconciliationStatus `json:"status"`
	Detail      ItemDetail           `json:"detail"`
}

// ReconciliationResult is the snapshot produced by one reconciliation pass.
// TotalIntegrated + TotalRejected == TotalPayments == len(Items).
type ReconciliationResult struct {
	ProcessedAt     time.Time
	TotalPayments   int
	TotalIntegrated int
	TotalRejected   int
	Items           []ReconciledItem
}

// IntegrationPercentage is the share of integrated payments rounded to two
// decimal places, or 0 when there are no payments.
func (r *ReconciliationResult) IntegrationPercentage() float64 {
	if r.TotalPayments == 0 {
		return 0
	}
	return percentage(r.TotalIntegrated, r.TotalPayments, 2)
}

// RejectedItems returns the rejected items in their original order.
func (r *ReconciliationResult) RejectedItems() []ReconciledItem {
	rejected := make([]ReconciledItem, 0, r.TotalRejected)
	for _, item := range r.Items {
		if item.Status == StatusRejected {
			rejected = append(rejected, item)
		}
	}
	return rejected
}

// Summary renders a one-line overview of the result.
func (r *ReconciliationResult) Summary() string {
	return fmt.Sprintf("Processed: %d | Integrated: %d | Rejected: %d | Rate: %s%%",
		r.TotalPayments, r.TotalIntegrated, r.TotalRejected,
		decimal.NewFromFloat(r.IntegrationPercentage()).StringFixed(2))
}

type reconciliationResultJSON struct {
	ProcessedAt           string           `json:"processedAt"`
	TotalPayments         int              `json:"totalPayments"`
	TotalIntegrated       int              `json:"totalIntegrated"`
	TotalRejected         int              `json:"totalRejected"`
	IntegrationPercentage float64          `json:"integrationPercentage"`
	Items                 []ReconciledItem `json:"items"`
}

// MarshalJSON projects the result into the report schema, including the
// derived integration percentage.
func (r ReconciliationResult) MarshalJSON() ([]byte, error) {
	items := r.Items
	if items == nil {
		items = []ReconciledItem{}
	}
	return json.Marshal(reconciliationResultJSON{
		ProcessedAt:           r.ProcessedAt.Format(time.RFC3339Nano),
		TotalPayments:         r.TotalPayments,
		TotalIntegrated:       r.TotalIntegrated,
		TotalRejected:         r.TotalRejected,
		IntegrationPercentage: r.IntegrationPercentage(),
		Items:                 items,
	})
}

func percentage(part, total, places int) float64 {
	// Ties round half to even.
	p := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		RoundBank(int32(places))
	return p.InexactFloat64()
}
