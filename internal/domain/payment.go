package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultBranchCode is used when a payment carries no branch name.
const DefaultBranchCode = "00"

// Payment is a processed payment transaction from the payment API.
type Payment struct {
	BranchCode   string           `json:"branchCode"`
	BranchName   string           `json:"branchName"`
	CustomerName string           `json:"customerName"`
	OrderCode    string           `json:"orderCode"`
	PaymentDate  *string          `json:"paymentDate"`
	Amount       *decimal.Decimal `json:"amount"`
	Gateway      *string          `json:"gateway"`
	Status       *string          `json:"status"`
}

// PaymentFromRecord builds a Payment from a raw payment record.
// Missing or malformed fields resolve to their defaults.
func PaymentFromRecord(r Record) Payment {
	branchName := AsString(r[keyBranchName])

	return Payment{
		BranchCode:   BranchCodeFromName(branchName),
		BranchName:   branchName,
		CustomerName: AsString(r[keyCustomerName]),
		OrderCode:    orderCode(r),
		PaymentDate:  optionalString(r[keyPaymentDate]),
		Amount:       amount(r[keyAmount]),
		Gateway:      optionalString(r[keyGateway]),
		Status:       optionalString(r[keyPaymentStatus]),
	}
}

// BranchCodeFromName returns the part of a branch display name before the
// first dash ("10 - Loja" -> "10").
func BranchCodeFromName(name string) string {
	if name == "" {
		return DefaultBranchCode
	}
	code, _, _ := strings.Cut(name, "-")
	return strings.TrimSpace(code)
}

// orderCode prefers the nested order object over the top-level field.
func orderCode(r Record) string {
	if v, ok := r.Nested(keyOrder)[keyOrderCode]; ok && v != nil {
		return AsString(v)
	}
	return AsString(r[keyOrderCode])
}

func amount(v any) *decimal.Decimal {
	var (
		d   decimal.Decimal
		err error
	)
	switch t := v.(type) {
	case nil:
		return nil
	case json.Number:
		d, err = decimal.NewFromString(t.String())
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		d, err = decimal.NewFromString(strings.TrimSpace(t))
	case float64:
		d = decimal.NewFromFloat(t)
	case int:
		d = decimal.NewFromInt(int64(t))
	case int64:
		d = decimal.NewFromInt(t)
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return &d
}
