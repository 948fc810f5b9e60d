package domain

import "strings"

// ImportedOrder is an order recorded in the order-management system.
type ImportedOrder struct {
	OrderNumber string  `json:"orderNumber"`
	Branch      *string `json:"branch"`
	Customer    *string `json:"customer"`
	ImportDate  *string `json:"importDate"`
	Status      *string `json:"status"`
}

// ImportedOrderFromRecord builds an ImportedOrder from a raw order record.
func ImportedOrderFromRecord(r Record) ImportedOrder {
	return ImportedOrder{
		OrderNumber: strings.TrimSpace(AsString(FirstTruthy(r, OrderNumberKeys, ""))),
		Branch:      firstTruthyString(r, BranchKeys),
		Customer:    firstTruthyString(r, CustomerKeys),
		ImportDate:  firstTruthyString(r, ImportDateKeys),
		Status:      firstTruthyString(r, OrderStatusKeys),
	}
}

// ImportedOrdersFromRecords converts every record, preserving order.
func ImportedOrdersFromRecords(records []Record) []ImportedOrder {
	orders := make([]ImportedOrder, 0, len(records))
	for _, r := range records {
		orders = append(orders, ImportedOrderFromRecord(r))
	}
	return orders
}

// PaymentsFromRecords converts every record, preserving order.
func PaymentsFromRecords(records []Record) []Payment {
	payments := make([]Payment, 0, len(records))
	for _, r := range records {
		payments = append(payments, PaymentFromRecord(r))
	}
	return payments
}
