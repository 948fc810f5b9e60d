package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"payment-reconciler/internal/domain"
)

// CSVRecordRepository reads payments and imported orders from CSV exports.
// The header row provides the record keys, so exports keep the API field names.
type CSVRecordRepository struct {
	paymentsPath string
	ordersPath   string
}

// NewCSVRecordRepository creates a new repository instance.
func NewCSVRecordRepository(paymentsPath, ordersPath string) *CSVRecordRepository {
	return &CSVRecordRepository{paymentsPath: paymentsPath, ordersPath: ordersPath}
}

// GetPayments reads the payments export. Exports already cover the period,
// so only the branch filter of query applies.
func (r *CSVRecordRepository) GetPayments(ctx context.Context, query domain.PaymentQuery) ([]domain.Payment, error) {
	records, err := readRecords(r.paymentsPath)
	if err != nil {
		return nil, err
	}

	payments := domain.PaymentsFromRecords(records)
	if query.Branches == "" {
		return payments, nil
	}

	wanted := make(map[string]bool)
	for _, b := range strings.Split(query.Branches, ",") {
		wanted[strings.TrimSpace(b)] = true
	}
	filtered := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if wanted[p.BranchCode] {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetImportedOrders reads the imported orders export.
func (r *CSVRecordRepository) GetImportedOrders(ctx context.Context) ([]domain.ImportedOrder, error) {
	records, err := readRecords(r.ordersPath)
	if err != nil {
		return nil, err
	}
	return domain.ImportedOrdersFromRecords(records), nil
}

// GetImportedOrdersByBranch reads the export and keeps the orders whose
// branch resolves to branch.
func (r *CSVRecordRepository) GetImportedOrdersByBranch(ctx context.Context, branch string) ([]domain.ImportedOrder, error) {
	orders, err := r.GetImportedOrders(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.ImportedOrder, 0, len(orders))
	for _, o := range orders {
		if o.Branch != nil && domain.BranchCodeFromName(*o.Branch) == branch {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func readRecords(path string) ([]domain.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	var records []domain.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		record := make(domain.Record, len(header))
		for i, key := range header {
			if i < len(row) && key != "" {
				record[key] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}
