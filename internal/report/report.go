// Package report renders reconciliation results for people and files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"payment-reconciler/internal/domain"
)

const (
	ruleWidth          = 80
	consoleCustomerMax = 30
	textCustomerMax    = 40
	branchDetailMax    = 5
	notAvailable       = "N/A"
)

var rule = strings.Repeat("=", ruleWidth)
var thinRule = strings.Repeat("-", ruleWidth)

// JSON returns the indented JSON projection of result.
func JSON(result *domain.ReconciliationResult) ([]byte, error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return b, nil
}

// RenderText renders the full text report.
func RenderText(result *domain.ReconciliationResult) string {
	var sb strings.Builder

	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "PAYMENT RECONCILIATION REPORT")
	fmt.Fprintf(&sb, "Date: %s\n", processedAt(result))
	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb)

	fmt.Fprintln(&sb, "SUMMARY:")
	fmt.Fprintf(&sb, "  Total payments: %d\n", result.TotalPayments)
	fmt.Fprintf(&sb, "  Integrated: %d\n", result.TotalIntegrated)
	fmt.Fprintf(&sb, "  Rejected: %d\n", result.TotalRejected)
	fmt.Fprintf(&sb, "  Integration rate: %.2f%%\n", result.IntegrationPercentage())
	fmt.Fprintln(&sb)

	if rejected := result.RejectedItems(); len(rejected) > 0 {
		fmt.Fprintln(&sb, "REJECTED ORDERS (NOT FOUND IN THE ORDER SYSTEM):")
		fmt.Fprintln(&sb, thinRule)
		writeRow(&sb, "BRANCH", "ORDER", "CUSTOMER", textCustomerMax)
		fmt.Fprintln(&sb, thinRule)
		for _, item := range rejected {
			writeRow(&sb, item.BranchCode, item.OrderNumber, customer(item.Customer, textCustomerMax), textCustomerMax)
		}
		fmt.Fprintln(&sb, thinRule)
	}

	fmt.Fprintln(&sb)
	sb.WriteString(rule)
	return sb.String()
}

// WriteRejectedTable prints the rejected orders as a console table.
func WriteRejectedTable(w io.Writer, result *domain.ReconciliationResult) {
	rejected := result.RejectedItems()
	if len(rejected) == 0 {
		fmt.Fprintln(w, "No rejected orders found.")
		return
	}

	fmt.Fprintf(w, "REJECTED ORDERS - %s\n", processedAt(result))
	fmt.Fprintln(w, rule)
	writeRow(w, "BRANCH", "ORDER", "CUSTOMER", consoleCustomerMax)
	fmt.Fprintln(w, thinRule)
	for _, item := range rejected {
		writeRow(w, item.BranchCode, item.OrderNumber, customer(item.Customer, consoleCustomerMax), consoleCustomerMax)
	}
	fmt.Fprintln(w, thinRule)
	fmt.Fprintf(w, "Total rejected: %d\n", len(rejected))
}

// WriteBranchSummary prints one line per branch in branch code order.
// Rejected orders are listed for branches with only a few of them.
func WriteBranchSummary(w io.Writer, groups domain.BranchSummaries) {
	for _, code := range groups.Codes() {
		s := groups[code]
		fmt.Fprintf(w, "  Branch %s: %d total | %d integrated | %d rejected | %.1f%%\n",
			code, s.Total, s.Integrated, s.Rejected, s.IntegrationRate())

		if len(s.RejectedDetails) > 0 && len(s.RejectedDetails) <= branchDetailMax {
			for _, d := range s.RejectedDetails {
				fmt.Fprintf(w, "     └─ %s: %s\n", d.OrderNumber, Truncate(d.Customer, textCustomerMax))
			}
		}
	}
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func customer(name string, max int) string {
	if name == "" {
		return notAvailable
	}
	return Truncate(name, max)
}

func writeRow(w io.Writer, branch, order, customer string, customerWidth int) {
	fmt.Fprintf(w, "%-8s | %-15s | %-*s\n", branch, order, customerWidth, customer)
}

func processedAt(result *domain.ReconciliationResult) string {
	return result.ProcessedAt.Format("2006-01-02T15:04:05")
}
