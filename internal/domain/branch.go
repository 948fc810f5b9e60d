package domain

import "slices"

// RejectedOrder identifies a rejected payment within a branch summary.
type RejectedOrder struct {
	OrderNumber string `json:"orderNumber"`
	Customer    string `json:"customer"`
}

// BranchSummary holds per-branch reconciliation statistics.
// Integrated + Rejected == Total.
type BranchSummary struct {
	Total           int             `json:"total"`
	Integrated      int             `json:"integrated"`
	Rejected        int             `json:"rejected"`
	RejectedDetails []RejectedOrder `json:"rejectedDetails"`
}

// IntegrationRate is the integrated share of the branch, in percent.
func (b *BranchSummary) IntegrationRate() float64 {
	if b.Total == 0 {
		return 0
	}
	return percentage(b.Integrated, b.Total, 1)
}

// BranchSummaries maps a branch code to its summary.
type BranchSummaries map[string]*BranchSummary

// Codes returns the branch codes in lexicographic order.
func (s BranchSummaries) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
