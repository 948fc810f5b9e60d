package domain

import "time"

// PaymentQuery narrows the payments requested from the payment API.
type PaymentQuery struct {
	Start    time.Time
	End      time.Time
	Branches string
	Gateways string
	Statuses string
	PageSize int
}

// DayWindow returns the UTC bounds of the day daysBack days before now.
func DayWindow(now time.Time, daysBack int) (time.Time, time.Time) {
	day := now.UTC().AddDate(0, 0, -daysBack)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
