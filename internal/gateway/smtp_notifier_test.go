package gateway

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
)

func TestSMTPNotifier_Notify(t *testing.T) {
	result := &domain.ReconciliationResult{
		ProcessedAt:   time.Date(2026, 2, 9, 18, 30, 0, 0, time.Local),
		TotalPayments: 1,
		TotalRejected: 1,
		Items:         []domain.ReconciledItem{{BranchCode: "10", OrderNumber: "200", Customer: "B", Status: domain.StatusRejected}},
	}

	tests := []struct {
		name     string
		cfg      config.EmailConfig
		sendErr  error
		wantSent bool
		wantErr  error
	}{
		{
			name:     "sends the text report",
			cfg:      config.EmailConfig{Host: "smtp.example.com", Port: 587, Username: "bot@example.com", Password: "pw", To: []string{"ops@example.com", "fin@example.com"}},
			wantSent: true,
		},
		{
			name:    "missing credentials",
			cfg:     config.EmailConfig{Host: "smtp.example.com", Port: 587, To: []string{"ops@example.com"}},
			wantErr: domain.ErrMissingCredentials,
		},
		{
			name:     "smtp failure",
			cfg:      config.EmailConfig{Host: "smtp.example.com", Port: 587, Username: "bot@example.com", Password: "pw", To: []string{"ops@example.com"}},
			sendErr:  errors.New("535 authentication failed"),
			wantSent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				sent    bool
				gotAddr string
				gotFrom string
				gotTo   []string
				gotMsg  string
			)
			n := NewSMTPNotifier(tt.cfg)
			n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
				sent = true
				gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
				return tt.sendErr
			}

			err := n.Notify(context.Background(), result)
			assert.Equal(t, tt.wantSent, sent)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.sendErr != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "smtp.example.com:587", gotAddr)
				assert.Equal(t, "bot@example.com", gotFrom)
				assert.Equal(t, tt.cfg.To, gotTo)
				assert.Contains(t, gotMsg, "To: ops@example.com, fin@example.com\r\n")
				assert.Contains(t, gotMsg, "Subject: Payment Reconciliation Report - 2026-02-09T18:30:00\r\n")
				assert.Contains(t, gotMsg, "10       | 200")
			}
		})
	}
}
