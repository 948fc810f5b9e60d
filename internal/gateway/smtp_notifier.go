package gateway

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/report"
)

// sendMailFunc matches smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier mails the text report to the configured recipients.
type SMTPNotifier struct {
	cfg      config.EmailConfig
	sendMail sendMailFunc
}

func NewSMTPNotifier(cfg config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, sendMail: smtp.SendMail}
}

// Notify sends the report. smtp.SendMail upgrades to STARTTLS when the
// server offers it.
func (n *SMTPNotifier) Notify(ctx context.Context, result *domain.ReconciliationResult) error {
	if n.cfg.Username == "" || n.cfg.Password == "" {
		return fmt.Errorf("smtp: %w", domain.ErrMissingCredentials)
	}
	if len(n.cfg.To) == 0 {
		return fmt.Errorf("smtp: no recipients configured")
	}

	from := n.cfg.From
	if from == "" {
		from = n.cfg.Username
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)

	if err := n.sendMail(addr, auth, from, n.cfg.To, buildMessage(from, n.cfg.To, result)); err != nil {
		return fmt.Errorf("failed to send report mail: %w", err)
	}
	return nil
}

func buildMessage(from string, to []string, result *domain.ReconciliationResult) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&sb, "Subject: Payment Reconciliation Report - %s\r\n", result.ProcessedAt.Format("2006-01-02T15:04:05"))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(strings.ReplaceAll(report.RenderText(result), "\n", "\r\n"))
	return []byte(sb.String())
}
