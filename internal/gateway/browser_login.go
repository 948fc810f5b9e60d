package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
)

// tokenScript returns the first localStorage value whose key mentions "token".
const tokenScript = `Object.keys(localStorage)
	.filter(k => k.toLowerCase().includes('token'))
	.map(k => localStorage.getItem(k))[0] || ""`

// BrowserLogin signs into the web application with headless Chrome and
// reads the bearer token the application stores in localStorage.
type BrowserLogin struct {
	cfg    config.LoginConfig
	logger *zap.Logger
}

func NewBrowserLogin(cfg config.LoginConfig, logger *zap.Logger) *BrowserLogin {
	return &BrowserLogin{cfg: cfg, logger: logger}
}

// Login runs the login form and polls for the token.
func (b *BrowserLogin) Login(ctx context.Context) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.cfg.Headless),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		browserCtx, cancel = context.WithTimeout(browserCtx, b.cfg.Timeout)
		defer cancel()
	}

	b.logger.Info("opening login page", zap.String("url", b.cfg.URL), zap.Bool("headless", b.cfg.Headless))
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(b.cfg.URL),
		chromedp.WaitVisible(b.cfg.UserXPath, chromedp.BySearch),
		chromedp.SendKeys(b.cfg.UserXPath, b.cfg.User, chromedp.BySearch),
		chromedp.SendKeys(b.cfg.PasswordXPath, b.cfg.Password+kb.Enter, chromedp.BySearch),
	)
	if err != nil {
		return "", fmt.Errorf("failed to submit login form: %w", err)
	}

	return b.pollToken(browserCtx)
}

func (b *BrowserLogin) pollToken(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= b.cfg.PollAttempts; attempt++ {
		var token string
		if err := chromedp.Run(ctx, chromedp.Evaluate(tokenScript, &token)); err != nil {
			return "", fmt.Errorf("failed to read browser storage: %w", err)
		}
		if token != "" {
			b.logger.Info("token captured", zap.Int("attempt", attempt))
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(b.cfg.PollInterval):
		}
	}
	return "", domain.ErrTokenNotFound
}
