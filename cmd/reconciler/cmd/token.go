package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/gateway"
	"payment-reconciler/internal/usecase"
)

func refreshToken(ctx context.Context, out io.Writer, cfg *config.Config, log *zap.Logger) error {
	if err := cfg.ValidateLogin(); err != nil {
		log.Error("configuration incomplete", zap.Error(err))
		return err
	}

	started := time.Now()
	uc := usecase.NewTokenUseCase(
		gateway.NewBrowserLogin(cfg.Login, log),
		gateway.NewEnvTokenStore(cfg.Token.EnvPath, cfg.Token.EnvKey),
		log,
	)

	if _, err := uc.Refresh(ctx); err != nil {
		fmt.Fprintf(out, "Failed to refresh token: %v\n", err)
		return err
	}

	fmt.Fprintf(out, "Token refreshed in %.2fs (saved to %s as %s)\n",
		time.Since(started).Seconds(), cfg.Token.EnvPath, cfg.Token.EnvKey)
	return nil
}
