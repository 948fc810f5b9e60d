package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"payment-reconciler/internal/domain"
)

// TokenUseCase refreshes the bearer token used by the API gateways.
type TokenUseCase struct {
	login  LoginAutomator
	store  TokenStore
	logger *zap.Logger
}

func NewTokenUseCase(login LoginAutomator, store TokenStore, logger *zap.Logger) *TokenUseCase {
	return &TokenUseCase{login: login, store: store, logger: logger}
}

// Refresh logs in, cleans the scraped token and persists it.
func (uc *TokenUseCase) Refresh(ctx context.Context) (string, error) {
	started := time.Now()
	uc.logger.Info("starting token refresh")

	raw, err := uc.login.Login(ctx)
	if err != nil {
		uc.logger.Error("login failed", zap.Error(err))
		return "", fmt.Errorf("could not log in: %w", err)
	}

	token := domain.CleanToken(raw)
	if token == "" {
		uc.logger.Error("login returned an empty token")
		return "", domain.ErrTokenNotFound
	}

	if err := uc.store.SaveToken(ctx, token); err != nil {
		uc.logger.Error("failed to persist token", zap.Error(err))
		return "", fmt.Errorf("could not save token: %w", err)
	}

	uc.logger.Info("token refreshed", zap.Duration("elapsed", time.Since(started)))
	return token, nil
}
