package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/retry"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// requestWrapper sends requests through resty, logging each attempt and
// retrying transport failures and 5xx responses.
type requestWrapper struct {
	client  *resty.Client
	retryer retry.Retryer
	logger  *zap.Logger
}

func newRequestWrapper(timeout time.Duration, retryer retry.Retryer, logger *zap.Logger) *requestWrapper {
	if retryer == nil {
		retryer = retry.NoRetry{}
	}
	return &requestWrapper{
		client:  resty.New().SetTimeout(timeout).SetHeader("User-Agent", userAgent),
		retryer: retryer,
		logger:  logger,
	}
}

// do runs the request built by reqFunc. Responses outside 2xx are returned
// without error; callers decide how to treat them.
func (w *requestWrapper) do(ctx context.Context, method, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	logFields := []zap.Field{
		zap.String("url", url),
		zap.String("method", method),
	}

	var res *resty.Response
	err := w.retryer.Retry(ctx, func() error {
		startTime := time.Now()
		w.logger.Debug("send request", logFields...)

		req := w.client.R().SetContext(ctx)
		if reqFunc != nil {
			req = reqFunc(req)
		}

		var err error
		res, err = req.Execute(method, url)
		if err != nil {
			w.logger.Warn("request failed", append(logFields, zap.Error(err))...)
			if ctx.Err() != nil {
				return w.retryer.StopRetryWithErr(err)
			}
			return fmt.Errorf("failed send request: %w", err)
		}

		fields := append(logFields,
			zap.Int("status", res.StatusCode()),
			zap.Duration("elapsed", time.Since(startTime)),
		)
		if res.StatusCode() >= http.StatusInternalServerError {
			w.logger.Warn("server error", fields...)
			return fmt.Errorf("%w: %s", domain.ErrUnexpectedStatus, res.Status())
		}
		w.logger.Debug("received response", fields...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkStatus maps non-2xx responses to domain errors.
func checkStatus(res *resty.Response) error {
	switch {
	case res.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, res.Status())
	case res.StatusCode() < 200 || res.StatusCode() >= 300:
		return fmt.Errorf("%w: %s", domain.ErrUnexpectedStatus, res.Status())
	}
	return nil
}
