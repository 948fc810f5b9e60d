package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/retry"
)

const (
	authBearer = "Bearer"
	authBasic  = "Basic"
)

// OrderAPIRepository fetches imported orders from the order-management API.
type OrderAPIRepository struct {
	http    *requestWrapper
	baseURL string
	token   string
	logger  *zap.Logger

	mu       sync.Mutex
	authType string
}

// NewOrderAPIRepository creates a new repository instance.
func NewOrderAPIRepository(cfg config.OrderAPIConfig, retryer retry.Retryer, logger *zap.Logger) *OrderAPIRepository {
	authType := cfg.AuthType
	if authType == "" {
		authType = authBearer
	}
	return &OrderAPIRepository{
		http:     newRequestWrapper(cfg.Timeout, retryer, logger),
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		token:    domain.CleanToken(cfg.Token),
		logger:   logger,
		authType: authType,
	}
}

// GetImportedOrders fetches every order imported today. A 401 under the
// Bearer scheme switches the client to Basic and retries once.
func (r *OrderAPIRepository) GetImportedOrders(ctx context.Context) ([]domain.ImportedOrder, error) {
	endpoint := r.baseURL + "/imported"

	res, err := r.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() == http.StatusUnauthorized && r.switchToBasic() {
		r.logger.Info("order API rejected bearer auth, retrying with basic")
		if res, err = r.get(ctx, endpoint); err != nil {
			return nil, err
		}
	}
	if err := checkStatus(res); err != nil {
		return nil, fmt.Errorf("failed to fetch imported orders: %w", err)
	}

	records, err := decodeOrderRecords(res.Body())
	if err != nil {
		return nil, err
	}
	return domain.ImportedOrdersFromRecords(records), nil
}

// GetImportedOrdersByBranch fetches the imported orders of a single branch.
func (r *OrderAPIRepository) GetImportedOrdersByBranch(ctx context.Context, branch string) ([]domain.ImportedOrder, error) {
	res, err := r.get(ctx, r.baseURL+"/imported/filial/"+url.PathEscape(branch))
	if err != nil {
		return nil, err
	}
	if err := checkStatus(res); err != nil {
		return nil, fmt.Errorf("failed to fetch imported orders of branch %s: %w", branch, err)
	}

	records, err := decodeOrderRecords(res.Body())
	if err != nil {
		return nil, err
	}
	return domain.ImportedOrdersFromRecords(records), nil
}

// OrderExists reports whether the order system knows orderNumber.
func (r *OrderAPIRepository) OrderExists(ctx context.Context, orderNumber string) (bool, error) {
	res, err := r.http.do(ctx, http.MethodHead, r.baseURL+"/items/"+url.PathEscape(orderNumber), r.authorize)
	if err != nil {
		return false, err
	}
	return res.StatusCode() == http.StatusOK, nil
}

func (r *OrderAPIRepository) get(ctx context.Context, endpoint string) (*resty.Response, error) {
	return r.http.do(ctx, http.MethodGet, endpoint, r.authorize)
}

func (r *OrderAPIRepository) authorize(req *resty.Request) *resty.Request {
	r.mu.Lock()
	authType := r.authType
	r.mu.Unlock()

	return req.
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", authType+" "+r.token)
}

func (r *OrderAPIRepository) switchToBasic() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.authType != authBearer {
		return false
	}
	r.authType = authBasic
	return true
}

// decodeOrderRecords accepts a bare list or an object wrapping the list in
// "data", "orders" or "items".
func decodeOrderRecords(body []byte) ([]domain.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode imported orders: %w", err)
	}

	switch v := raw.(type) {
	case []any:
		return toRecords(v), nil
	case map[string]any:
		for _, key := range []string{"data", "orders", "items"} {
			if list, ok := v[key]; ok {
				items, ok := list.([]any)
				if !ok {
					return nil, nil
				}
				return toRecords(items), nil
			}
		}
		return nil, nil
	case nil:
		return nil, nil
	}
	return nil, errors.New("failed to decode imported orders: unexpected payload shape")
}

func toRecords(items []any) []domain.Record {
	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, domain.Record(m))
		}
	}
	return records
}
