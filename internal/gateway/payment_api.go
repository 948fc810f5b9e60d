package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/retry"
)

const paymentAPITimeLayout = "2006-01-02T15:04:05.000Z"

// PaymentAPIRepository fetches processed payments from the payment API.
type PaymentAPIRepository struct {
	http     *requestWrapper
	url      string
	token    string
	maxPages int
	logger   *zap.Logger
}

// NewPaymentAPIRepository creates a new repository instance.
func NewPaymentAPIRepository(cfg config.PaymentAPIConfig, retryer retry.Retryer, logger *zap.Logger) *PaymentAPIRepository {
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}
	return &PaymentAPIRepository{
		http:     newRequestWrapper(cfg.Timeout, retryer, logger),
		url:      cfg.URL,
		token:    domain.CleanToken(cfg.Token),
		maxPages: maxPages,
		logger:   logger,
	}
}

type paymentPage struct {
	Data []domain.Record `json:"data"`
}

// GetPayments fetches every page of payments matching query.
func (r *PaymentAPIRepository) GetPayments(ctx context.Context, query domain.PaymentQuery) ([]domain.Payment, error) {
	var payments []domain.Payment

	for page := 1; page <= r.maxPages; page++ {
		records, err := r.getPage(ctx, query, page)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch payments page %d: %w", page, err)
		}
		payments = append(payments, domain.PaymentsFromRecords(records)...)

		if query.PageSize <= 0 || len(records) < query.PageSize {
			return payments, nil
		}
	}

	r.logger.Warn("payment page limit reached", zap.Int("max_pages", r.maxPages))
	return payments, nil
}

func (r *PaymentAPIRepository) getPage(ctx context.Context, query domain.PaymentQuery, page int) ([]domain.Record, error) {
	res, err := r.http.do(ctx, http.MethodGet, r.url, func(req *resty.Request) *resty.Request {
		return req.
			SetAuthToken(r.token).
			SetHeader("Accept", "application/json, text/plain, */*").
			SetHeader("Accept-Language", "pt-BR,pt;q=0.9").
			SetQueryParams(paymentQueryParams(query, page))
	})
	if err != nil {
		return nil, err
	}
	if err := checkStatus(res); err != nil {
		return nil, err
	}

	var body paymentPage
	dec := json.NewDecoder(bytes.NewReader(res.Body()))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return body.Data, nil
}

func paymentQueryParams(query domain.PaymentQuery, page int) map[string]string {
	return map[string]string{
		"Pagina":           strconv.Itoa(page),
		"ItensPorPagina":   strconv.Itoa(query.PageSize),
		"CampoOrdem":       "dtIncluido",
		"TipoOrdemAsc":     "false",
		"dataInicio":       formatPaymentTime(query.Start),
		"dataFim":          formatPaymentTime(query.End),
		"filialId":         "0",
		"statusPagamento":  "0",
		"ambiente":         "1",
		"nomeCliente":      "",
		"tokenId":          "0",
		"adquirente":       "0",
		"paginar":          "true",
		"filiais":          query.Branches,
		"gateways":         query.Gateways,
		"statusPagamentos": query.Statuses,
		"filtroAvancado":   "",
	}
}

func formatPaymentTime(t time.Time) string {
	return t.UTC().Format(paymentAPITimeLayout)
}
