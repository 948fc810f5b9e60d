package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"payment-reconciler/internal/config"
	"payment-reconciler/internal/domain"
)

func newOrderRepo(url, authType string) *OrderAPIRepository {
	return NewOrderAPIRepository(config.OrderAPIConfig{
		URL:      url + "/",
		Token:    "secret",
		AuthType: authType,
		Timeout:  5 * time.Second,
	}, testRetryer(), zap.NewNop())
}

func TestOrderAPIRepository_GetImportedOrders_Envelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "bare list", body: `[{"numpedrca":"100"},{"NUMPEDRCA":200}]`, want: []string{"100", "200"}},
		{name: "data envelope", body: `{"data":[{"numPedido":"300"}]}`, want: []string{"300"}},
		{name: "orders envelope", body: `{"orders":[{"codigoPedidoMaxima":"400"}]}`, want: []string{"400"}},
		{name: "items envelope", body: `{"items":[{"numpedrca":" 500 "}]}`, want: []string{"500"}},
		{name: "null data", body: `{"data":null}`, want: []string{}},
		{name: "unknown envelope", body: `{"result":[]}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/imported", r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			orders, err := newOrderRepo(server.URL, "").GetImportedOrders(context.Background())
			assert.NoError(t, err)

			got := make([]string, 0, len(orders))
			for _, o := range orders {
				got = append(got, o.OrderNumber)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderAPIRepository_GetImportedOrders_BasicFallback(t *testing.T) {
	var (
		mu      sync.Mutex
		schemes []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		mu.Lock()
		schemes = append(schemes, auth)
		mu.Unlock()
		if auth != "Basic secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[{"numpedrca":"1"}]`))
	}))
	defer server.Close()

	repo := newOrderRepo(server.URL, "Bearer")

	orders, err := repo.GetImportedOrders(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.ImportedOrder{{OrderNumber: "1"}}, orders)

	_, err = repo.GetImportedOrders(context.Background())
	assert.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer secret", "Basic secret", "Basic secret"}, schemes)
}

func TestOrderAPIRepository_GetImportedOrders_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newOrderRepo(server.URL, "Basic").GetImportedOrders(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderAPIRepository_GetImportedOrdersByBranch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/imported/filial/10", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"numpedrca":"7","filial":"10"}]}`))
	}))
	defer server.Close()

	orders, err := newOrderRepo(server.URL, "Bearer").GetImportedOrdersByBranch(context.Background(), "10")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "7", orders[0].OrderNumber)
	assert.Equal(t, "10", *orders[0].Branch)
}

func TestOrderAPIRepository_OrderExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if r.URL.Path == "/items/123" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	repo := newOrderRepo(server.URL, "Bearer")

	ok, err := repo.OrderExists(context.Background(), "123")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.OrderExists(context.Background(), "999")
	assert.NoError(t, err)
	assert.False(t, ok)
}
