package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"payment-reconciler/internal/domain"
	"payment-reconciler/internal/usecase"
	mock_usecase "payment-reconciler/internal/usecase/mocks"
)

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	start, end := domain.DayWindow(time.Date(2026, 2, 9, 15, 0, 0, 0, time.UTC), 0)
	query := domain.PaymentQuery{Start: start, End: end, Gateways: "3", Statuses: "5", PageSize: 100}

	amountPayment := domain.PaymentFromRecord(domain.Record{
		"nomeFilial":         "20 - Centro",
		"codigoPedidoMaxima": "300",
		"nomeCliente":        "C",
		"valor":              "25.10",
	})

	tests := []struct {
		name          string
		params        usecase.RunParams
		payments      []domain.Payment
		orders        []domain.ImportedOrder
		paymentErr    error
		orderErr      error
		reportErr     error
		notifyErr     error
		expectReports bool
		expectNotify  bool
		wantErr       error
		wantTotal     int
		wantRejected  int
		wantPending   string
	}{
		{
			name:          "successful run writes reports and notifies",
			params:        usecase.RunParams{Query: query, WriteReports: true, Notify: true},
			payments:      []domain.Payment{payment("10 - Loja", "100", "A"), payment("10 - Loja", "200", "B"), amountPayment},
			orders:        []domain.ImportedOrder{order("100")},
			expectReports: true,
			expectNotify:  true,
			wantTotal:     3,
			wantRejected:  2,
			wantPending:   "25.10",
		},
		{
			name:          "report and notification failures do not fail the run",
			params:        usecase.RunParams{Query: query, WriteReports: true, Notify: true},
			payments:      []domain.Payment{payment("10 - Loja", "100", "A")},
			orders:        []domain.ImportedOrder{order("100")},
			reportErr:     errors.New("disk full"),
			notifyErr:     domain.ErrMissingCredentials,
			expectReports: true,
			expectNotify:  true,
			wantTotal:     1,
			wantPending:   "0.00",
		},
		{
			name:         "reports disabled",
			params:       usecase.RunParams{Query: query},
			payments:     []domain.Payment{payment("10 - Loja", "100", "A")},
			orders:       nil,
			wantTotal:    1,
			wantRejected: 1,
			wantPending:  "0.00",
		},
		{
			name:        "no payments short-circuits",
			params:      usecase.RunParams{Query: query, WriteReports: true, Notify: true},
			payments:    nil,
			orders:      []domain.ImportedOrder{order("100")},
			wantTotal:   0,
			wantPending: "0.00",
		},
		{
			name:       "payment fetch error aborts",
			params:     usecase.RunParams{Query: query, WriteReports: true},
			paymentErr: domain.ErrUnauthorized,
			wantErr:    domain.ErrUnauthorized,
		},
		{
			name:     "order fetch error aborts",
			params:   usecase.RunParams{Query: query, WriteReports: true},
			payments: []domain.Payment{payment("10 - Loja", "100", "A")},
			orderErr: domain.ErrUnexpectedStatus,
			wantErr:  domain.ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			paymentRepo := mock_usecase.NewMockPaymentRepository(ctrl)
			orderRepo := mock_usecase.NewMockImportedOrderRepository(ctrl)
			reportWriter := mock_usecase.NewMockReportWriter(ctrl)
			notifier := mock_usecase.NewMockNotifier(ctrl)

			paymentRepo.EXPECT().GetPayments(gomock.Any(), tt.params.Query).Return(tt.payments, tt.paymentErr)
			orderRepo.EXPECT().GetImportedOrders(gomock.Any()).Return(tt.orders, tt.orderErr).AnyTimes()

			if tt.expectReports {
				reportWriter.EXPECT().WriteReports(gomock.Any(), gomock.Any()).Return([]string{"logs/r.json"}, tt.reportErr)
			}
			if tt.expectNotify {
				notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(tt.notifyErr)
			}

			uc := usecase.NewReconciliationUseCase(paymentRepo, orderRepo, reportWriter, notifier, zap.NewNop())
			got, err := uc.Reconcile(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, got.RunID)
			assert.Equal(t, tt.wantTotal, got.Result.TotalPayments)
			assert.Equal(t, tt.wantRejected, got.Result.TotalRejected)
			assert.Equal(t, tt.wantPending, got.PendingAmount.StringFixed(2))
			assert.Len(t, got.Pending, tt.wantRejected)
			if tt.expectReports {
				assert.Equal(t, []string{"logs/r.json"}, got.ReportPaths)
			}
		})
	}
}

func TestReconciliationUseCase_ReconcileByBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentRepo := mock_usecase.NewMockPaymentRepository(ctrl)
	orderRepo := mock_usecase.NewMockImportedOrderRepository(ctrl)

	params := usecase.RunParams{Branch: "10", Query: domain.PaymentQuery{Branches: "10"}}
	paymentRepo.EXPECT().GetPayments(gomock.Any(), params.Query).Return([]domain.Payment{payment("10 - Loja", "1", "A")}, nil)
	orderRepo.EXPECT().GetImportedOrdersByBranch(gomock.Any(), "10").Return([]domain.ImportedOrder{order("1")}, nil)

	uc := usecase.NewReconciliationUseCase(paymentRepo, orderRepo, nil, nil, zap.NewNop())
	got, err := uc.Reconcile(context.Background(), params)

	assert.NoError(t, err)
	assert.Equal(t, 1, got.Result.TotalIntegrated)
	assert.Equal(t, 1, got.Branches["10"].Integrated)
}
