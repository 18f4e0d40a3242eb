package usecase

import (
	"errors"
	"sync"
	"testing"

	"pdv/src/payment/domain/entity"
	"pdv/src/payment/infrastructure/cache"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway implementa port.PaymentGateway en memoria
type fakeGateway struct {
	methods      []entity.PaymentMethod
	submissions  []*entity.PaymentSubmission
	failNext     error
	beforeReturn func()
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		methods: []entity.PaymentMethod{
			{ID: 1, Code: "CASH", DisplayName: "Dinheiro", Active: true, AllowsChange: true},
			{ID: 2, Code: "PIX", DisplayName: "PIX", Active: true},
			{ID: 3, Code: "CREDIT_CARD", DisplayName: "Crédito", Active: true, AllowsInstallments: true},
			{ID: 4, Code: "DEBIT_CARD", DisplayName: "Débito", Active: true},
		},
	}
}

func (f *fakeGateway) ListPaymentMethods(_ string) ([]entity.PaymentMethod, error) {
	return f.methods, nil
}

func (f *fakeGateway) ProcessMultiPayment(_ string, submission *entity.PaymentSubmission) (*entity.PaymentConfirmation, error) {
	if f.beforeReturn != nil {
		f.beforeReturn()
	}
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}

	f.submissions = append(f.submissions, submission)

	totalPaid := decimal.Zero
	for _, p := range submission.Payments {
		totalPaid = totalPaid.Add(p.AmountPaid)
	}

	return &entity.PaymentConfirmation{
		SaleID:       submission.SaleID,
		TotalSale:    submission.TotalAmount,
		TotalPaid:    totalPaid,
		ChangeAmount: submission.ChangeAmount,
	}, nil
}

func (f *fakeGateway) ListPaymentsBySale(_ string, _ int64) ([]entity.ProcessedPayment, error) {
	return nil, nil
}

func (f *fakeGateway) TodayPayments(_ string) ([]entity.ProcessedPayment, error) {
	return nil, nil
}

func (f *fakeGateway) TodayTotal(_ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func paidSplit(t *testing.T, total string) *entity.TenderSplit {
	t.Helper()
	split, err := entity.NewTenderSplit(7, mustDecimal(total), "Maria")
	require.NoError(t, err)
	require.NoError(t, split.SelectMethod("CREDIT_CARD"))
	require.NoError(t, split.AddTender())
	return split
}

func mustDecimal(value string) decimal.Decimal {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return dec
}

func TestProcessPayment_Success(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split := paidSplit(t, "150.00")
	var mu sync.Mutex

	receipt, err := uc.Execute("Bearer token", split, &mu)
	require.NoError(t, err)

	// El payload traduce código → ID numérico y excluye entradas de vuelto
	require.Len(t, gateway.submissions, 1)
	sub := gateway.submissions[0]
	assert.Equal(t, int64(7), sub.SaleID)
	require.Len(t, sub.Payments, 1)
	assert.Equal(t, int64(3), sub.Payments[0].PaymentMethodID)
	assert.True(t, sub.Payments[0].AmountPaid.Equal(mustDecimal("150.00")))

	assert.Equal(t, "Maria", receipt.CustomerName)
	assert.Equal(t, "one hundred fifty reais 00 centavos", receipt.TotalInWords)

	// Confirmación aceptada: el split queda vacío para la próxima venta
	assert.Empty(t, split.Allocations())
}

func TestProcessPayment_CashChangeInPayload(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split, err := entity.NewTenderSplit(9, mustDecimal("100.00"), "")
	require.NoError(t, err)
	split.SetCurrentAmount(mustDecimal("120.00"))
	require.NoError(t, split.AddTender())

	var mu sync.Mutex
	receipt, err := uc.Execute("", split, &mu)
	require.NoError(t, err)

	sub := gateway.submissions[0]
	assert.True(t, sub.ChangeAmount.Equal(mustDecimal("20.00")))
	// El vuelto no viaja como pago: solo la entrada real de efectivo
	require.Len(t, sub.Payments, 1)
	assert.Equal(t, int64(1), sub.Payments[0].PaymentMethodID)
	assert.True(t, receipt.ChangeAmount.Equal(mustDecimal("20.00")))
}

func TestProcessPayment_RejectsIncompleteSplit(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split, err := entity.NewTenderSplit(3, mustDecimal("100.00"), "")
	require.NoError(t, err)

	var mu sync.Mutex
	_, err = uc.Execute("", split, &mu)
	assert.ErrorIs(t, err, entity.ErrSaleNotFullyPaid)
	// Nada salió a la red
	assert.Empty(t, gateway.submissions)
}

func TestProcessPayment_RejectsDuplicateMethodBeforeNetwork(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split, err := entity.NewTenderSplit(3, mustDecimal("100.00"), "")
	require.NoError(t, err)
	split.SetCurrentAmount(mustDecimal("60.00"))
	require.NoError(t, split.AddTender())
	split.SetCurrentAmount(mustDecimal("60.00"))
	require.NoError(t, split.AddTender())

	var mu sync.Mutex
	_, err = uc.Execute("", split, &mu)
	assert.ErrorIs(t, err, entity.ErrDuplicateMethod)
	assert.Empty(t, gateway.submissions)
}

func TestProcessPayment_RemoteFailureKeepsSplit(t *testing.T) {
	gateway := newFakeGateway()
	gateway.failNext = errors.New("payments API returned status 422: insufficient stock")
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split := paidSplit(t, "80.00")
	var mu sync.Mutex

	_, err := uc.Execute("", split, &mu)
	require.Error(t, err)

	// El split se preserva para corregir y reintentar
	assert.Len(t, split.Allocations(), 1)
	assert.True(t, split.IsFullyPaid())

	// Reintento exitoso
	_, err = uc.Execute("", split, &mu)
	require.NoError(t, err)
	assert.Empty(t, split.Allocations())
}

func TestProcessPayment_StaleResponseIsDiscarded(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split := paidSplit(t, "80.00")
	var mu sync.Mutex

	// El modal se cierra mientras la request está en vuelo
	gateway.beforeReturn = func() {
		mu.Lock()
		split.Reset()
		mu.Unlock()
	}

	_, err := uc.Execute("", split, &mu)
	assert.ErrorIs(t, err, entity.ErrStaleSubmission)
}

func TestProcessPayment_UnknownMethodCode(t *testing.T) {
	gateway := newFakeGateway()
	uc := NewProcessPaymentUseCase(gateway, cache.NewPaymentMethodCache(gateway))

	split, err := entity.NewTenderSplit(3, mustDecimal("50.00"), "")
	require.NoError(t, err)
	require.NoError(t, split.SelectMethod("CHEQUE"))
	require.NoError(t, split.AddTender())

	var mu sync.Mutex
	_, err = uc.Execute("", split, &mu)
	assert.ErrorIs(t, err, entity.ErrUnknownMethodCode)
	assert.Empty(t, gateway.submissions)
}
