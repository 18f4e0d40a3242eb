package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/src/checkout/domain/entity"
)

type fakeSaleGateway struct {
	created      *entity.SaleDraft
	updated      *entity.SaleDraft
	updatedID    int64
	failNext     error
	nextSaleID   int64
	statusBySale map[int64]entity.SaleStatus
}

func newFakeSaleGateway() *fakeSaleGateway {
	return &fakeSaleGateway{nextSaleID: 100, statusBySale: map[int64]entity.SaleStatus{}}
}

func (g *fakeSaleGateway) saleFor(id int64, draft *entity.SaleDraft) *entity.Sale {
	total := decimal.Zero
	for _, item := range draft.Items {
		if item.ManualPrice != nil {
			total = total.Add(item.ManualPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return &entity.Sale{ID: id, Total: total, SaleStatus: entity.SalePending}
}

func (g *fakeSaleGateway) CreateSale(authToken string, draft *entity.SaleDraft) (*entity.Sale, error) {
	if g.failNext != nil {
		err := g.failNext
		g.failNext = nil
		return nil, err
	}
	g.created = draft
	return g.saleFor(g.nextSaleID, draft), nil
}

func (g *fakeSaleGateway) UpdateSale(authToken string, saleID int64, draft *entity.SaleDraft) (*entity.Sale, error) {
	if g.failNext != nil {
		err := g.failNext
		g.failNext = nil
		return nil, err
	}
	g.updated = draft
	g.updatedID = saleID
	return g.saleFor(saleID, draft), nil
}

func (g *fakeSaleGateway) GetSale(authToken string, saleID int64) (*entity.Sale, error) {
	return &entity.Sale{ID: saleID, SaleStatus: entity.SalePending}, nil
}

func (g *fakeSaleGateway) SearchSales(authToken, term string, page, size int) ([]entity.Sale, error) {
	return nil, nil
}

func (g *fakeSaleGateway) UpdateSaleStatus(authToken string, saleID int64, status entity.SaleStatus) (*entity.Sale, error) {
	g.statusBySale[saleID] = status
	return &entity.Sale{ID: saleID, SaleStatus: status}, nil
}

func cartWith(t *testing.T, items ...entity.CartItem) *entity.Cart {
	t.Helper()
	cart := entity.NewCart()
	for _, item := range items {
		cart.AddItem(item)
	}
	return cart
}

func product(t *testing.T, id int64, price string, qty int) entity.CartItem {
	t.Helper()
	item, err := entity.NewCartItem(id, 0, "Jogo de cama", decimal.RequireFromString(price), qty, false)
	require.NoError(t, err)
	return *item
}

func embroidery(t *testing.T, id int64, price string) entity.CartItem {
	t.Helper()
	item, err := entity.NewCartItem(0, id, "Bordado toalha", decimal.RequireFromString(price), 1, true)
	require.NoError(t, err)
	return *item
}

func TestPreparePaymentCreatesSale(t *testing.T) {
	gateway := newFakeSaleGateway()
	uc := NewPreparePaymentUseCase(gateway)
	cart := cartWith(t, product(t, 10, "80.00", 2), embroidery(t, 7, "40.00"))

	data, sale, err := uc.Execute("Bearer tok", cart, 5, "Maria Silva", 3, 0)

	require.NoError(t, err)
	require.NotNil(t, gateway.created)
	assert.Equal(t, int64(100), sale.ID)
	assert.Equal(t, int64(100), data.SaleID)
	assert.Equal(t, "Maria Silva", data.CustomerName)
	assert.True(t, data.TotalAmount.Equal(decimal.RequireFromString("200.00")))
	require.Len(t, data.Items, 2)

	draft := gateway.created
	require.NotNil(t, draft.CustomerID)
	assert.Equal(t, int64(5), *draft.CustomerID)
	assert.Equal(t, int64(3), draft.CashSessionID)
	require.Len(t, draft.Items, 2)

	// El producto común viaja sin precio; el bordado con precio manual
	require.NotNil(t, draft.Items[0].ProductID)
	assert.Nil(t, draft.Items[0].ManualPrice)
	require.NotNil(t, draft.Items[1].EmbroideryID)
	require.NotNil(t, draft.Items[1].ManualPrice)
	assert.True(t, draft.Items[1].ManualPrice.Equal(decimal.RequireFromString("40.00")))
}

func TestPreparePaymentUpdatesRecoveredSale(t *testing.T) {
	gateway := newFakeSaleGateway()
	uc := NewPreparePaymentUseCase(gateway)
	cart := cartWith(t, product(t, 10, "80.00", 1))

	_, sale, err := uc.Execute("Bearer tok", cart, 5, "Maria Silva", 3, 42)

	require.NoError(t, err)
	assert.Nil(t, gateway.created)
	assert.Equal(t, int64(42), gateway.updatedID)
	assert.Equal(t, int64(42), sale.ID)
}

func TestPreparePaymentRequiresCustomer(t *testing.T) {
	uc := NewPreparePaymentUseCase(newFakeSaleGateway())
	cart := cartWith(t, product(t, 10, "80.00", 1))

	_, _, err := uc.Execute("Bearer tok", cart, 0, "", 3, 0)

	assert.ErrorIs(t, err, entity.ErrCustomerRequired)
}

func TestPreparePaymentRejectsEmptyCart(t *testing.T) {
	uc := NewPreparePaymentUseCase(newFakeSaleGateway())

	_, _, err := uc.Execute("Bearer tok", entity.NewCart(), 5, "Maria", 3, 0)

	assert.ErrorIs(t, err, entity.ErrEmptyCart)
}

func TestPreparePaymentRequiresOpenCashSession(t *testing.T) {
	uc := NewPreparePaymentUseCase(newFakeSaleGateway())
	cart := cartWith(t, product(t, 10, "80.00", 1))

	_, _, err := uc.Execute("Bearer tok", cart, 5, "Maria", 0, 0)

	assert.ErrorIs(t, err, entity.ErrNoCashSession)
}

func TestPreparePaymentPropagatesGatewayError(t *testing.T) {
	gateway := newFakeSaleGateway()
	gateway.failNext = errors.New("backend down")
	uc := NewPreparePaymentUseCase(gateway)
	cart := cartWith(t, product(t, 10, "80.00", 1))

	_, _, err := uc.Execute("Bearer tok", cart, 5, "Maria", 3, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
}

func TestSaveSaleAllowsMissingCustomer(t *testing.T) {
	gateway := newFakeSaleGateway()
	uc := NewSaveSaleUseCase(gateway)
	cart := cartWith(t, product(t, 10, "80.00", 1))

	sale, err := uc.Execute("Bearer tok", cart, 0, 3, 0)

	require.NoError(t, err)
	assert.Equal(t, entity.SalePending, sale.SaleStatus)
	require.NotNil(t, gateway.created)
	assert.Nil(t, gateway.created.CustomerID)
}

func TestSaveSaleRejectsEmptyCart(t *testing.T) {
	uc := NewSaveSaleUseCase(newFakeSaleGateway())

	_, err := uc.Execute("Bearer tok", entity.NewCart(), 5, 3, 0)

	assert.ErrorIs(t, err, entity.ErrEmptyCart)
}
