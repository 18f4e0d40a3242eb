package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/src/cash/domain/entity"
)

type fakeCashGateway struct {
	active      *entity.CashSession
	activeErr   error
	opened      *entity.CashSession
	summary     *entity.CloseSummary
	closedID    int64
	registered  []entity.CashTransaction
	registerErr error
}

func (g *fakeCashGateway) OpenSession(authToken string, initialValue decimal.Decimal) (*entity.CashSession, error) {
	g.opened = &entity.CashSession{ID: 7, Status: entity.SessionOpen, InitialValue: initialValue}
	return g.opened, nil
}

func (g *fakeCashGateway) ActiveSession(authToken string) (*entity.CashSession, error) {
	return g.active, g.activeErr
}

func (g *fakeCashGateway) RegisterTransaction(authToken string, sessionID int64, txType entity.TransactionType, amount decimal.Decimal, description string) (*entity.CashTransaction, error) {
	if g.registerErr != nil {
		return nil, g.registerErr
	}
	tx := entity.CashTransaction{ID: int64(len(g.registered) + 1), SessionID: sessionID, Type: txType, Amount: amount, Description: description}
	g.registered = append(g.registered, tx)
	return &tx, nil
}

func (g *fakeCashGateway) CloseSession(authToken string, sessionID int64) (*entity.CloseSummary, error) {
	if g.summary == nil {
		return nil, errors.New("backend down")
	}
	g.closedID = sessionID
	return g.summary, nil
}

type fakeRecorder struct {
	remembered []int64
	forgotten  int
}

func (r *fakeRecorder) Remember(sessionID int64) error {
	r.remembered = append(r.remembered, sessionID)
	return nil
}

func (r *fakeRecorder) Forget() error {
	r.forgotten++
	return nil
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestOpenSessionRecordsLocally(t *testing.T) {
	gateway := &fakeCashGateway{}
	recorder := &fakeRecorder{}
	uc := NewOpenSessionUseCase(gateway, recorder)

	session, err := uc.Execute("Bearer tok", money("150.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.ID)
	assert.Equal(t, []int64{7}, recorder.remembered)
}

func TestOpenSessionRejectsSecondOpen(t *testing.T) {
	gateway := &fakeCashGateway{active: &entity.CashSession{ID: 3, Status: entity.SessionOpen}}
	uc := NewOpenSessionUseCase(gateway, &fakeRecorder{})

	_, err := uc.Execute("Bearer tok", money("150.00"))

	assert.ErrorIs(t, err, entity.ErrSessionAlreadyOpen)
}

func TestOpenSessionRejectsNegativeInitialValue(t *testing.T) {
	uc := NewOpenSessionUseCase(&fakeCashGateway{}, &fakeRecorder{})

	_, err := uc.Execute("Bearer tok", money("-1.00"))

	assert.ErrorIs(t, err, entity.ErrInvalidInitialValue)
}

func TestRegisterTransactionValidation(t *testing.T) {
	uc := NewRegisterTransactionUseCase(&fakeCashGateway{})

	_, err := uc.Execute("Bearer tok", 0, entity.TransactionSupplement, money("10.00"), "")
	assert.ErrorIs(t, err, entity.ErrNoOpenSession)

	_, err = uc.Execute("Bearer tok", 3, entity.TransactionSale, money("10.00"), "")
	assert.ErrorIs(t, err, entity.ErrInvalidTransactionType)

	_, err = uc.Execute("Bearer tok", 3, entity.TransactionWithdrawal, money("0"), "")
	assert.ErrorIs(t, err, entity.ErrInvalidTransactionAmount)
}

func TestRegisterTransactionSupplement(t *testing.T) {
	gateway := &fakeCashGateway{}
	uc := NewRegisterTransactionUseCase(gateway)

	tx, err := uc.Execute("Bearer tok", 3, entity.TransactionSupplement, money("50.00"), "troco")

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionSupplement, tx.Type)
	require.Len(t, gateway.registered, 1)
	assert.Equal(t, int64(3), gateway.registered[0].SessionID)
}

func TestCloseSessionComparesCounts(t *testing.T) {
	gateway := &fakeCashGateway{
		summary: &entity.CloseSummary{
			Session: entity.CashSession{ID: 3, Status: entity.SessionClosed},
			Expected: []entity.MethodExpected{
				{MethodCode: "CASH", Expected: money("200.00")},
				{MethodCode: "PIX", Expected: money("80.00")},
			},
		},
	}
	recorder := &fakeRecorder{}
	uc := NewCloseSessionUseCase(gateway, recorder)

	result, err := uc.Execute("Bearer tok", 3, map[string]decimal.Decimal{
		"CASH": money("195.00"),
		"PIX":  money("80.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), gateway.closedID)
	assert.False(t, result.Balanced)
	require.Len(t, result.Comparisons, 2)

	byCode := map[string]decimal.Decimal{}
	for _, comparison := range result.Comparisons {
		byCode[comparison.MethodCode] = comparison.Difference
	}
	assert.True(t, byCode["CASH"].Equal(money("-5.00")))
	assert.True(t, byCode["PIX"].IsZero())

	assert.Equal(t, 1, recorder.forgotten)
}

func TestCloseSessionBalanced(t *testing.T) {
	gateway := &fakeCashGateway{
		summary: &entity.CloseSummary{
			Session:  entity.CashSession{ID: 3, Status: entity.SessionClosed},
			Expected: []entity.MethodExpected{{MethodCode: "CASH", Expected: money("120.00")}},
		},
	}
	uc := NewCloseSessionUseCase(gateway, &fakeRecorder{})

	result, err := uc.Execute("Bearer tok", 3, map[string]decimal.Decimal{"CASH": money("120.00")})

	require.NoError(t, err)
	assert.True(t, result.Balanced)
}

func TestCloseSessionFlagsUnexpectedCount(t *testing.T) {
	gateway := &fakeCashGateway{
		summary: &entity.CloseSummary{
			Session:  entity.CashSession{ID: 3, Status: entity.SessionClosed},
			Expected: []entity.MethodExpected{{MethodCode: "CASH", Expected: money("120.00")}},
		},
	}
	uc := NewCloseSessionUseCase(gateway, &fakeRecorder{})

	result, err := uc.Execute("Bearer tok", 3, map[string]decimal.Decimal{
		"CASH":        money("120.00"),
		"credit_card": money("15.00"),
	})

	require.NoError(t, err)
	assert.False(t, result.Balanced)
	assert.Len(t, result.Comparisons, 2)
}

func TestCloseSessionRequiresCounts(t *testing.T) {
	uc := NewCloseSessionUseCase(&fakeCashGateway{}, &fakeRecorder{})

	_, err := uc.Execute("Bearer tok", 3, nil)

	assert.ErrorIs(t, err, entity.ErrCountRequired)
}
