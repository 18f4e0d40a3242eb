package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal {
	dec, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return dec
}

func newSplit(t *testing.T, total string) *TenderSplit {
	t.Helper()
	split, err := NewTenderSplit(1, d(total), "Consumidor Final")
	require.NoError(t, err)
	return split
}

func addTender(t *testing.T, split *TenderSplit, method, amount string) {
	t.Helper()
	require.NoError(t, split.SelectMethod(method))
	split.SetCurrentAmount(d(amount))
	require.NoError(t, split.AddTender())
}

func TestNewTenderSplit(t *testing.T) {
	split := newSplit(t, "100.00")

	// El monto en edición arranca precargado con el total
	assert.True(t, split.CurrentAmount().Equal(d("100.00")))
	assert.Equal(t, MethodCash, split.CurrentMethod())
	assert.Empty(t, split.Allocations())
	assert.False(t, split.IsFullyPaid())

	_, err := NewTenderSplit(1, d("-1"), "")
	assert.ErrorIs(t, err, ErrInvalidSaleTotal)
}

func TestCashOverpaymentGeneratesChange(t *testing.T) {
	// Venta de 100, efectivo de 120: entra completo y el exceso es vuelto
	split := newSplit(t, "100.00")
	addTender(t, split, MethodCash, "120.00")

	allocs := split.Allocations()
	require.Len(t, allocs, 2)

	assert.Equal(t, MethodCash, allocs[0].Method)
	assert.True(t, allocs[0].Amount.Equal(d("120.00")))
	assert.False(t, allocs[0].IsChange)

	assert.Equal(t, MethodCash, allocs[1].Method)
	assert.True(t, allocs[1].Amount.Equal(d("-20.00")))
	assert.True(t, allocs[1].IsChange)

	assert.True(t, split.TotalPaid().Equal(d("120.00")))
	assert.True(t, split.TotalChange().Equal(d("20.00")))
	assert.True(t, split.RemainingBalance().IsZero())
	assert.True(t, split.IsFullyPaid())
	assert.True(t, split.CanSubmit())
}

func TestNonCashClampsToRemaining(t *testing.T) {
	// PIX de 150 contra venta de 100: se registra 100 y no hay vuelto
	split := newSplit(t, "100.00")
	addTender(t, split, "PIX", "150.00")

	allocs := split.Allocations()
	require.Len(t, allocs, 1)
	assert.True(t, allocs[0].Amount.Equal(d("100.00")))
	assert.False(t, allocs[0].IsChange)
	assert.True(t, split.RemainingBalance().IsZero())
	assert.True(t, split.TotalChange().IsZero())
}

func TestMixedTendersExactCover(t *testing.T) {
	// Crédito 30 + efectivo 20 sobre 50: pago exacto, sin vuelto
	split := newSplit(t, "50.00")
	addTender(t, split, "CREDIT_CARD", "30.00")
	addTender(t, split, MethodCash, "20.00")

	assert.True(t, split.TotalPaid().Equal(d("50.00")))
	assert.True(t, split.TotalChange().IsZero())
	assert.True(t, split.IsFullyPaid())
	require.Len(t, split.Allocations(), 2)
}

func TestRemoveCashTenderRemovesChange(t *testing.T) {
	// Efectivo 60 sobre 50 genera vuelto de 10; quitar el efectivo
	// también elimina el vuelto
	split := newSplit(t, "50.00")
	addTender(t, split, MethodCash, "60.00")
	require.Len(t, split.Allocations(), 2)

	require.NoError(t, split.RemoveTender(0))

	assert.Empty(t, split.Allocations())
	assert.True(t, split.TotalPaid().IsZero())
	assert.True(t, split.RemainingBalance().Equal(d("50.00")))
	assert.True(t, split.CurrentAmount().Equal(d("50.00")))
}

func TestRemoveRecomputesChangeWithRemainingCash(t *testing.T) {
	split := newSplit(t, "50.00")
	addTender(t, split, MethodCash, "40.00")

	// Forzar segundo efectivo para verificar el recálculo del vuelto
	split.SetCurrentAmount(d("30.00"))
	require.NoError(t, split.AddTender())

	// 70 de efectivo sobre 50: vuelto de 20, una sola entrada
	assert.True(t, split.TotalChange().Equal(d("20.00")))
	assertSingleChange(t, split)

	// Quitar el efectivo de 40: quedan 30, falta cubrir 20, sin vuelto
	require.NoError(t, split.RemoveTender(0))
	assert.True(t, split.TotalChange().IsZero())
	assert.True(t, split.RemainingBalance().Equal(d("20.00")))
}

func TestAtMostOneChangeEntry(t *testing.T) {
	split := newSplit(t, "30.00")
	addTender(t, split, MethodCash, "40.00")
	split.SetCurrentAmount(d("15.00"))
	require.NoError(t, split.AddTender())
	split.SetCurrentAmount(d("5.00"))
	require.NoError(t, split.AddTender())

	assertSingleChange(t, split)
	// 60 de efectivo sobre 30: vuelto total 30
	assert.True(t, split.TotalChange().Equal(d("30.00")))
}

func TestRemainingPlusPaidInvariant(t *testing.T) {
	split := newSplit(t, "80.00")
	addTender(t, split, "DEBIT_CARD", "25.00")
	addTender(t, split, "PIX", "10.00")

	// remaining + paid == total mientras no haya sobrepago
	sum := split.RemainingBalance().Add(split.TotalPaid())
	assert.True(t, sum.Equal(d("80.00")))

	addTender(t, split, MethodCash, "100.00")
	assert.True(t, split.RemainingBalance().IsZero())
}

func TestAddTenderRejectsNonPositiveAmount(t *testing.T) {
	split := newSplit(t, "100.00")
	split.SetCurrentAmount(decimal.Zero)
	assert.ErrorIs(t, split.AddTender(), ErrAmountNotPositive)

	// Negativos coercionan a cero
	split.SetCurrentAmount(d("-5.00"))
	assert.True(t, split.CurrentAmount().IsZero())
	assert.ErrorIs(t, split.AddTender(), ErrAmountNotPositive)
}

func TestNonCashOnCoveredSaleIsRejected(t *testing.T) {
	// Venta ya cubierta: un método no efectivo no tiene nada que asignar.
	// Se reporta como error explícito, no como no-op silencioso.
	split := newSplit(t, "50.00")
	addTender(t, split, "PIX", "50.00")

	require.NoError(t, split.SelectMethod("DEBIT_CARD"))
	split.SetCurrentAmount(d("10.00"))
	assert.ErrorIs(t, split.AddTender(), ErrNothingToAllocate)
	require.Len(t, split.Allocations(), 1)
}

func TestCashAllowedOnCoveredSale(t *testing.T) {
	// El efectivo sí puede entrar con la venta cubierta: todo es vuelto
	split := newSplit(t, "50.00")
	addTender(t, split, "PIX", "50.00")
	addTender(t, split, MethodCash, "20.00")

	assert.True(t, split.TotalChange().Equal(d("20.00")))
}

func TestSelectMethodPrefillsRemaining(t *testing.T) {
	split := newSplit(t, "100.00")
	addTender(t, split, "CREDIT_CARD", "40.00")

	// No efectivo: siempre sugiere el saldo restante
	require.NoError(t, split.SelectMethod("PIX"))
	assert.True(t, split.CurrentAmount().Equal(d("60.00")))

	// Efectivo conserva lo tipeado si no es cero
	split.SetCurrentAmount(d("55.00"))
	require.NoError(t, split.SelectMethod(MethodCash))
	assert.True(t, split.CurrentAmount().Equal(d("55.00")))

	// Efectivo con monto en cero también se precarga
	split.SetCurrentAmount(decimal.Zero)
	require.NoError(t, split.SelectMethod(MethodCash))
	assert.True(t, split.CurrentAmount().Equal(d("60.00")))

	assert.ErrorIs(t, split.SelectMethod(""), ErrMethodRequired)
}

func TestValidateRejectsDuplicateMethod(t *testing.T) {
	split := newSplit(t, "100.00")
	addTender(t, split, MethodCash, "30.00")
	split.SetCurrentAmount(d("30.00"))
	require.NoError(t, split.AddTender())

	assert.ErrorIs(t, split.Validate(), ErrDuplicateMethod)
	assert.False(t, split.CanSubmit())
}

func TestValidateRejectsNonCashChange(t *testing.T) {
	split := newSplit(t, "100.00")
	// Estado corrupto construido a mano: las operaciones públicas nunca
	// generan vuelto para métodos no efectivo
	split.allocations = []TenderAllocation{
		{Method: "PIX", Amount: d("110.00"), IsChange: false},
		{Method: "PIX", Amount: d("-10.00"), IsChange: true},
	}

	assert.ErrorIs(t, split.Validate(), ErrNonCashChange)
	assert.False(t, split.CanSubmit())
}

func TestRemoveTenderOutOfRange(t *testing.T) {
	split := newSplit(t, "100.00")
	assert.ErrorIs(t, split.RemoveTender(0), ErrTenderNotFound)
	assert.ErrorIs(t, split.RemoveTender(-1), ErrTenderNotFound)
}

func TestResetInvalidatesAttempt(t *testing.T) {
	split := newSplit(t, "100.00")
	addTender(t, split, MethodCash, "100.00")

	before := split.AttemptID()
	split.Reset()

	assert.NotEqual(t, before, split.AttemptID())
	assert.Empty(t, split.Allocations())
	assert.True(t, split.CurrentAmount().IsZero())
	assert.Equal(t, MethodCash, split.CurrentMethod())
}

func TestZeroTotalIsImmediatelyPayable(t *testing.T) {
	// Descuento del 100%: venta en cero se puede confirmar sin pagos
	split := newSplit(t, "0")
	assert.True(t, split.IsFullyPaid())
	assert.True(t, split.CanSubmit())
}

func assertSingleChange(t *testing.T, split *TenderSplit) {
	t.Helper()
	changes := 0
	for _, a := range split.Allocations() {
		if a.IsChange {
			changes++
			assert.Equal(t, MethodCash, a.Method)
		}
	}
	assert.Equal(t, 1, changes)
}
